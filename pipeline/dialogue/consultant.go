package dialogue

import (
	"context"
	"fmt"
	"strings"

	cx "cloud.google.com/go/dialogflow/cx/apiv3"
	"cloud.google.com/go/dialogflow/cx/apiv3/cxpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/magic-sketchbook/backend/common/config"
)

// DrawMarker is the token the agent embeds in a reply when it wants an image
// generated. Everything after the first occurrence is the draw prompt.
const DrawMarker = "DRAW_PROMPT:"

// noImageSentinel is what the vision stage may answer when it sees nothing
// drawable; such a description is not folded into the chat turn.
const noImageSentinel = "no image"

const notConfiguredMessage = "아직 대화 친구가 준비되지 않았어요. 그림을 올려서 바로 그려볼까요?"

const languageCode = "ko"

// Consultant forwards a chat turn to a Dialogflow CX agent. Conversation
// state lives entirely on the Dialogflow side, keyed by the session id.
type Consultant struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Consultant {
	return &Consultant{cfg: cfg}
}

func (c *Consultant) Consult(ctx context.Context, sessionID string, userText string, description string) (string, string, error) {
	if c.cfg.AgentID == "" {
		return notConfiguredMessage, "", nil
	}

	text := userText
	if description != "" && description != noImageSentinel {
		text = fmt.Sprintf("%s [그림 설명: %s]", userText, description)
	}

	client, err := cx.NewSessionsClient(ctx, option.WithEndpoint(c.endpoint()))
	if err != nil {
		return "", "", errors.Wrap(err, "init dialogflow client failed")
	}
	defer client.Close()

	resp, err := client.DetectIntent(ctx, &cxpb.DetectIntentRequest{
		Session: c.sessionPath(sessionID),
		QueryInput: &cxpb.QueryInput{
			Input: &cxpb.QueryInput_Text{
				Text: &cxpb.TextInput{Text: text},
			},
			LanguageCode: languageCode,
		},
	})
	if err != nil {
		return "", "", errors.Wrap(err, "dialogflow detect intent failed")
	}

	reply := ""
	for _, m := range resp.GetQueryResult().GetResponseMessages() {
		if t := m.GetText(); t != nil {
			reply += strings.Join(t.GetText(), "")
		}
	}

	message, drawPrompt := SplitDirective(reply)
	return message, drawPrompt, nil
}

func (c *Consultant) endpoint() string {
	if c.cfg.Location == "" || c.cfg.Location == "global" {
		return "dialogflow.googleapis.com:443"
	}
	return fmt.Sprintf("%s-dialogflow.googleapis.com:443", c.cfg.Location)
}

func (c *Consultant) sessionPath(sessionID string) string {
	return fmt.Sprintf("projects/%s/locations/%s/agents/%s/sessions/%s",
		c.cfg.ProjectID, c.cfg.Location, c.cfg.AgentID, sessionID)
}

// SplitDirective splits an agent reply on the first occurrence of DrawMarker.
// The text before the marker is the user-visible message, the text after is
// the draw prompt; both are trimmed. Without a marker the whole reply is the
// message. Markers inside ordinary text are not escaped.
func SplitDirective(reply string) (message string, drawPrompt string) {
	idx := strings.Index(reply, DrawMarker)
	if idx < 0 {
		return strings.TrimSpace(reply), ""
	}
	return strings.TrimSpace(reply[:idx]), strings.TrimSpace(reply[idx+len(DrawMarker):])
}
