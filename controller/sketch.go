package controller

import (
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/magic-sketchbook/backend/common/helper"
	"github.com/magic-sketchbook/backend/common/image"
	"github.com/magic-sketchbook/backend/common/logger"
	"github.com/magic-sketchbook/backend/pipeline"
)

const maxUploadSize = 20 << 20 // 20MB

const (
	misconfiguredMessage   = "Server misconfigured: Missing Google Cloud Project ID"
	safetyRejectionMessage = "앗, 이 그림은 그릴 수 없어요. 다른 멋진 그림을 생각해 볼까요?"
)

type SketchController struct {
	pipe *pipeline.Pipeline
}

func NewSketchController(pipe *pipeline.Pipeline) *SketchController {
	return &SketchController{pipe: pipe}
}

type generateImageForm struct {
	File        *multipart.FileHeader `form:"file" binding:"required"`
	StylePrompt string                `form:"style_prompt"`
}

type chatToDrawForm struct {
	File          *multipart.FileHeader `form:"file"`
	UserText      string                `form:"user_text" binding:"required"`
	SessionID     string                `form:"session_id"`
	GenerateImage *bool                 `form:"generate_image"`
	// ChatHistory is accepted for client compatibility and ignored; the
	// dialogue service owns the conversation state.
	ChatHistory string `form:"chat_history"`
}

// GenerateImage handles the single-shot flow: sketch in, public image URL and
// description out.
func (ctl *SketchController) GenerateImage(c *gin.Context) {
	ctx := c.Request.Context()

	var form generateImageForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}
	stylePrompt := helper.AssignOrDefault(form.StylePrompt, "3D render")

	data, err := readUpload(c, form.File)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := ctl.pipe.GenerateFromSketch(ctx, data, stylePrompt)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"image":       result.ImageURL,
		"description": result.Description,
	})
}

// ChatToDraw handles the conversational flow.
func (ctl *SketchController) ChatToDraw(c *gin.Context) {
	ctx := c.Request.Context()

	var form chatToDrawForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "user_text is required"})
		return
	}

	req := &pipeline.ChatRequest{
		SessionID:     helper.AssignOrDefault(form.SessionID, "default-session"),
		UserText:      form.UserText,
		GenerateImage: form.GenerateImage == nil || *form.GenerateImage,
	}
	if form.File != nil {
		data, err := readUpload(c, form.File)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		req.Image = data
	}

	result, err := ctl.pipe.ChatToDraw(ctx, req)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	response := gin.H{
		"agent_message":   result.AgentMessage,
		"generated_image": nil,
		"draw_prompt":     nil,
	}
	if result.GeneratedImage != "" {
		response["generated_image"] = result.GeneratedImage
	}
	if result.DrawPrompt != "" {
		response["draw_prompt"] = result.DrawPrompt
	}
	c.JSON(http.StatusOK, response)
}

// readUpload stages the multipart file in a temp file and reads it back. The
// temp file is removed on every exit path.
func readUpload(c *gin.Context, fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, errors.Errorf("image exceeds maximum allowed size of %d bytes", maxUploadSize)
	}

	tmp, err := os.CreateTemp("", "sketch-upload-*")
	if err != nil {
		return nil, errors.Wrap(err, "create temp file failed")
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := c.SaveUploadedFile(fh, tmpName); err != nil {
		return nil, errors.Wrap(err, "save upload failed")
	}
	data, err := os.ReadFile(tmpName)
	if err != nil {
		return nil, errors.Wrap(err, "read upload failed")
	}
	if !image.IsImage(data) {
		return nil, errors.New("uploaded file is not a supported image")
	}
	return data, nil
}

// respondPipelineError is the single place where pipeline error kinds become
// HTTP status codes.
func respondPipelineError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch pipeline.KindOf(err) {
	case pipeline.KindConfig:
		logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": misconfiguredMessage})
	case pipeline.KindPolicy:
		logger.Infof(ctx, "synthesis rejected by safety filter: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"detail": safetyRejectionMessage})
	default:
		logger.Errorf(ctx, "pipeline failed: %+v", err)
		requestId := c.GetString(helper.RequestIdKey)
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": helper.MessageWithRequestId(err.Error(), requestId),
		})
	}
}
