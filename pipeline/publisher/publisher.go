package publisher

import (
	"context"
	"fmt"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/magic-sketchbook/backend/common/config"
	"github.com/magic-sketchbook/backend/common/random"
)

const objectPrefix = "generated/"

// Publisher writes generated images to the project bucket and returns their
// public URL. Every publish creates a fresh object; there is no dedup and no
// lifecycle management.
type Publisher struct {
	cfg    *config.Config
	ensure singleflight.Group
}

func New(cfg *config.Config) *Publisher {
	return &Publisher{cfg: cfg}
}

func (p *Publisher) Publish(ctx context.Context, data []byte) (string, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", errors.Wrap(err, "init storage client failed")
	}
	defer client.Close()

	bucketName := p.cfg.BucketName()
	if err := p.ensureBucket(ctx, client, bucketName); err != nil {
		return "", errors.Wrap(err, "ensure bucket failed")
	}

	key := ObjectKey()
	w := client.Bucket(bucketName).Object(key).NewWriter(ctx)
	w.ContentType = "image/png"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", errors.Wrap(err, "write object failed")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "finalize object failed")
	}
	return PublicURL(bucketName, key), nil
}

// ensureBucket checks the bucket on every publish and creates it with public
// read access when missing. Concurrent in-flight checks inside one process
// collapse into a single call.
func (p *Publisher) ensureBucket(ctx context.Context, client *storage.Client, name string) error {
	_, err, _ := p.ensure.Do(name, func() (any, error) {
		bucket := client.Bucket(name)
		_, err := bucket.Attrs(ctx)
		if err == nil {
			return nil, nil
		}
		if err != storage.ErrBucketNotExist {
			return nil, err
		}
		if err := bucket.Create(ctx, p.cfg.ProjectID, &storage.BucketAttrs{Location: p.cfg.Location}); err != nil {
			return nil, err
		}
		policy, err := bucket.IAM().Policy(ctx)
		if err != nil {
			return nil, err
		}
		policy.Add(iam.AllUsers, "roles/storage.objectViewer")
		return nil, bucket.IAM().SetPolicy(ctx, policy)
	})
	return err
}

// ObjectKey returns a fresh object key under the generated/ prefix.
func ObjectKey() string {
	return fmt.Sprintf("%s%s.png", objectPrefix, random.GetUUID())
}

// PublicURL builds the well-known public storage URL for an object.
func PublicURL(bucket string, key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
}
