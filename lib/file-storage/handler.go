package filestorage

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultLinkTTL = 15 * time.Minute

// Provider hands out download links for onboarding documents stored in S3.
type Provider interface {
	DocumentLink(ctx context.Context, key string) (string, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(client *minio.Client, bucketName string, linkTTL time.Duration) {
	Instance = NewInstance(client, bucketName, linkTTL)
}

// NewInstance builds the provider; with a nil client keys are returned as is.
func NewInstance(client *minio.Client, bucketName string, linkTTL time.Duration) Provider {
	if linkTTL <= 0 {
		linkTTL = defaultLinkTTL
	}
	return impl{
		client:     client,
		bucketName: bucketName,
		linkTTL:    linkTTL,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
	linkTTL    time.Duration
}

func (i impl) DocumentLink(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || i.client == nil || isAbsoluteURL(key) {
		return key, nil
	}
	link, err := i.client.PresignedGetObject(ctx, i.bucketName, key, i.linkTTL, url.Values{})
	if err != nil {
		log.WithError(err).WithField("key", key).Error("failed to presign document link")
		return "", errors.Wrap(err, "failed to presign document link")
	}
	return link.String(), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	if i.client == nil {
		return nil
	}
	exists, err := i.client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
