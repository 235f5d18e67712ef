package s3client

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minio.Client

// Connect sets Client; an empty endpoint leaves storage disabled.
func Connect(endpoint, accessKeyID, secretAccessKey, region string, useSSL bool) error {
	if endpoint == "" {
		Client = nil
		return nil
	}
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return err
	}
	Client = minioClient
	return nil
}
