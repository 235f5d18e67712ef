package initializers

import (
	"context"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/config"
	filestorage "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/file-storage"
	s3client "github.com/Aaron071982/riseandshineHRM-final-sub000/s3"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	err := s3client.Connect(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey,
		config.Conf.AWS.Region, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
	}
	filestorage.NewHandler(s3client.Client, config.Conf.S3.BucketName, time.Duration(config.Conf.S3.LinkTTLInSec)*time.Second)
	if s3client.Client == nil {
		log.Warn("S3 endpoint is not set, document links are served as stored")
		return
	}
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("S3 bucket check failed")
		return
	}
	log.Info("S3 client initialized")
}
