package initializers

import (
	"context"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/config"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/notifier"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/smtp"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	log "github.com/sirupsen/logrus"
)

const emailProviderSES = "ses"

// InitNotifier picks the email channel and, when enabled, the SMS channel.
func InitNotifier(ctx context.Context) {
	conf := config.Conf.Notifier
	needAWS := conf.EmailProvider == emailProviderSES || *conf.SmsEnabled

	var awsCfg aws.Config
	if needAWS {
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Conf.AWS.Region))
		if err != nil {
			panic(err.Error())
		}
	}

	var mail notifier.MailSender
	if conf.EmailProvider == emailProviderSES {
		mail = notifier.NewSESSender(ses.NewFromConfig(awsCfg), conf.From)
	} else {
		mail = notifier.NewSMTPSender(smtp.Instance)
	}

	var sms notifier.SMSSender
	if *conf.SmsEnabled {
		sms = notifier.NewSNSSender(sns.NewFromConfig(awsCfg))
	}

	notifier.NewHandler(mail, sms, notifier.Settings{
		CompanyName: conf.CompanyName,
		PortalLink:  conf.PortalLink,
	})
	log.WithField("email_provider", conf.EmailProvider).
		WithField("sms_enabled", *conf.SmsEnabled).
		Info("notifier initialized")
}
