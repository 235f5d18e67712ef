package notifier

import (
	"context"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/smtp"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pkg/errors"
)

// MailSender delivers a plain text email.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a short text message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func NewSESSender(client SESAPI, from string) MailSender {
	return sesSender{client: client, from: from}
}

type sesSender struct {
	client SESAPI
	from   string
}

func (s sesSender) Send(ctx context.Context, to, subject, body string) error {
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.from),
	})
	return errors.Wrap(err, "ses send failed")
}

func NewSMTPSender(provider smtp.Provider) MailSender {
	return smtpSender{provider: provider}
}

type smtpSender struct {
	provider smtp.Provider
}

func (s smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if s.provider == nil {
		return errors.New("smtp client is not initialized")
	}
	return s.provider.SendEMail(to, subject, body)
}

func NewSNSSender(client SNSAPI) SMSSender {
	return snsSender{client: client}
}

type snsSender struct {
	client SNSAPI
}

func (s snsSender) Send(ctx context.Context, phone, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	return errors.Wrap(err, "sns publish failed")
}
