// Package notifier sends candidate-facing messages. Delivery failures are
// reported to the caller and never roll back the change that triggered them.
package notifier

import (
	"bytes"
	"context"
	"strings"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/metrics"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Kind string

const (
	KindOffer     Kind = "offer"
	KindRejection Kind = "rejection"
	KindReachOut  Kind = "reach_out"
)

type Provider interface {
	SendOfferEmail(ctx context.Context, candidate dbmodels.Candidate) error
	SendRejectionEmail(ctx context.Context, candidate dbmodels.Candidate) error
	SendReachOutEmail(ctx context.Context, candidate dbmodels.Candidate) error
}

type Settings struct {
	CompanyName string
	PortalLink  string
}

var Instance Provider

func NewHandler(mail MailSender, sms SMSSender, settings Settings) {
	Instance = NewInstance(mail, sms, settings)
}

// NewInstance builds a notifier. sms may be nil when text messages are disabled.
func NewInstance(mail MailSender, sms SMSSender, settings Settings) Provider {
	return impl{
		mail:     mail,
		sms:      sms,
		settings: settings,
	}
}

type impl struct {
	mail     MailSender
	sms      SMSSender
	settings Settings
}

func (i impl) SendOfferEmail(ctx context.Context, candidate dbmodels.Candidate) error {
	return i.sendEmail(ctx, KindOffer, offerTemplate, candidate)
}

func (i impl) SendRejectionEmail(ctx context.Context, candidate dbmodels.Candidate) error {
	return i.sendEmail(ctx, KindRejection, rejectionTemplate, candidate)
}

func (i impl) SendReachOutEmail(ctx context.Context, candidate dbmodels.Candidate) error {
	err := i.sendEmail(ctx, KindReachOut, reachOutTemplate, candidate)
	i.sendReachOutSMS(ctx, candidate)
	return err
}

func (i impl) sendEmail(ctx context.Context, kind Kind, tpl messageTemplate, candidate dbmodels.Candidate) error {
	logger := log.
		WithField("candidate_id", candidate.ID).
		WithField("notification", kind)
	if strings.TrimSpace(candidate.Email) == "" {
		metrics.NotificationsSent.WithLabelValues(string(kind), "skipped").Inc()
		return errors.New("candidate has no email address")
	}
	if i.mail == nil {
		metrics.NotificationsSent.WithLabelValues(string(kind), "skipped").Inc()
		return errors.New("email channel is not configured")
	}
	subject, body, err := tpl.render(i.messageData(candidate))
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(string(kind), "failed").Inc()
		logger.WithError(err).Error("failed to render email")
		return err
	}
	err = i.mail.Send(ctx, candidate.Email, subject, body)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(string(kind), "failed").Inc()
		logger.WithError(err).Warn("failed to send email")
		return err
	}
	metrics.NotificationsSent.WithLabelValues(string(kind), "sent").Inc()
	logger.Info("email sent")
	return nil
}

func (i impl) sendReachOutSMS(ctx context.Context, candidate dbmodels.Candidate) {
	phone := strings.TrimSpace(candidate.Phone)
	if i.sms == nil || phone == "" {
		return
	}
	logger := log.WithField("candidate_id", candidate.ID)
	var buf bytes.Buffer
	if err := reachOutSMSTemplate.Execute(&buf, i.messageData(candidate)); err != nil {
		logger.WithError(err).Error("failed to render sms")
		return
	}
	if err := i.sms.Send(ctx, phone, buf.String()); err != nil {
		metrics.NotificationsSent.WithLabelValues("reach_out_sms", "failed").Inc()
		logger.WithError(err).Warn("failed to send sms")
		return
	}
	metrics.NotificationsSent.WithLabelValues("reach_out_sms", "sent").Inc()
}

func (i impl) messageData(candidate dbmodels.Candidate) messageData {
	firstName := strings.TrimSpace(candidate.FirstName)
	if firstName == "" {
		firstName = "there"
	}
	return messageData{
		FirstName:   firstName,
		FullName:    candidate.GetFullName(),
		CompanyName: i.settings.CompanyName,
		PortalLink:  i.settings.PortalLink,
	}
}
