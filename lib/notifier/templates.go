package notifier

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

type messageData struct {
	FirstName   string
	FullName    string
	CompanyName string
	PortalLink  string
}

type messageTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(name, subject, body string) messageTemplate {
	return messageTemplate{
		subject: template.Must(template.New(name + "_subject").Parse(subject)),
		body:    template.Must(template.New(name + "_body").Parse(body)),
	}
}

func (m messageTemplate) render(data messageData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err = m.subject.Execute(&buf, data); err != nil {
		return "", "", errors.Wrap(err, "subject template")
	}
	subject = buf.String()
	buf.Reset()
	if err = m.body.Execute(&buf, data); err != nil {
		return "", "", errors.Wrap(err, "body template")
	}
	return subject, buf.String(), nil
}

var offerTemplate = mustTemplate("offer",
	`Welcome to {{.CompanyName}}, {{.FirstName}}!`,
	`Hi {{.FirstName}},

Congratulations! We are happy to offer you a Registered Behavior Technician position at {{.CompanyName}}.

Sign in to the portal with this email address to start your onboarding checklist:
{{.PortalLink}}

Welcome aboard,
The {{.CompanyName}} team
`)

var rejectionTemplate = mustTemplate("rejection",
	`Your application at {{.CompanyName}}`,
	`Hi {{.FirstName}},

Thank you for your interest in joining {{.CompanyName}}. After careful review we have decided not to move forward with your application at this time.

We wish you the best in your search.
The {{.CompanyName}} team
`)

var reachOutTemplate = mustTemplate("reach_out",
	`{{.CompanyName}}: next steps for your RBT application`,
	`Hi {{.FirstName}},

Thanks for applying to {{.CompanyName}}. We would like to set up a short interview. Please reply to this email with a few times that work for you.

The {{.CompanyName}} team
`)

var reachOutSMSTemplate = template.Must(template.New("reach_out_sms").Parse(
	`{{.CompanyName}}: Hi {{.FirstName}}, thanks for applying! Please check your email to schedule your interview.`))
