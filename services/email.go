package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"law_office_app_go/config"
	"law_office_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

var caseOpenedTemplate = template.Must(template.New("case_opened").Parse(`
<h2>Your case has been registered</h2>
<p>Dear {{.ClientName}},</p>
<p>Your case <strong>{{.CaseNumber}}</strong> ("{{.Title}}") has been
registered with {{.Court}} and is now being tracked by our office.</p>
<p>We will keep you informed of any developments.</p>
`))

// BuildCaseOpenedEmail builds the notification sent to a client when a new
// case is registered for them.
func BuildCaseOpenedEmail(client *models.Client, caseRecord *models.Case) (*Email, error) {
	data := struct {
		ClientName string
		CaseNumber string
		Title      string
		Court      string
	}{
		ClientName: client.Name,
		CaseNumber: caseRecord.CaseNumber,
		Title:      caseRecord.Title,
		Court:      caseRecord.Court,
	}

	var buf bytes.Buffer
	if err := caseOpenedTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render case opened email: %w", err)
	}

	return &Email{
		To:       []string{client.Email},
		Subject:  fmt.Sprintf("Case %s registered", caseRecord.CaseNumber),
		HTMLBody: buf.String(),
		TextBody: fmt.Sprintf(
			"Dear %s,\n\nYour case %s (%q) has been registered with %s and is now being tracked by our office.\n",
			client.Name, caseRecord.CaseNumber, caseRecord.Title, caseRecord.Court,
		),
	}, nil
}

// SendEmail sends an email via Resend. In test mode the message is logged to
// the console instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		log.Printf("[EMAIL TEST MODE] To: %v | Subject: %s\n%s", email.To, email.Subject, email.TextBody)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %v (id: %s)", email.To, sent.Id)
	return nil
}

// SendEmailAsync sends an email in a goroutine so request handlers never
// block on the email provider. Failures are logged, not propagated.
func SendEmailAsync(cfg *config.Config, email *Email) {
	go func() {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("[WARNING] Failed to send email to %v: %v", email.To, err)
		}
	}()
}
