package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"log"
	"strings"
	texttemplate "text/template"

	"defensa_juridica_web/config"
	"defensa_juridica_web/templates/emails"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer hands one email to a delivery provider and returns the provider's
// message ID.
type Mailer interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// ErrEmptyBody is returned when an email has neither an HTML nor a text body
var ErrEmptyBody = errors.New("email must have either HTMLBody or TextBody")

// NewMailer returns the console mailer in test mode and the Resend mailer
// otherwise. The Resend mailer needs cfg.ResendAPIKey.
func NewMailer(cfg *config.Config) (Mailer, error) {
	if cfg.EmailTestMode {
		return ConsoleMailer{}, nil
	}
	if !cfg.MailConfigured() {
		return nil, fmt.Errorf("RESEND_API_KEY not configured")
	}
	return NewResendMailer(cfg.ResendAPIKey), nil
}

// ResendMailer sends through the Resend API
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a Resend-backed mailer
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send delivers email via Resend
func (m *ResendMailer) Send(ctx context.Context, email *Email) (string, error) {
	if email.HTMLBody == "" && email.TextBody == "" {
		return "", ErrEmptyBody
	}

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
		ReplyTo: email.ReplyTo,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("[INFO] Email sent via Resend (ID: %s) to: %v", sent.Id, email.To)
	return sent.Id, nil
}

// ConsoleMailer prints emails instead of sending them (EMAIL_TEST_MODE)
type ConsoleMailer struct{}

// Send logs the email and reports success
func (ConsoleMailer) Send(ctx context.Context, email *Email) (string, error) {
	if email.HTMLBody == "" && email.TextBody == "" {
		return "", ErrEmptyBody
	}
	logEmailToConsole(email)
	return "", nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode, not sent)\n%s", separator, separator)
	log.Printf("From: %s", email.From)
	log.Printf("To: %v", email.To)
	if email.ReplyTo != "" {
		log.Printf("Reply-To: %s", email.ReplyTo)
	}
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// FormatAddress renders "Name <addr>" or just addr when name is empty
func FormatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", name, addr)
}

// emailTemplates is where loadTemplate looks for bodies
var emailTemplates fs.FS = emails.FS

// bodyPolicy runs over visitor text already escaped for HTML, so no
// element can reach a rendered body.
var bodyPolicy = bluemonday.StrictPolicy()

var htmlFuncs = htmltemplate.FuncMap{
	// nl2br escapes s and turns line breaks into <br>
	"nl2br": func(s string) htmltemplate.HTML {
		safe := bodyPolicy.Sanitize(htmltemplate.HTMLEscapeString(s))
		safe = strings.ReplaceAll(safe, "\r\n", "\n")
		return htmltemplate.HTML(strings.ReplaceAll(safe, "\n", "<br>"))
	},
}

// loadTemplate renders templateName + "_" + lang + ".html/.txt", falling
// back to templateName + ".html/.txt" (the Spanish base).
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, []byte, error) {
		name := fmt.Sprintf("%s_%s%s", templateName, lang, ext)
		content, err := fs.ReadFile(emailTemplates, name)
		if err != nil {
			name = templateName + ext
			content, err = fs.ReadFile(emailTemplates, name)
			if err != nil {
				return "", nil, fmt.Errorf("failed to read template %s: %w", name, err)
			}
		}
		return name, content, nil
	}

	name, content, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := htmltemplate.New(name).Funcs(htmlFuncs).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	name, content, err = read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(name).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// ContactEmailData fills the contact notification templates
type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Message string
	SentAt  string
}

// ContactSubject is the subject line of a contact notification
func ContactSubject(name string) string {
	return "Nuevo mensaje de contacto - " + name
}

// BuildContactEmail renders the notification sent to the firm's mailbox for
// one contact form submission. Replies go straight to the sender.
func BuildContactEmail(cfg *config.Config, data ContactEmailData) (*Email, error) {
	htmlBody, textBody, err := loadTemplate("contact_notification", "es", data)
	if err != nil {
		return nil, err
	}

	return &Email{
		From:     FormatAddress(cfg.ContactFromName, cfg.ContactFromEmail),
		To:       []string{cfg.ContactToEmail},
		ReplyTo:  data.Email,
		Subject:  ContactSubject(data.Name),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}
