package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"defensa_juridica_web/config"
	"defensa_juridica_web/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrMailNotConfigured means the mail provider credential is missing. The
// caller cannot fix it.
var ErrMailNotConfigured = errors.New("mail provider credential not configured")

// ValidationError is a submission problem the sender can correct
type ValidationError struct {
	Field string
	// Key is the i18n key of the message shown to the sender
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DeliveryError wraps a failure of the mail provider
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("contact delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Field limits, generous enough for any real submission
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 50
	maxMessageLen = 5000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks the basic local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ContactSubmission is one contact form post
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string

	TurnstileToken string
	IPAddress      string
	UserAgent      string
}

// ContactArchive records every accepted submission with its delivery outcome
type ContactArchive interface {
	Save(ctx context.Context, msg *models.ContactMessage) error
}

// TurnstileVerifier checks a CAPTCHA token
type TurnstileVerifier func(ctx context.Context, token, secret, ip string) (bool, error)

// ContactService validates contact submissions and relays them to the firm
type ContactService struct {
	cfg     *config.Config
	mailer  Mailer
	archive ContactArchive
	verify  TurnstileVerifier
	tracer  trace.Tracer
	now     func() time.Time
}

// NewContactService wires a service. archive may be nil.
func NewContactService(cfg *config.Config, mailer Mailer, archive ContactArchive) *ContactService {
	return &ContactService{
		cfg:     cfg,
		mailer:  mailer,
		archive: archive,
		verify:  VerifyTurnstileToken,
		tracer:  otel.Tracer("defensa_juridica_web/contact"),
		now:     time.Now,
	}
}

// WithVerifier replaces the Turnstile check
func (s *ContactService) WithVerifier(v TurnstileVerifier) *ContactService {
	s.verify = v
	return s
}

// Submit runs the checks in order (credential, required fields, email shape,
// CAPTCHA), then sends the notification and archives the submission. The
// send is awaited and never retried.
func (s *ContactService) Submit(ctx context.Context, sub ContactSubmission) (*models.ContactMessage, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if !s.cfg.MailConfigured() {
		span.SetStatus(codes.Error, "mail not configured")
		return nil, ErrMailNotConfigured
	}

	clean, err := s.Validate(sub)
	if err != nil {
		span.SetAttributes(attribute.String("contact.rejected", err.Error()))
		return nil, err
	}

	if s.cfg.TurnstileSecretKey != "" {
		ok, err := s.verify(ctx, sub.TurnstileToken, s.cfg.TurnstileSecretKey, sub.IPAddress)
		if err != nil || !ok {
			log.Printf("[WARNING] Turnstile rejected contact from %s: %v", sub.IPAddress, err)
			span.SetAttributes(attribute.String("contact.rejected", "captcha"))
			return nil, &ValidationError{Field: "captcha", Key: "contact.captcha", Reason: "captcha verification failed"}
		}
	}

	email, err := BuildContactEmail(s.cfg, ContactEmailData{
		Name:    clean.Name,
		Email:   clean.Email,
		Phone:   clean.Phone,
		Message: clean.Message,
		SentAt:  s.now().Format("02/01/2006 15:04"),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, &DeliveryError{Err: err}
	}

	msg := &models.ContactMessage{
		Name:      clean.Name,
		Email:     clean.Email,
		Phone:     clean.Phone,
		Message:   clean.Message,
		IPAddress: sub.IPAddress,
		UserAgent: truncate(sub.UserAgent, 255),
	}

	sendCtx, sendSpan := s.tracer.Start(ctx, "contact.send")
	providerID, sendErr := s.mailer.Send(sendCtx, email)
	if sendErr != nil {
		sendSpan.RecordError(sendErr)
		sendSpan.SetStatus(codes.Error, "send failed")
	}
	sendSpan.End()

	switch {
	case sendErr != nil:
		msg.Status = models.ContactStatusFailed
		msg.DeliveryError = sendErr.Error()
	case s.cfg.EmailTestMode:
		msg.Status = models.ContactStatusLogged
	default:
		msg.Status = models.ContactStatusSent
		msg.ProviderID = providerID
	}

	s.archiveMessage(ctx, msg)

	if sendErr != nil {
		log.Printf("[ERROR] Contact email from %s could not be sent: %v", clean.Email, sendErr)
		span.SetStatus(codes.Error, "delivery failed")
		return msg, &DeliveryError{Err: sendErr}
	}

	span.SetAttributes(attribute.String("contact.status", msg.Status))
	return msg, nil
}

// archiveMessage stores msg. A failing archive never fails the submission.
func (s *ContactService) archiveMessage(ctx context.Context, msg *models.ContactMessage) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Save(ctx, msg); err != nil {
		log.Printf("[WARNING] Failed to archive contact message: %v", err)
	}
}

// Validate trims every field and checks them in form order. The trimmed
// text is returned as typed; markup is only neutralized when a body is
// rendered as HTML.
func (s *ContactService) Validate(sub ContactSubmission) (ContactSubmission, error) {
	clean := sub
	clean.Name = strings.TrimSpace(sub.Name)
	clean.Email = strings.TrimSpace(sub.Email)
	clean.Phone = strings.TrimSpace(sub.Phone)
	clean.Message = strings.TrimSpace(strings.ReplaceAll(sub.Message, "\r\n", "\n"))

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"name", clean.Name, maxNameLen},
		{"email", clean.Email, maxEmailLen},
		{"phone", clean.Phone, maxPhoneLen},
		{"message", clean.Message, maxMessageLen},
	}
	for _, f := range fields {
		if f.value == "" {
			return clean, &ValidationError{Field: f.name, Key: "contact.required", Reason: "required"}
		}
	}
	for _, f := range fields {
		if len([]rune(f.value)) > f.max {
			return clean, &ValidationError{Field: f.name, Key: "contact.too_long", Reason: fmt.Sprintf("longer than %d characters", f.max)}
		}
	}

	if !IsValidEmail(clean.Email) {
		return clean, &ValidationError{Field: "email", Key: "contact.invalid_email", Reason: "invalid format"}
	}

	return clean, nil
}
