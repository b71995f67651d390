package handlers

import (
	"errors"
	"net/http"

	"defensa_juridica_web/config"
	"defensa_juridica_web/db"
	"defensa_juridica_web/middleware"
	"defensa_juridica_web/services"
	"defensa_juridica_web/services/i18n"

	"github.com/labstack/echo/v4"
)

// ContactResponse is the JSON body of every contact form reply
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Overridable in tests
var (
	mailerFactory     = services.NewMailer
	turnstileVerifier services.TurnstileVerifier = services.VerifyTurnstileToken
)

// contactArchive returns the archive backed by the global database, or nil
// when no database is open
func contactArchive() services.ContactArchive {
	if db.DB == nil {
		return nil
	}
	return services.NewContactArchive(db.DB)
}

// ContactPostHandler handles POST /api/contact. The mail send is awaited;
// a failed send is reported to the sender and not retried. Rejected
// submissions are counted per IP on monitor, which may be nil.
func ContactPostHandler(metrics *middleware.Metrics, monitor *services.AbuseMonitor) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg := c.Get("config").(*config.Config)
		ctx := c.Request().Context()

		reply := func(status int, outcome, key string) error {
			metrics.ContactSubmission(outcome)
			return c.JSON(status, ContactResponse{
				Success: status == http.StatusOK,
				Message: i18n.T(ctx, key),
			})
		}

		mailer, err := mailerFactory(cfg)
		if err != nil {
			c.Logger().Errorf("Contact mailer unavailable: %v", err)
			return reply(http.StatusInternalServerError, "config_error", "contact.config_error")
		}

		svc := services.NewContactService(cfg, mailer, contactArchive()).WithVerifier(turnstileVerifier)
		_, err = svc.Submit(ctx, services.ContactSubmission{
			Name:           c.FormValue("name"),
			Email:          c.FormValue("email"),
			Phone:          c.FormValue("phone"),
			Message:        c.FormValue("message"),
			TurnstileToken: c.FormValue("cf-turnstile-response"),
			IPAddress:      c.RealIP(),
			UserAgent:      c.Request().UserAgent(),
		})

		var validationErr *services.ValidationError
		switch {
		case err == nil:
			return reply(http.StatusOK, "sent", "contact.success")
		case errors.Is(err, services.ErrMailNotConfigured):
			c.Logger().Error("RESEND_API_KEY is not configured")
			return reply(http.StatusInternalServerError, "config_error", "contact.config_error")
		case errors.As(err, &validationErr):
			monitor.TrackRejection(c.RealIP(), validationErr.Key)
			return reply(http.StatusBadRequest, "invalid", validationErr.Key)
		default:
			c.Logger().Errorf("Contact delivery failed: %v", err)
			return reply(http.StatusInternalServerError, "delivery_error", "contact.delivery_error")
		}
	}
}
