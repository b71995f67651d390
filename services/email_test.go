package services

import (
	"context"
	htmltemplate "html/template"
	"testing"
	"testing/fstest"

	"defensa_juridica_web/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEmailTemplates(t *testing.T, files fstest.MapFS) {
	t.Helper()
	saved := emailTemplates
	emailTemplates = files
	t.Cleanup(func() { emailTemplates = saved })
}

func TestLoadTemplate(t *testing.T) {
	withEmailTemplates(t, fstest.MapFS{
		"greeting.html":    {Data: []byte("<p>Hola {{.Name}}</p>")},
		"greeting.txt":     {Data: []byte("Hola {{.Name}}")},
		"greeting_en.html": {Data: []byte("<p>Hello {{.Name}}</p>")},
		"greeting_en.txt":  {Data: []byte("Hello {{.Name}}")},
		"broken.html":      {Data: []byte("{{.Name")},
		"broken.txt":       {Data: []byte("ok")},
	})

	data := map[string]string{"Name": "O'Higgins <b>"}

	t.Run("Base template", func(t *testing.T) {
		html, text, err := loadTemplate("greeting", "es", data)
		require.NoError(t, err)
		assert.Equal(t, "<p>Hola O&#39;Higgins &lt;b&gt;</p>", html)
		assert.Equal(t, "Hola O'Higgins <b>", text, "text bodies are not HTML-escaped")
	})

	t.Run("Localized template", func(t *testing.T) {
		html, text, err := loadTemplate("greeting", "en", data)
		require.NoError(t, err)
		assert.Contains(t, html, "Hello")
		assert.Contains(t, text, "Hello")
	})

	t.Run("Fallback to base when localized missing", func(t *testing.T) {
		_, text, err := loadTemplate("greeting", "fr", data)
		require.NoError(t, err)
		assert.Contains(t, text, "Hola")
	})

	t.Run("Template not found", func(t *testing.T) {
		_, _, err := loadTemplate("non_existent", "es", data)
		assert.Error(t, err)
	})

	t.Run("Parse error", func(t *testing.T) {
		_, _, err := loadTemplate("broken", "es", data)
		assert.Error(t, err)
	})
}

func TestBuildContactEmail(t *testing.T) {
	cfg := &config.Config{
		ContactFromName:  "Defensa Jurídica Sur",
		ContactFromEmail: config.DefaultContactFrom,
		ContactToEmail:   config.DefaultContactTo,
	}

	email, err := BuildContactEmail(cfg, ContactEmailData{
		Name:    "Ana",
		Email:   "a@b.com",
		Phone:   "+56911111111",
		Message: "hola\n<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Defensa Jurídica Sur <noreply@defensajuridicasur.cl>", email.From)
	assert.Equal(t, []string{"juridicasurdefensa@gmail.com"}, email.To)
	assert.Equal(t, "a@b.com", email.ReplyTo)
	assert.Equal(t, "Nuevo mensaje de contacto - Ana", email.Subject)

	assert.Contains(t, email.TextBody, "Nombre: Ana")
	assert.Contains(t, email.TextBody, "Teléfono: +56911111111")
	assert.Contains(t, email.TextBody, "hola\n<script>")

	assert.Contains(t, email.HTMLBody, "hola<br>&lt;script&gt;")
	assert.NotContains(t, email.HTMLBody, "<script>")
	assert.NotContains(t, email.HTMLBody, "Recibido")
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(&config.Config{EmailTestMode: true})
	require.NoError(t, err)
	assert.IsType(t, ConsoleMailer{}, m)

	_, err = NewMailer(&config.Config{})
	assert.Error(t, err)

	m, err = NewMailer(&config.Config{ResendAPIKey: "re_123"})
	require.NoError(t, err)
	assert.IsType(t, &ResendMailer{}, m)
}

func TestConsoleMailer(t *testing.T) {
	id, err := ConsoleMailer{}.Send(context.Background(), &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		TextBody: "Body",
	})
	assert.NoError(t, err)
	assert.Empty(t, id)

	_, err = ConsoleMailer{}.Send(context.Background(), &Email{Subject: "Empty"})
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestResendMailerRejectsEmptyBody(t *testing.T) {
	_, err := NewResendMailer("key").Send(context.Background(), &Email{Subject: "Test"})
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "a@b.com", FormatAddress("", "a@b.com"))
	assert.Equal(t, "Ana <a@b.com>", FormatAddress("Ana", "a@b.com"))
}

func TestTruncate(t *testing.T) {
	s := "Hello World"
	assert.Equal(t, "Hello", truncate(s, 5))
	assert.Equal(t, "Hello World", truncate(s, 20))
}

func TestNl2brEscapesMarkup(t *testing.T) {
	nl2br := htmlFuncs["nl2br"].(func(string) htmltemplate.HTML)

	assert.Equal(t, htmltemplate.HTML("Consulta por &lt;contrato&gt;<br>de arriendo"), nl2br("Consulta por <contrato>\r\nde arriendo"))
	assert.Equal(t, htmltemplate.HTML("&lt;hola&gt;"), nl2br("<hola>"))
	assert.Equal(t, htmltemplate.HTML("O&#39;Higgins &amp; Cía."), nl2br("O'Higgins & Cía."))
}
