package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type sentMail struct {
	From struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	ReplyTo *struct {
		Email string `json:"email"`
	} `json:"reply_to"`
	TemplateID       string `json:"template_id"`
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"to"`
		DynamicTemplateData map[string]string `json:"dynamic_template_data"`
	} `json:"personalizations"`
	MailSettings *struct {
		SandboxMode *struct {
			Enable bool `json:"enable"`
		} `json:"sandbox_mode"`
	} `json:"mail_settings"`
}

func newServer(t *testing.T, status int, got *sentMail) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.WriteHeader(status)
	}))
}

func TestClient_Send(t *testing.T) {
	var got sentMail
	srv := newServer(t, http.StatusAccepted, &got)
	defer srv.Close()

	c := NewClient(Options{
		APIKey: "SG.test", Host: srv.URL, FromEmail: "no-reply@example.com", FromName: "Cotizador", Sandbox: true,
	}, nopLogger{})

	err := c.Send(context.Background(), Message{
		TemplateID: "d-quote",
		ToName:     "Juan Pérez",
		ToEmail:    "juan@example.com",
		ReplyTo:    "soporte@example.com",
		Params:     map[string]string{"plan_name": "Plan Básico", "plan_price": "$26.000/mes"},
	})
	require.NoError(t, err)

	assert.Equal(t, "d-quote", got.TemplateID)
	assert.Equal(t, "no-reply@example.com", got.From.Email)
	assert.Equal(t, "Cotizador", got.From.Name)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "soporte@example.com", got.ReplyTo.Email)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	assert.Equal(t, "juan@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "$26.000/mes", got.Personalizations[0].DynamicTemplateData["plan_price"])
	require.NotNil(t, got.MailSettings)
	require.NotNil(t, got.MailSettings.SandboxMode)
	assert.True(t, got.MailSettings.SandboxMode.Enable)
}

func TestClient_Send_Rejected(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, nil)
	defer srv.Close()

	c := NewClient(Options{APIKey: "SG.test", Host: srv.URL, FromEmail: "no-reply@example.com"}, nopLogger{})

	err := c.Send(context.Background(), Message{TemplateID: "d-quote", ToEmail: "juan@example.com"})
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestClient_Send_NotConfigured(t *testing.T) {
	c := NewClient(Options{Host: "http://127.0.0.1:0"}, nopLogger{})

	err := c.Send(context.Background(), Message{TemplateID: "d-quote", ToEmail: "juan@example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
