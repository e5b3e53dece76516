package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// Client отправка писем через SendGrid
type Client struct {
	opts Options
	log  Logger
}

func NewClient(opts Options, log Logger) *Client {
	return &Client{
		opts: opts,
		log:  log,
	}
}

// Send отправляет письмо. Повторная отправка остаётся на стороне пользователя.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.opts.APIKey == "" || msg.TemplateID == "" {
		return ErrNotConfigured
	}

	request := sendgrid.GetRequest(c.opts.APIKey, sendEndpoint, c.opts.Host)
	request.Method = http.MethodPost
	client := &sendgrid.Client{Request: request}

	resp, err := client.SendWithContext(ctx, c.build(msg))
	if err != nil {
		c.log.Error("Failed to send email template=%s to=%s: %v", msg.TemplateID, msg.ToEmail, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Error("SendGrid rejected email template=%s to=%s: status=%d body=%s",
			msg.TemplateID, msg.ToEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}

	c.log.Info("Email sent: template=%s to=%s status=%d", msg.TemplateID, msg.ToEmail, resp.StatusCode)
	return nil
}

func (c *Client) build(msg Message) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(c.opts.FromName, c.opts.FromEmail))
	m.SetTemplateID(msg.TemplateID)

	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.ToName, msg.ToEmail))
	for k, v := range msg.Params {
		p.SetDynamicTemplateData(k, v)
	}
	m.AddPersonalizations(p)

	if c.opts.Sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		m.SetMailSettings(ms)
	}

	return m
}
