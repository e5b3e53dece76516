package mailer

// Message письмо по динамическому шаблону SendGrid с плоским набором параметров
type Message struct {
	TemplateID string
	ToName     string
	ToEmail    string
	ReplyTo    string
	Params     map[string]string
}

type Options struct {
	APIKey    string
	Host      string
	FromEmail string
	FromName  string
	// Sandbox письма валидируются SendGrid, но не доставляются
	Sandbox bool
}
