package send_contact

// DefaultPhone подставляется, если телефон не указан
const DefaultPhone = "No proporcionado"

// subjectTypes темы обращения формы контактов
var subjectTypes = map[string]string{
	"cotizacion": "Consulta sobre Cotización",
	"poliza":     "Consulta sobre Póliza Existente",
	"siniestro":  "Consulta sobre Siniestro",
	"renovacion": "Renovación de Póliza",
	"general":    "Consulta General",
	"reclamo":    "Reclamo",
}

// Request модель запроса формы контактов
type Request struct {
	Name    string `validate:"required,min=2"`
	Email   string `validate:"required,email"`
	Phone   string
	Subject string `validate:"required"`
	Message string `validate:"required,min=10"`
}
