package confirm_quote

// Subject тема письма с подтверждением
const Subject = "✅ Cotización Aprobada - Tu Seguro de Auto"

// Request модель запроса на подтверждение заявки
type Request struct {
	SessionID string
}

// Response итог заявки: цена и параметры отправленного письма
type Response struct {
	MonthlyPrice int
	Params       map[string]string
}
