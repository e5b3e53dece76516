package get_session

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// SessionResponse снимок заявки и доступность шагов
type SessionResponse struct {
	SessionID string          `json:"sessionId"`
	Quote     domain.Quote    `json:"quote"`
	Steps     map[string]bool `json:"steps"`
	// NextStep первый шаг, который ещё нельзя пройти дальше
	NextStep domain.Step `json:"nextStep"`
}
