package create_session

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}
