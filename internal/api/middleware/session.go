package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// HeaderSessionID сессия для маршрутов без идентификатора в пути
const HeaderSessionID = "X-Session-ID"

type sessionKey struct{}

// Session берёт идентификатор сессии из пути ({sessionId}) или заголовка X-Session-ID.
// Запрос без сессии получает 400.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := mux.Vars(r)["sessionId"]
		if sessionID == "" {
			sessionID = strings.TrimSpace(r.Header.Get(HeaderSessionID))
		}
		if sessionID == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"falta el identificador de sesión"}`))
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionKey{}).(string)
	return sessionID, ok && sessionID != ""
}
