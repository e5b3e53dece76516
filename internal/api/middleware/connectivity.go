package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// HeaderClientOffline клиент сообщает, что у него нет связи; справочники отдаются из кэша и встроенных данных
const HeaderClientOffline = "X-Client-Offline"

type offlineKey struct{}

// Connectivity кладёт в контекст признак офлайн-режима.
// forceOffline включает его для всех запросов, например при недоступности внешних сервисов.
func Connectivity(forceOffline bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			offline := forceOffline
			if v := strings.TrimSpace(r.Header.Get(HeaderClientOffline)); v != "" {
				if parsed, err := strconv.ParseBool(v); err == nil {
					offline = offline || parsed
				}
			}
			ctx := context.WithValue(r.Context(), offlineKey{}, offline)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsOffline признак офлайн-режима из контекста
func IsOffline(ctx context.Context) bool {
	offline, _ := ctx.Value(offlineKey{}).(bool)
	return offline
}
