package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
)

// Locale resolves the display locale from ?locale= or Accept-Language and
// stores it in the request context.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("locale")
		if raw == "" {
			raw = r.Header.Get("Accept-Language")
		}

		locale := catalog.DefaultLocale
		if raw != "" {
			locale = catalog.ParseLocale(raw)
		}

		w.Header().Set("Content-Language", string(locale))
		next.ServeHTTP(w, r.WithContext(catalog.WithLocale(r.Context(), locale)))
	})
}
