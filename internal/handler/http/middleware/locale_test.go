package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
)

func TestLocale(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   catalog.Locale
	}{
		{"default", "/", "", catalog.LocaleEN},
		{"query", "/?locale=zh", "", catalog.LocaleZH},
		{"header", "/", "zh-CN,zh;q=0.9", catalog.LocaleZH},
		{"query wins", "/?locale=en", "zh-CN", catalog.LocaleEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got catalog.Locale
			h := Locale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = catalog.LocaleFrom(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want), rec.Header().Get("Content-Language"))
		})
	}
}
