package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type CatalogHandler interface {
	// GetCatalog returns labels, colors and time windows of every enumeration.
	GetCatalog(w http.ResponseWriter, r *http.Request)
	// GetNavigation returns the dashboard menu with titles in the request locale.
	GetNavigation(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct{}

func NewCatalogHandler() CatalogHandler {
	return &catalogHandlerImpl{}
}

type navigationItem struct {
	Path  string `json:"path"`
	Key   string `json:"key"`
	Title string `json:"title"`
}

// GetCatalog handles GET /catalog
func (h *catalogHandlerImpl) GetCatalog(w http.ResponseWriter, r *http.Request) {
	groups := catalog.All()
	response.SuccessWithMeta(w, groups, &response.Meta{
		TotalItems: len(groups),
		Locale:     string(catalog.LocaleFrom(r.Context())),
	})
}

// GetNavigation handles GET /navigation
func (h *catalogHandlerImpl) GetNavigation(w http.ResponseWriter, r *http.Request) {
	locale := catalog.LocaleFrom(r.Context())

	pages := catalog.Pages()
	items := make([]navigationItem, 0, len(pages))
	for _, p := range pages {
		title, ok := p.Titles[locale]
		if !ok {
			title = p.Titles[catalog.DefaultLocale]
		}
		items = append(items, navigationItem{Path: p.Path, Key: p.Key, Title: title})
	}

	response.Success(w, items)
}
