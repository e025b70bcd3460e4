package api

import (
	"net/http"

	"github.com/okian/tripace/internal/domain/race"
)

// CategoriesHandler lists the race catalog.
type CategoriesHandler struct {
	deps Dependencies
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(deps Dependencies) *CategoriesHandler {
	return &CategoriesHandler{deps: deps}
}

type categoriesResponse struct {
	Default    race.Category `json:"default"`
	Categories []race.Entry  `json:"categories"`
}

// HandleGetCategories handles GET /categories requests.
func (h *CategoriesHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, "api.get_categories", http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{
		Default:    h.deps.DefaultCategory(),
		Categories: h.deps.Categories(),
	})
}
