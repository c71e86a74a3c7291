package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/gridironlab/nfl-leaders/internal/logic"
	"github.com/gridironlab/nfl-leaders/internal/models"
	"github.com/gridironlab/nfl-leaders/internal/views"
)

// GetLeadersPage renders the team leaders page
// @Summary Team Leaders Page
// @Description Fetches team leaders once and renders every category chart; switching categories happens in the browser
// @Tags Pages
// @Produce html
// @Param category query string false "Category to pre-select" default(first category)
// @Success 200 {string} string "HTML page"
// @Failure 502 {string} string "HTML page in error state"
// @Router / [get]
func (h *Handler) GetLeadersPage(w http.ResponseWriter, r *http.Request) {
	categories, err := h.leaders.FetchCategories(r.Context())
	if err != nil {
		h.logFetchError(r, err)
		page := views.Page(h.meta, views.LeadersError())
		templ.Handler(page, templ.WithStatus(http.StatusBadGateway)).ServeHTTP(w, r)
		return
	}

	data := views.LeadersData{
		Charts:   make([]views.CategoryChart, 0, len(categories)),
		Selected: logic.SelectCategory(categories, r.URL.Query().Get("category")),
	}
	for _, c := range categories {
		data.Charts = append(data.Charts, views.CategoryChart{
			Category: c,
			Chart:    logic.BuildChart(c, h.colors, h.layout),
		})
	}

	templ.Handler(views.Page(h.meta, views.LeadersChart(data))).ServeHTTP(w, r)
}

// GetLeaders returns the projected team leader categories
// @Summary Team Leaders
// @Description Top 5 teams of every statistical category, in upstream order
// @Tags Leaders
// @Produce json
// @Param category query string false "Category to mark as selected"
// @Success 200 {object} models.LeadersResponse
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/leaders [get]
func (h *Handler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	categories, err := h.leaders.FetchCategories(r.Context())
	if err != nil {
		h.logFetchError(r, err)
		h.errorResponse(w, http.StatusBadGateway, views.ErrorMessage)
		return
	}

	h.jsonResponse(w, http.StatusOK, models.LeadersResponse{
		Categories: categories,
		Selected:   logic.SelectCategory(categories, r.URL.Query().Get("category")),
	})
}

// GetCategoryChart returns a standalone SVG chart for one category
// @Summary Category Chart
// @Tags Leaders
// @Produce image/svg+xml
// @Param category path string true "Category name (e.g. passingYards)"
// @Success 200 {string} string "SVG document"
// @Failure 404 {object} map[string]string "Unknown Category"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/leaders/{category}/chart.svg [get]
func (h *Handler) GetCategoryChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "category")

	categories, err := h.leaders.FetchCategories(r.Context())
	if err != nil {
		h.logFetchError(r, err)
		h.errorResponse(w, http.StatusBadGateway, views.ErrorMessage)
		return
	}

	category, ok := logic.FindCategory(categories, name)
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown category")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(logic.RenderSVG(logic.BuildChart(category, h.colors, h.layout))))
}
