package public

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/studentjobsgroningen/site-services/api/internal/catalog"
	"github.com/studentjobsgroningen/site-services/api/internal/interfaces/http/common"
)

type jobListResponse struct {
	Items []catalog.JobRecord `json:"items"`
	Total int                 `json:"total"`
}

// jobListHandler serves the static catalog, optionally filtered by category
// or the featured flag.
func (h *Handler) jobListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []catalog.JobRecord

		switch {
		case r.URL.Query().Get("featured") == "true":
			items = h.catalog.Featured()
		case strings.TrimSpace(r.URL.Query().Get("category")) != "":
			items = h.catalog.ByCategory(catalog.Category(strings.TrimSpace(r.URL.Query().Get("category"))))
		default:
			items = h.catalog.All()
		}

		if limit, ok := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); ok && limit < len(items) {
			items = items[:limit]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, jobListResponse{
			Items: items,
			Total: len(items),
		})
	}
}

func (h *Handler) jobDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		job, ok := h.catalog.BySlug(slug)
		if !ok {
			common.Error(h.logger, w, http.StatusNotFound, "Job not found.")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, job)
	}
}
