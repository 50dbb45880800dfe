// Package http provides http transport for search insights
package http

import (
	stdhttp "net/http"

	"hirehub/internal/modkit/httpkit"
	"hirehub/internal/services/insights/domain"
	svc "hirehub/internal/services/insights/service"
)

// Register mounts insights endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TopKeywordsInput](r, "/top-keywords", h.topKeywords)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /insights/top-keywords Insights insightsTopKeywords
// @Summary Most searched keywords over a recent window
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.TopKeywordsInput true "Window"
// @Success 200 {array} domain.TopKeywordRow "ok"
// @Router /insights/top-keywords [post]
func (h *handlers) topKeywords(r *stdhttp.Request, in domain.TopKeywordsInput) (any, error) {
	return h.svc.TopKeywords(r.Context(), in)
}
