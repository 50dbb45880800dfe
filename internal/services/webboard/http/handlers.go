// Package http provides http transport for the webboard index
package http

import (
	stdhttp "net/http"

	"hirehub/internal/modkit/httpkit"
	perr "hirehub/internal/platform/errors"
	listdom "hirehub/internal/services/listings/domain"
	"hirehub/internal/services/webboard/domain"
	svc "hirehub/internal/services/webboard/service"
)

// Register mounts webboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListWire](r, "/topics", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /webboard/topics Webboard webboardTopics
// @Summary Paged discussion-board index
// @Tags Webboard
// @Accept json
// @Produce json
// @Param payload body domain.ListWire true "Query"
// @Success 200 {object} domain.PageWire "ok"
// @Router /webboard/topics [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListWire) (any, error) {
	cur, err := listdom.ParseCursor(in.Cursor)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad cursor")
	}
	page, err := h.svc.List(r.Context(), domain.ListInput{
		Category:   in.Category,
		SearchTerm: in.Q,
		PageSize:   in.PageSize,
		Cursor:     cur,
	})
	if err != nil {
		return nil, err
	}
	return page.Wire(), nil
}
