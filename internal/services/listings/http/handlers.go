// Package http provides http transport for listings
package http

import (
	stdhttp "net/http"

	"hirehub/internal/modkit/httpkit"
	perr "hirehub/internal/platform/errors"
	"hirehub/internal/services/listings/domain"
	svc "hirehub/internal/services/listings/service"
)

// Register mounts the unauthenticated listings endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
}

// RegisterProtected mounts the identified-caller endpoints
func RegisterProtected(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.query)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /listings/query Listings listingsQuery
// @Summary Filtered listing page with resumable cursor
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Filter"
// @Success 200 {object} domain.PageOutput "ok"
// @Security BearerAuth
// @Router /listings/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	spec, err := toSpec(in)
	if err != nil {
		return nil, err
	}
	page, err := h.svc.Query(r.Context(), spec)
	if err != nil {
		return nil, err
	}
	return domain.WirePage(page), nil
}

// swagger:route POST /listings/search Listings listingsSearch
// @Summary Universal keyword search across jobs and helpers
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Search"
// @Success 200 {object} domain.PageOutput "ok"
// @Router /listings/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	cur, err := domain.ParseCursor(in.Cursor)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad cursor")
	}
	page, err := h.svc.Search(r.Context(), domain.FilterSpec{
		ResultType: domain.ResultAll,
		Province:   in.Province,
		SearchTerm: in.Q,
		PageSize:   in.PageSize,
		Cursor:     cur,
	})
	if err != nil {
		return nil, err
	}
	return domain.WirePage(page), nil
}

// toSpec decodes the wire input into a FilterSpec
func toSpec(in domain.QueryInput) (domain.FilterSpec, error) {
	cur, err := domain.ParseCursor(in.Cursor)
	if err != nil {
		return domain.FilterSpec{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad cursor")
	}
	return domain.FilterSpec{
		ResultType:  domain.ResultType(in.ResultType),
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Province:    in.Province,
		SearchTerm:  in.Q,
		PageSize:    in.PageSize,
		Cursor:      cur,
	}, nil
}
