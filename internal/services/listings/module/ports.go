package module

import (
	"context"

	"hirehub/internal/services/listings/domain"
	listsvc "hirehub/internal/services/listings/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptQueryPort struct{ svc listsvc.Service }

// Query returns one filtered listing page
func (a adaptQueryPort) Query(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	return a.svc.Query(ctx, in)
}

// Search runs the universal keyword search
func (a adaptQueryPort) Search(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	return a.svc.Search(ctx, in)
}
