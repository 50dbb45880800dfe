package module

import (
	"context"

	"hirehub/internal/services/webboard/domain"
	wbsvc "hirehub/internal/services/webboard/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptQueryPort struct{ svc wbsvc.Service }

// List returns one page of the topic index
func (a adaptQueryPort) List(ctx context.Context, in domain.ListInput) (domain.TopicPage, error) {
	return a.svc.List(ctx, in)
}
