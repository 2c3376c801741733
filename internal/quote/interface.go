package quote

import (
	"context"
	"logistics/internal/order"
	"logistics/internal/pricing"
	"logistics/pkg/domain"
)

//go:generate mockgen -package mockquote -source=interface.go -destination=mock/mockquote.go *
type Planner interface {
	// LoadRequest reads and parses the request file at identifier.
	LoadRequest(ctx context.Context, identifier string) (*domain.IngestedRequest, error)
	// BuildOrder assembles req into an order. req must name a transport.
	BuildOrder(ctx context.Context, req domain.IngestedRequest) (*order.Order, error)
	// ComputeOptions quotes req for its transport, or for every known
	// transport when it names none.
	ComputeOptions(ctx context.Context, req domain.IngestedRequest) ([]domain.DeliveryOption, error)
	// Breakdowns is ComputeOptions returning the itemized costs instead of
	// the quote records.
	Breakdowns(ctx context.Context, req domain.IngestedRequest) ([]pricing.Breakdown, error)
}
