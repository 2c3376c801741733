// Package quote turns ingested requests into delivery options. It is the
// single integration point between ingestion, the catalog, order assembly
// and pricing.
package quote

import (
	"context"
	"logistics/internal/catalog"
	"logistics/internal/ingest"
	"logistics/internal/order"
	"logistics/internal/pricing"
	"logistics/pkg/domain"
	"logistics/pkg/logger"

	"go.uber.org/zap"
)

// planner is the concrete implementation of the Planner interface. It holds
// no state across calls beyond its read-only collaborators.
type planner struct {
	registry *catalog.Registry
	ingest   *ingest.Dispatcher
}

// New returns a Planner resolving kinds through reg and reading files
// through dispatcher.
func New(reg *catalog.Registry, dispatcher *ingest.Dispatcher) Planner {
	return planner{registry: reg, ingest: dispatcher}
}

func (p planner) LoadRequest(ctx context.Context, identifier string) (*domain.IngestedRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := p.ingest.LoadFile(identifier)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "loaded request",
		zap.String("input", identifier),
		zap.Int("cargo", len(req.Cargo)),
		zap.Float64("distance", req.Distance),
		zap.String("transport", req.TransportKind))

	return req, nil
}

func (p planner) BuildOrder(_ context.Context, req domain.IngestedRequest) (*order.Order, error) {
	return order.Assemble(p.registry, "", req).Build()
}

// priced is an order together with its evaluation.
type priced struct {
	order     *order.Order
	breakdown pricing.Breakdown
}

func (p planner) ComputeOptions(ctx context.Context, req domain.IngestedRequest) ([]domain.DeliveryOption, error) {
	results, err := p.evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	options := make([]domain.DeliveryOption, len(results))
	for i, r := range results {
		options[i] = Option(r.order, r.breakdown)
	}

	return options, nil
}

func (p planner) Breakdowns(ctx context.Context, req domain.IngestedRequest) ([]pricing.Breakdown, error) {
	results, err := p.evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	breakdowns := make([]pricing.Breakdown, len(results))
	for i, r := range results {
		breakdowns[i] = r.breakdown
	}

	return breakdowns, nil
}

func (p planner) evaluate(ctx context.Context, req domain.IngestedRequest) ([]priced, error) {
	if req.TransportKind != "" {
		r, err := p.price(ctx, req)
		if err != nil {
			return nil, err
		}

		return []priced{r}, nil
	}

	kinds := p.registry.TransportKinds()
	results := make([]priced, 0, len(kinds))
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// A kind that cannot price this request is left out of the result.
		r, err := p.price(ctx, req.WithTransport(kind))
		if err != nil {
			continue
		}
		results = append(results, r)
	}

	return results, nil
}

func (p planner) price(ctx context.Context, req domain.IngestedRequest) (priced, error) {
	o, err := p.BuildOrder(ctx, req)
	if err != nil {
		return priced{}, err
	}

	b, err := pricing.Evaluate(o)
	if err != nil {
		return priced{}, err
	}

	return priced{order: o, breakdown: b}, nil
}

// Option projects an order and its breakdown onto the quote record.
func Option(o *order.Order, b pricing.Breakdown) domain.DeliveryOption {
	t := o.Transport()

	return domain.DeliveryOption{
		TransportName:     t.Name,
		TransportType:     string(t.Category),
		TotalCost:         b.TotalCost,
		DeliveryTimeHours: b.DeliveryTimeHours,
		Speed:             t.SpeedKmH,
	}
}
