package order

import (
	"logistics/internal/catalog"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Builder collects the parts of an Order. Setters never fail directly:
// the first problem is recorded and every later setter becomes a no-op, so
// a caller can attach all of its inputs and check once at Build.
type Builder struct {
	id        string
	cargo     []domain.Cargo
	transport domain.TransportProfile
	distance  float64
	err       error
}

// NewID returns a fresh order identifier such as "ORD-1f0c9a2b".
func NewID() string {
	return "ORD-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// NewBuilder starts an order with the given id, generating one when empty.
func NewBuilder(id string) *Builder {
	if id == "" {
		id = NewID()
	}

	return &Builder{id: id}
}

// WithCargo appends a copy of c.
func (b *Builder) WithCargo(c domain.Cargo) *Builder {
	if b.err != nil {
		return b
	}
	b.cargo = append(b.cargo, c.Clone())

	return b
}

// WithTransport sets the transport, replacing any earlier one.
func (b *Builder) WithTransport(t domain.TransportProfile) *Builder {
	if b.err != nil {
		return b
	}
	if t.IsZero() || t.SpeedKmH <= 0 {
		b.err = serrors.With(serrors.ErrValidation, "transport must have a name and a positive speed")

		return b
	}
	b.transport = t

	return b
}

// WithDistance sets the route length in kilometres.
func (b *Builder) WithDistance(distance float64) *Builder {
	if b.err != nil {
		return b
	}
	if !(distance > 0) || math.IsInf(distance, 1) {
		b.err = serrors.With(serrors.ErrValidation, "distance must be > 0, got %.2f", distance)

		return b
	}
	b.distance = distance

	return b
}

// Fail records err as the builder's error unless one is already recorded.
// It lets callers route upstream failures, such as catalog lookups, through
// the same deferred check.
func (b *Builder) Fail(err error) *Builder {
	if b.err == nil && err != nil {
		b.err = err
	}

	return b
}

// Build validates the collected parts and returns the order. A recorded
// error wins; otherwise missing transport, empty cargo and missing distance
// are reported in that order.
func (b *Builder) Build() (*Order, error) {
	switch {
	case b.err != nil:
		return nil, serrors.Wrap(serrors.ErrValidation, b.err, "could not build order")
	case b.transport.IsZero():
		return nil, serrors.With(serrors.ErrValidation, "transport is not set")
	case len(b.cargo) == 0:
		return nil, serrors.With(serrors.ErrValidation, "at least one cargo entry is required")
	case b.distance == 0:
		return nil, serrors.With(serrors.ErrValidation, "distance is not set")
	}

	cargo := make([]domain.Cargo, len(b.cargo))
	for i, c := range b.cargo {
		cargo[i] = c.Clone()
	}

	return &Order{
		id:        b.id,
		cargo:     cargo,
		transport: b.transport,
		distance:  b.distance,
	}, nil
}

// Assemble resolves req through reg into a builder. Lookup failures are
// recorded on the builder rather than returned, so Build reports them.
func Assemble(reg *catalog.Registry, id string, req domain.IngestedRequest) *Builder {
	b := NewBuilder(id)
	for _, line := range req.Cargo {
		c, err := reg.ResolveCargo(line.Kind, line.Quantity)
		if err != nil {
			b.Fail(err)

			continue
		}
		b.WithCargo(c)
	}

	if req.TransportKind != "" {
		t, err := reg.ResolveTransport(req.TransportKind)
		if err != nil {
			b.Fail(err)
		} else {
			b.WithTransport(t)
		}
	}

	if req.Distance != 0 {
		b.WithDistance(req.Distance)
	}

	return b
}
