// Package catalog maps cargo and transport keywords to their pricing
// profiles. The tables are fixed at construction; a Registry never changes
// afterwards and is safe for concurrent readers.
package catalog

import (
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"strings"
	"sync"
)

// cargoEntry and transportEntry keep the keyword next to its profile so the
// declaration order doubles as the enumeration order.
type cargoEntry struct {
	kind    string
	profile domain.CargoProfile
}

type transportEntry struct {
	kind    string
	profile domain.TransportProfile
}

func cargoTable() []cargoEntry {
	return []cargoEntry{
		{kind: "electronics", profile: domain.CargoProfile{Name: "Electronics", MassPerUnit: 1.5, CostPerKg: 50}},
		{kind: "clothing", profile: domain.CargoProfile{Name: "Clothing", MassPerUnit: 0.8, CostPerKg: 20}},
		{kind: "equipment", profile: domain.CargoProfile{Name: "Equipment", MassPerUnit: 120, CostPerKg: 15}},
		{kind: "perishable", profile: domain.CargoProfile{Name: "Perishable goods", MassPerUnit: 10, CostPerKg: 100}},
	}
}

func transportTable() []transportEntry {
	return []transportEntry{
		{kind: "truck", profile: domain.TransportProfile{
			Name: "Truck", Category: domain.CategoryLand, CostPerKm: 15, SpeedKmH: 80,
		}},
		{kind: "train", profile: domain.TransportProfile{
			Name: "Train", Category: domain.CategoryLand, CostPerKm: 5, SpeedKmH: 60,
		}},
		{kind: "tanker", profile: domain.TransportProfile{
			Name: "Tanker", Category: domain.CategoryWater, CostPerKm: 2, SpeedKmH: 35,
		}},
		{kind: "airplane", profile: domain.TransportProfile{
			Name: "Airplane", Category: domain.CategoryAir, CostPerKm: 150, SpeedKmH: 850,
		}},
		{kind: "helicopter", profile: domain.TransportProfile{
			Name: "Helicopter", Category: domain.CategoryAir, CostPerKm: 200, SpeedKmH: 250,
		}},
	}
}

// Registry resolves keywords to profiles.
type Registry struct {
	cargoKinds     []string
	cargo          map[string]domain.CargoProfile
	transportKinds []string
	transports     map[string]domain.TransportProfile
}

// New builds a Registry holding the standard cargo and transport tables.
func New() *Registry {
	r := &Registry{
		cargo:      make(map[string]domain.CargoProfile),
		transports: make(map[string]domain.TransportProfile),
	}
	for _, e := range cargoTable() {
		r.cargoKinds = append(r.cargoKinds, e.kind)
		r.cargo[e.kind] = e.profile
	}
	for _, e := range transportTable() {
		r.transportKinds = append(r.transportKinds, e.kind)
		r.transports[e.kind] = e.profile
	}

	return r
}

var (
	defaultOnce     sync.Once //nolint: gochecknoglobals
	defaultRegistry *Registry //nolint: gochecknoglobals
)

// Default returns the process-wide Registry, building it on first use.
// Only the composition root should call it; everything else receives the
// registry as a constructor argument.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})

	return defaultRegistry
}

func normalize(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// CargoProfile returns the profile registered for kind.
func (r *Registry) CargoProfile(kind string) (domain.CargoProfile, error) {
	p, ok := r.cargo[normalize(kind)]
	if !ok {
		return domain.CargoProfile{}, serrors.With(serrors.ErrUnknownKind,
			"unknown cargo kind %q, available: %s", kind, strings.Join(r.cargoKinds, ", "))
	}

	return p, nil
}

// ResolveCargo returns qty units of the cargo registered for kind.
func (r *Registry) ResolveCargo(kind string, qty int) (domain.Cargo, error) {
	p, err := r.CargoProfile(kind)
	if err != nil {
		return domain.Cargo{}, err
	}

	return domain.NewCargo(p, qty)
}

// ResolveTransport returns the transport profile registered for kind.
func (r *Registry) ResolveTransport(kind string) (domain.TransportProfile, error) {
	p, ok := r.transports[normalize(kind)]
	if !ok {
		return domain.TransportProfile{}, serrors.With(serrors.ErrUnknownKind,
			"unknown transport kind %q, available: %s", kind, strings.Join(r.transportKinds, ", "))
	}

	return p, nil
}

// CargoKinds lists the registered cargo keywords in enumeration order.
func (r *Registry) CargoKinds() []string {
	return append([]string(nil), r.cargoKinds...)
}

// TransportKinds lists the registered transport keywords in enumeration order.
func (r *Registry) TransportKinds() []string {
	return append([]string(nil), r.transportKinds...)
}
