// Package order assembles validated, immutable delivery orders.
package order

import (
	"fmt"
	"logistics/pkg/domain"
	"strings"
)

// Order is a delivery order: at least one cargo entry, exactly one transport
// and a positive distance. It cannot be changed after Build.
type Order struct {
	id        string
	cargo     []domain.Cargo
	transport domain.TransportProfile
	distance  float64
}

// ID returns the order identifier.
func (o *Order) ID() string { return o.id }

// Cargo returns a copy of the cargo entries in the order they were added.
func (o *Order) Cargo() []domain.Cargo {
	out := make([]domain.Cargo, len(o.cargo))
	for i, c := range o.cargo {
		out[i] = c.Clone()
	}

	return out
}

// CargoCount returns the number of cargo entries.
func (o *Order) CargoCount() int { return len(o.cargo) }

// Transport returns the transport profile.
func (o *Order) Transport() domain.TransportProfile { return o.transport }

// Distance returns the route length in kilometres.
func (o *Order) Distance() float64 { return o.distance }

// TotalCargoMass sums the mass of every cargo entry.
func (o *Order) TotalCargoMass() float64 {
	var total float64
	for _, c := range o.cargo {
		total += c.TotalMass()
	}

	return total
}

// TotalCargoCost sums the cost of every cargo entry.
func (o *Order) TotalCargoCost() float64 {
	var total float64
	for _, c := range o.cargo {
		total += c.TotalCost()
	}

	return total
}

// CargoSummary joins the cargo names with ", ".
func (o *Order) CargoSummary() string {
	names := make([]string, len(o.cargo))
	for i, c := range o.cargo {
		names[i] = c.Name()
	}

	return strings.Join(names, ", ")
}

func (o *Order) String() string {
	return fmt.Sprintf("Order %s: %s -> %s (distance: %.2f km, mass: %.2f kg)",
		o.id, o.transport.Name, o.CargoSummary(), o.distance, o.TotalCargoMass())
}
