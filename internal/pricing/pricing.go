// Package pricing applies the delivery cost formula to built orders.
//
// Every function here is a pure computation over its order argument:
//
//	total = Σ costPerKg × massPerUnit × quantity + distance × costPerKm
//	time  = distance / speed
package pricing

import (
	"fmt"
	"logistics/internal/order"
	"strings"
)

// CargoCost is the cost line of one cargo entry.
type CargoCost struct {
	Name      string
	MassKg    float64
	CostPerKg float64
	Cost      float64
}

// Breakdown is the itemized cost of an order. Cargo keeps the order's cargo
// sequence.
type Breakdown struct {
	OrderID           string
	TransportName     string
	Distance          float64
	Cargo             []CargoCost
	CargoCost         float64
	TransportCost     float64
	TotalCost         float64
	DeliveryTimeHours float64
}

// Evaluate prices o.
func Evaluate(o *order.Order) (Breakdown, error) {
	hours, err := o.Transport().DeliveryTime(o.Distance())
	if err != nil {
		return Breakdown{}, err
	}

	cargo := o.Cargo()
	b := Breakdown{
		OrderID:           o.ID(),
		TransportName:     o.Transport().Name,
		Distance:          o.Distance(),
		Cargo:             make([]CargoCost, 0, len(cargo)),
		TransportCost:     o.Distance() * o.Transport().CostPerKm,
		DeliveryTimeHours: hours,
	}
	for _, c := range cargo {
		line := CargoCost{
			Name:      c.Name(),
			MassKg:    c.TotalMass(),
			CostPerKg: c.Profile.CostPerKg,
			Cost:      c.TotalCost(),
		}
		b.Cargo = append(b.Cargo, line)
		b.CargoCost += line.Cost
	}
	b.TotalCost = b.CargoCost + b.TransportCost

	return b, nil
}

// TotalCost returns the total cost of o.
func TotalCost(o *order.Order) (float64, error) {
	b, err := Evaluate(o)
	if err != nil {
		return 0, err
	}

	return b.TotalCost, nil
}

// DeliveryTime returns the delivery time of o in hours.
func DeliveryTime(o *order.Order) (float64, error) {
	return o.Transport().DeliveryTime(o.Distance())
}

// Report renders the breakdown as a human-readable block.
func (b Breakdown) Report() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Order %s via %s (%.2f km)\n", b.OrderID, b.TransportName, b.Distance)
	for _, c := range b.Cargo {
		fmt.Fprintf(&sb, "  %-18s %10.2f kg x %8.2f $/kg = %12.2f $\n", c.Name, c.MassKg, c.CostPerKg, c.Cost)
	}
	fmt.Fprintf(&sb, "  %-18s %12.2f $\n", "cargo", b.CargoCost)
	fmt.Fprintf(&sb, "  %-18s %12.2f $\n", "transport", b.TransportCost)
	fmt.Fprintf(&sb, "  %-18s %12.2f $\n", "total", b.TotalCost)
	fmt.Fprintf(&sb, "  %-18s %12.2f h\n", "delivery time", b.DeliveryTimeHours)

	return sb.String()
}
