package domain

import (
	"fmt"
	"logistics/pkg/serrors"
)

// CargoLine is one cargo entry of an ingested request: a catalog keyword and
// a unit count.
type CargoLine struct {
	Kind     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// CargoProfile holds the pricing constants of a cargo kind.
type CargoProfile struct {
	// Name is the human-readable name shown in breakdowns.
	Name string
	// MassPerUnit is the mass of one unit in kilograms.
	MassPerUnit float64
	// CostPerKg is the carriage rate in dollars per kilogram.
	CostPerKg float64
}

// Cargo is a resolved cargo entry: a profile times a quantity. The zero
// quantity is valid; negative quantities are rejected.
type Cargo struct {
	Profile CargoProfile

	quantity int
}

// NewCargo returns a Cargo of qty units of profile.
func NewCargo(profile CargoProfile, qty int) (Cargo, error) {
	c := Cargo{Profile: profile}
	if err := c.SetQuantity(qty); err != nil {
		return Cargo{}, err
	}

	return c, nil
}

// Name returns the profile name.
func (c Cargo) Name() string { return c.Profile.Name }

// Quantity returns the number of units.
func (c Cargo) Quantity() int { return c.quantity }

// SetQuantity changes the number of units.
func (c *Cargo) SetQuantity(qty int) error {
	if qty < 0 {
		return serrors.With(serrors.ErrValidation, "quantity cannot be negative: %d", qty)
	}
	c.quantity = qty

	return nil
}

// TotalMass returns MassPerUnit × quantity in kilograms.
func (c Cargo) TotalMass() float64 {
	return c.Profile.MassPerUnit * float64(c.quantity)
}

// TotalCost returns CostPerKg × TotalMass in dollars.
func (c Cargo) TotalCost() float64 {
	return c.Profile.CostPerKg * c.TotalMass()
}

// Clone returns an independent copy. Cargo owns no reference fields, so the
// copy shares nothing with c.
func (c Cargo) Clone() Cargo {
	return Cargo{Profile: c.Profile, quantity: c.quantity}
}

func (c Cargo) String() string {
	return fmt.Sprintf("%s (%d units, %.2f kg, $%.2f)", c.Profile.Name, c.quantity, c.TotalMass(), c.TotalCost())
}
