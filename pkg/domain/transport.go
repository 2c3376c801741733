package domain

import (
	"fmt"
	"logistics/pkg/serrors"
	"math"
)

// TransportCategory groups transport kinds by the medium they travel through.
type TransportCategory string

const (
	// CategoryLand covers road and rail carriage.
	CategoryLand TransportCategory = "Land"
	// CategoryWater covers sea and river carriage.
	CategoryWater TransportCategory = "Water"
	// CategoryAir covers fixed-wing and rotary aircraft.
	CategoryAir TransportCategory = "Air"
)

// TransportProfile holds the pricing and speed constants of a transport kind.
type TransportProfile struct {
	Name      string
	Category  TransportCategory
	CostPerKm float64
	SpeedKmH  float64
}

// IsZero reports whether p is unset.
func (p TransportProfile) IsZero() bool {
	return p == TransportProfile{}
}

// DeliveryTime returns the travel time in hours for distance kilometres.
func (p TransportProfile) DeliveryTime(distance float64) (float64, error) {
	if !(distance >= 0) || math.IsInf(distance, 1) {
		return 0, serrors.With(serrors.ErrValidation, "distance must be finite and non-negative: %.2f", distance)
	}
	if p.SpeedKmH <= 0 {
		return 0, serrors.With(serrors.ErrValidation, "transport %q has no speed", p.Name)
	}

	return distance / p.SpeedKmH, nil
}

func (p TransportProfile) String() string {
	return fmt.Sprintf("%s (%s, $%.2f/km, %.0f km/h)", p.Name, p.Category, p.CostPerKm, p.SpeedKmH)
}
