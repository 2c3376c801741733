package domain_test

import (
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var electronics = domain.CargoProfile{Name: "Electronics", MassPerUnit: 1.5, CostPerKg: 50}

func TestCargoTotals(t *testing.T) {
	c, err := domain.NewCargo(electronics, 5)
	require.NoError(t, err)
	require.Equal(t, 5, c.Quantity())
	require.InDelta(t, 7.5, c.TotalMass(), 0)
	require.InDelta(t, 375.0, c.TotalCost(), 0)
}

func TestCargoRejectsNegativeQuantity(t *testing.T) {
	_, err := domain.NewCargo(electronics, -1)
	require.ErrorIs(t, err, serrors.ErrValidation)

	c, err := domain.NewCargo(electronics, 1)
	require.NoError(t, err)
	require.ErrorIs(t, c.SetQuantity(-3), serrors.ErrValidation)
	require.Equal(t, 1, c.Quantity())
}

func TestCargoCloneIsIndependent(t *testing.T) {
	original, err := domain.NewCargo(electronics, 5)
	require.NoError(t, err)

	clone := original.Clone()
	require.NoError(t, clone.SetQuantity(100))

	require.Equal(t, 5, original.Quantity())
	require.InDelta(t, 7.5, original.TotalMass(), 0)
	require.InDelta(t, 375.0, original.TotalCost(), 0)
	require.InDelta(t, 150.0, clone.TotalMass(), 0)
}

func TestTransportDeliveryTime(t *testing.T) {
	truck := domain.TransportProfile{Name: "Truck", Category: domain.CategoryLand, CostPerKm: 15, SpeedKmH: 80}

	hours, err := truck.DeliveryTime(500)
	require.NoError(t, err)
	require.InDelta(t, 6.25, hours, 0)

	hours, err = truck.DeliveryTime(0)
	require.NoError(t, err)
	require.Zero(t, hours)

	_, err = truck.DeliveryTime(-1)
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = truck.DeliveryTime(math.NaN())
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = truck.DeliveryTime(math.Inf(1))
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = domain.TransportProfile{Name: "Broken"}.DeliveryTime(10)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestTransportIsZero(t *testing.T) {
	require.True(t, domain.TransportProfile{}.IsZero())
	require.False(t, domain.TransportProfile{Name: "Truck"}.IsZero())
}

func TestRequestWithTransportDoesNotAlias(t *testing.T) {
	req := domain.IngestedRequest{
		Cargo:    []domain.CargoLine{{Kind: "electronics", Quantity: 5}},
		Distance: 500,
	}

	pinned := req.WithTransport("truck")
	pinned.Cargo[0].Quantity = 9

	require.Equal(t, "truck", pinned.TransportKind)
	require.Empty(t, req.TransportKind)
	require.Equal(t, 5, req.Cargo[0].Quantity)
}
