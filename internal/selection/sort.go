package selection

import (
	"cmp"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"slices"
	"strings"
)

// Comparator orders two options: negative when a sorts first, zero on a tie.
type Comparator func(a, b domain.DeliveryOption) int

func direction(c Comparator, asc bool) Comparator {
	if asc {
		return c
	}

	return func(a, b domain.DeliveryOption) int { return c(b, a) }
}

// ByPrice orders by total cost.
func ByPrice(asc bool) Comparator {
	return direction(func(a, b domain.DeliveryOption) int {
		return cmp.Compare(a.TotalCost, b.TotalCost)
	}, asc)
}

// ByName orders by transport name, ignoring case.
func ByName(asc bool) Comparator {
	return direction(func(a, b domain.DeliveryOption) int {
		return strings.Compare(strings.ToLower(a.TransportName), strings.ToLower(b.TransportName))
	}, asc)
}

// BySpeed orders by speed.
func BySpeed(asc bool) Comparator {
	return direction(func(a, b domain.DeliveryOption) int {
		return cmp.Compare(a.Speed, b.Speed)
	}, asc)
}

// ByTime orders by delivery time.
func ByTime(asc bool) Comparator {
	return direction(func(a, b domain.DeliveryOption) int {
		return cmp.Compare(a.DeliveryTimeHours, b.DeliveryTimeHours)
	}, asc)
}

// Then orders by primary and consults each secondary key in turn only while
// the previous keys tie.
func Then(primary Comparator, secondary ...Comparator) Comparator {
	return func(a, b domain.DeliveryOption) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		for _, next := range secondary {
			if c := next(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// Sort returns a stably sorted copy of options.
func Sort(options []domain.DeliveryOption, c Comparator) []domain.DeliveryOption {
	out := slices.Clone(options)
	slices.SortStableFunc(out, c)

	return out
}

var sortKeys = map[string]func(asc bool) Comparator{ //nolint: gochecknoglobals
	"price": ByPrice,
	"name":  ByName,
	"speed": BySpeed,
	"time":  ByTime,
}

// ParseOrder builds a comparator from a key list such as
// "price:asc,name:desc". The direction defaults to ascending. An empty list
// yields nil.
func ParseOrder(keyList string) (Comparator, error) {
	var keys []Comparator
	for _, part := range strings.Split(keyList, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, dir, _ := strings.Cut(part, ":")
		key, ok := sortKeys[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, serrors.With(serrors.ErrUnsupportedFormat,
				"unknown sort key %q, expected one of: price, name, speed, time", name)
		}

		var asc bool
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "", "asc":
			asc = true
		case "desc":
			asc = false
		default:
			return nil, serrors.With(serrors.ErrUnsupportedFormat, "unknown sort direction %q", dir)
		}
		keys = append(keys, key(asc))
	}

	if len(keys) == 0 {
		return nil, nil
	}

	return Then(keys[0], keys[1:]...), nil
}
