// Package selection filters and orders delivery options. Predicates and
// comparators are plain functions so callers compose them freely.
package selection

import (
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"regexp"
	"strings"
)

// Predicate reports whether an option should be kept.
type Predicate func(domain.DeliveryOption) bool

// MaxPrice keeps options costing at most limit.
func MaxPrice(limit float64) Predicate {
	return func(o domain.DeliveryOption) bool { return o.TotalCost <= limit }
}

// MaxTime keeps options delivered within hours.
func MaxTime(hours float64) Predicate {
	return func(o domain.DeliveryOption) bool { return o.DeliveryTimeHours <= hours }
}

// TransportName keeps options whose transport name contains a match of
// pattern.
func TransportName(pattern string) (Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid transport name pattern %q", pattern)
	}

	return func(o domain.DeliveryOption) bool { return re.MatchString(o.TransportName) }, nil
}

// ExactTransportName keeps options named exactly name.
func ExactTransportName(name string) Predicate {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(name) + "$")

	return func(o domain.DeliveryOption) bool { return re.MatchString(o.TransportName) }
}

// Category keeps options of the given transport category, ignoring case.
func Category(category domain.TransportCategory) Predicate {
	return func(o domain.DeliveryOption) bool { return strings.EqualFold(o.TransportType, string(category)) }
}

// All keeps options matching every predicate. With none it keeps everything.
func All(preds ...Predicate) Predicate {
	return func(o domain.DeliveryOption) bool {
		for _, p := range preds {
			if !p(o) {
				return false
			}
		}

		return true
	}
}

// Any keeps options matching at least one predicate.
func Any(preds ...Predicate) Predicate {
	return func(o domain.DeliveryOption) bool {
		for _, p := range preds {
			if p(o) {
				return true
			}
		}

		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(o domain.DeliveryOption) bool { return !p(o) }
}

// Filter returns the options matching every predicate, in input order.
// options is left untouched.
func Filter(options []domain.DeliveryOption, preds ...Predicate) []domain.DeliveryOption {
	keep := All(preds...)
	out := make([]domain.DeliveryOption, 0, len(options))
	for _, o := range options {
		if keep(o) {
			out = append(out, o)
		}
	}

	return out
}
