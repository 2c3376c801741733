// Package export serializes delivery options. A base Exporter produces one
// encoding; Transformers wrap any exporter to post-process its bytes, e.g.
// to compress or encrypt them, without the base exporter knowing.
package export

import (
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"math"
	"strings"
)

// Exporter serializes a list of options.
type Exporter interface {
	// Format names the encoding, e.g. "json" or "csv+zip".
	Format() string
	// Extension is the file suffix, including the dot, matching the output.
	Extension() string
	ContentType() string
	Export(w io.Writer, options []domain.DeliveryOption) error
}

// Formats lists the base formats accepted by ForFormat.
func Formats() []string {
	return []string{JSON{}.Format(), CSV{}.Format()}
}

// ForFormat returns the base exporter named name, ignoring case and a
// leading dot.
func ForFormat(name string) (Exporter, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "json":
		return JSON{}, nil
	case "csv":
		return CSV{}, nil
	default:
		return nil, serrors.With(serrors.ErrUnsupportedFormat,
			"unsupported export format %q, expected one of: %s", name, strings.Join(Formats(), ", "))
	}
}

// checkFinite rejects options whose numbers have no textual form that reads
// back, such as NaN or infinities.
func checkFinite(options []domain.DeliveryOption) error {
	for _, o := range options {
		for _, v := range []float64{o.TotalCost, o.DeliveryTimeHours, o.Speed} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return serrors.With(serrors.ErrValidation, "option %q has a non-finite value %v", o.TransportName, v)
			}
		}
	}

	return nil
}

func writeAll(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not write export")
	}

	return nil
}
