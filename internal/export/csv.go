package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"slices"
	"strconv"
)

var csvHeader = []string{"transportName", "transportType", "totalCost", "deliveryTimeHours", "speed"} //nolint: gochecknoglobals

// CSV writes options as comma separated rows below a header row. Numbers
// are rounded to two decimals.
type CSV struct{}

func (CSV) Format() string      { return "csv" }
func (CSV) Extension() string   { return ".csv" }
func (CSV) ContentType() string { return "text/csv" }

func (CSV) Export(w io.Writer, options []domain.DeliveryOption) error {
	if err := checkFinite(options); err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeader); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not write CSV header")
	}
	for _, o := range options {
		if err := writer.Write([]string{
			o.TransportName,
			o.TransportType,
			formatAmount(o.TotalCost),
			formatAmount(o.DeliveryTimeHours),
			formatAmount(o.Speed),
		}); err != nil {
			return serrors.Wrap(serrors.ErrIO, err, "could not write CSV row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not flush CSV")
	}

	return writeAll(w, buf.Bytes())
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ReadCSV decodes the output of CSV.Export. Numbers come back with the
// two-decimal precision they were written with.
func ReadCSV(r io.Reader) ([]domain.DeliveryOption, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed CSV export")
	}
	if len(records) == 0 || !slices.Equal(records[0], csvHeader) {
		return nil, serrors.With(serrors.ErrMalformedInput, "CSV export has no header row")
	}

	options := make([]domain.DeliveryOption, 0, len(records)-1)
	for i, rec := range records[1:] {
		nums := make([]float64, 3)
		for j, field := range rec[2:] {
			if nums[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, serrors.Wrap(serrors.ErrMalformedInput, err,
					"row %d: invalid %s", i+2, csvHeader[j+2])
			}
		}
		options = append(options, domain.DeliveryOption{
			TransportName:     rec[0],
			TransportType:     rec[1],
			TotalCost:         nums[0],
			DeliveryTimeHours: nums[1],
			Speed:             nums[2],
		})
	}

	return options, nil
}
