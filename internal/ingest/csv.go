package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"strconv"
	"strings"
)

var csvMatcher = matcher{ext: ".csv", contentTypes: []string{"text/csv"}} //nolint: gochecknoglobals

// CSVParser reads delimited requests. The first record is
// "distance,transportKind,destination" (the last two optional) when its first
// field is numeric; every other record is "cargoKind,quantity".
//
// The parser is lenient on purpose, unlike the JSON and XML parsers: cargo
// records with fewer than two fields or a non-integer quantity are dropped
// and parsing continues. An empty quantity field counts as zero.
type CSVParser struct{}

func (CSVParser) Name() string { return "csv" }

func (CSVParser) Supports(identifier string) bool { return csvMatcher.supports(identifier) }

func (CSVParser) ContentTypes() []string { return csvMatcher.contentTypes }

func (CSVParser) Parse(r io.Reader) (*domain.IngestedRequest, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	req := &domain.IngestedRequest{}
	for first := true; ; first = false {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed CSV request")
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if first {
			if distance, err := strconv.ParseFloat(record[0], 64); err == nil {
				req.Distance = distance
				if len(record) >= 2 {
					req.TransportKind = record[1]
				}
				if len(record) >= 3 {
					req.Destination = record[2]
				}

				continue
			}
		}

		if line, ok := cargoRecord(record); ok {
			req.Cargo = append(req.Cargo, line)
		}
	}

	return req, nil
}

// cargoRecord converts a "kind,quantity" record, reporting false for records
// the lenient policy drops.
func cargoRecord(record []string) (domain.CargoLine, bool) {
	if len(record) < 2 {
		return domain.CargoLine{}, false
	}

	qty := 0
	if record[1] != "" {
		v, err := strconv.Atoi(record[1])
		if err != nil {
			return domain.CargoLine{}, false
		}
		qty = v
	}

	return domain.CargoLine{Kind: record[0], Quantity: qty}, true
}
