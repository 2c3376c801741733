package ingest

import (
	"bytes"
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

var jsonMatcher = matcher{ext: ".json", contentTypes: []string{"application/json"}} //nolint: gochecknoglobals

// JSONParser reads requests shaped like
//
//	{"cargo":[{"type":"electronics","quantity":5}],"distance":500,
//	 "transportType":null,"destination":"Minsk"}
//
// Unknown fields are ignored; null or missing cargo and transportType are
// treated as absent.
type JSONParser struct{}

func (JSONParser) Name() string { return "json" }

func (JSONParser) Supports(identifier string) bool { return jsonMatcher.supports(identifier) }

func (JSONParser) ContentTypes() []string { return jsonMatcher.contentTypes }

func (JSONParser) Parse(r io.Reader) (*domain.IngestedRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not read JSON request")
	}

	req := &domain.IngestedRequest{}
	if len(bytes.TrimSpace(data)) == 0 {
		return req, nil
	}

	d := jx.DecodeBytes(data)
	switch d.Next() {
	case jx.Null:
		return req, nil
	case jx.Object:
	default:
		return nil, serrors.With(serrors.ErrMalformedInput, "malformed JSON request: root must be an object")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "cargo":
			cargo, err := decodeCargo(d)
			if err != nil {
				return errors.Wrap(err, "cargo")
			}
			req.Cargo = cargo
		case "distance":
			v, err := optionalFloat(d)
			if err != nil {
				return errors.Wrap(err, "distance")
			}
			req.Distance = v
		case "transportType":
			v, err := optionalString(d)
			if err != nil {
				return errors.Wrap(err, "transportType")
			}
			req.TransportKind = v
		case "destination":
			v, err := optionalString(d)
			if err != nil {
				return errors.Wrap(err, "destination")
			}
			req.Destination = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed JSON request")
	}

	return req, nil
}

func decodeCargo(d *jx.Decoder) ([]domain.CargoLine, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
	default:
		return nil, errors.Errorf("expected array, got %s", d.Next())
	}

	var out []domain.CargoLine
	err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.Object {
			return errors.Errorf("cargo item %d: expected object, got %s", len(out), d.Next())
		}
		var line domain.CargoLine
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			switch string(key) {
			case "type":
				v, err := optionalString(d)
				if err != nil {
					return errors.Wrap(err, "type")
				}
				line.Kind = v
			case "quantity":
				if d.Next() == jx.Null {
					return d.Null()
				}
				v, err := d.Int()
				if err != nil {
					return errors.Wrap(err, "quantity")
				}
				line.Quantity = v
			default:
				return d.Skip()
			}

			return nil
		}); err != nil {
			return errors.Wrapf(err, "cargo item %d", len(out))
		}
		out = append(out, line)

		return nil
	})

	return out, err
}

func optionalString(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Null:
		return "", d.Null()
	case jx.String:
		return d.Str()
	default:
		return "", errors.Errorf("expected string, got %s", d.Next())
	}
}

func optionalFloat(d *jx.Decoder) (float64, error) {
	switch d.Next() {
	case jx.Null:
		return 0, d.Null()
	case jx.Number:
		return d.Float64()
	default:
		return 0, errors.Errorf("expected number, got %s", d.Next())
	}
}
