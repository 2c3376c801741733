package export

import (
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// JSON writes options as a pretty-printed array. Numbers use the shortest
// representation that parses back to the same float64.
type JSON struct{}

func (JSON) Format() string      { return "json" }
func (JSON) Extension() string   { return ".json" }
func (JSON) ContentType() string { return "application/json" }

func (JSON) Export(w io.Writer, options []domain.DeliveryOption) error {
	if err := checkFinite(options); err != nil {
		return err
	}

	e := &jx.Encoder{}
	e.SetIdent(2)

	e.ArrStart()
	for _, o := range options {
		e.ObjStart()
		e.FieldStart("transportName")
		e.Str(o.TransportName)
		e.FieldStart("transportType")
		e.Str(o.TransportType)
		e.FieldStart("totalCost")
		e.Float64(o.TotalCost)
		e.FieldStart("deliveryTimeHours")
		e.Float64(o.DeliveryTimeHours)
		e.FieldStart("speed")
		e.Float64(o.Speed)
		e.ObjEnd()
	}
	e.ArrEnd()

	return writeAll(w, append(e.Bytes(), '\n'))
}

// ReadJSON decodes the output of JSON.Export. Unknown fields are ignored.
func ReadJSON(r io.Reader) ([]domain.DeliveryOption, error) {
	d := jx.Decode(r, 4096)

	options := []domain.DeliveryOption{}
	if err := d.Arr(func(d *jx.Decoder) error {
		var o domain.DeliveryOption
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			k := string(key)

			var err error
			switch k {
			case "transportName":
				o.TransportName, err = d.Str()
			case "transportType":
				o.TransportType, err = d.Str()
			case "totalCost":
				o.TotalCost, err = readFloat(d)
			case "deliveryTimeHours":
				o.DeliveryTimeHours, err = readFloat(d)
			case "speed":
				o.Speed, err = readFloat(d)
			default:
				return d.Skip()
			}

			return errors.Wrapf(err, "field %q", k)
		}); err != nil {
			return err
		}
		options = append(options, o)

		return nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed JSON export")
	}

	return options, nil
}

// readFloat parses the raw number text with strconv so values written by
// Export come back bit-for-bit.
func readFloat(d *jx.Decoder) (float64, error) {
	n, err := d.Num()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(n.String(), 64)
}
