package ingest

import (
	"encoding/xml"
	"errors"
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"strconv"
	"strings"
)

var xmlMatcher = matcher{ext: ".xml", contentTypes: []string{"application/xml", "text/xml"}} //nolint: gochecknoglobals

// XMLParser reads requests carried as nested elements:
//
//	<request>
//	  <cargo><type>electronics</type><quantity>5</quantity></cargo>
//	  <distance>500</distance>
//	  <transportType>truck</transportType>
//	  <destination>Minsk</destination>
//	</request>
//
// The root element name is free and cargo elements may sit inside any
// container. The first distance, transportType and destination element found
// wins. A blank or unparsable distance reads as zero and is left for order
// assembly to reject.
type XMLParser struct{}

type xmlCargo struct {
	Type     string `xml:"type"`
	Quantity string `xml:"quantity"`
}

func (XMLParser) Name() string { return "xml" }

func (XMLParser) Supports(identifier string) bool { return xmlMatcher.supports(identifier) }

func (XMLParser) ContentTypes() []string { return xmlMatcher.contentTypes }

func (XMLParser) Parse(r io.Reader) (*domain.IngestedRequest, error) {
	dec := xml.NewDecoder(r)
	req := &domain.IngestedRequest{}

	var (
		sawRoot  bool
		distance *string
		scalars  = map[string]*string{}
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed XML request")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true

		switch start.Name.Local {
		case "cargo":
			var c xmlCargo
			if err := dec.DecodeElement(&c, &start); err != nil {
				return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed XML cargo element")
			}
			line, err := c.line(len(req.Cargo))
			if err != nil {
				return nil, err
			}
			req.Cargo = append(req.Cargo, line)
		case "distance", "transportType", "destination":
			var text string
			if err := dec.DecodeElement(&text, &start); err != nil {
				return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "malformed XML %s element", start.Name.Local)
			}
			if _, seen := scalars[start.Name.Local]; !seen {
				text = strings.TrimSpace(text)
				scalars[start.Name.Local] = &text
			}
		}
	}

	if !sawRoot {
		return nil, serrors.With(serrors.ErrMalformedInput, "malformed XML request: no root element")
	}

	distance = scalars["distance"]
	if distance != nil && *distance != "" {
		if v, err := strconv.ParseFloat(*distance, 64); err == nil {
			req.Distance = v
		}
	}
	if v := scalars["transportType"]; v != nil {
		req.TransportKind = *v
	}
	if v := scalars["destination"]; v != nil {
		req.Destination = *v
	}

	return req, nil
}

func (c xmlCargo) line(index int) (domain.CargoLine, error) {
	qty := 0
	if s := strings.TrimSpace(c.Quantity); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return domain.CargoLine{}, serrors.Wrap(serrors.ErrMalformedInput, err,
				"malformed XML cargo element %d: invalid quantity %q", index, s)
		}
		qty = v
	}

	return domain.CargoLine{Kind: strings.TrimSpace(c.Type), Quantity: qty}, nil
}
