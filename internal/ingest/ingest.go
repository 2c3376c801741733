// Package ingest turns request files into domain.IngestedRequest values.
// One Parser exists per supported encoding; the Dispatcher picks the first
// parser that claims an identifier (a file name or a content type).
package ingest

import (
	"fmt"
	"io"
	"logistics/pkg/domain"
	"logistics/pkg/serrors"
	"os"
	"path/filepath"
	"strings"
)

// Parser decodes one input encoding.
type Parser interface {
	// Name is a short label used in logs and metrics, e.g. "json".
	Name() string
	// Supports reports whether identifier, a file name or a content type,
	// is handled by this parser.
	Supports(identifier string) bool
	// Parse reads the whole document from r.
	Parse(r io.Reader) (*domain.IngestedRequest, error)
}

// matcher implements Supports for a fixed extension and content type set.
type matcher struct {
	ext          string
	contentTypes []string
}

func (m matcher) supports(identifier string) bool {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if i := strings.IndexByte(id, ';'); i >= 0 {
		id = strings.TrimSpace(id[:i])
	}
	for _, ct := range m.contentTypes {
		if id == ct {
			return true
		}
	}

	return filepath.Ext(id) == m.ext
}

// Dispatcher selects a parser for an identifier.
type Dispatcher struct {
	parsers []Parser
}

// NewDispatcher returns a Dispatcher trying parsers in the given order.
// With no arguments it uses JSON, XML and CSV.
func NewDispatcher(parsers ...Parser) *Dispatcher {
	if len(parsers) == 0 {
		parsers = []Parser{JSONParser{}, XMLParser{}, CSVParser{}}
	}

	return &Dispatcher{parsers: parsers}
}

// ParserFor returns the first parser supporting identifier.
func (d *Dispatcher) ParserFor(identifier string) (Parser, error) {
	for _, p := range d.parsers {
		if p.Supports(identifier) {
			return p, nil
		}
	}

	names := make([]string, 0, len(d.parsers))
	for _, p := range d.parsers {
		names = append(names, p.Name())
	}

	return nil, serrors.With(serrors.ErrUnsupportedFormat,
		"unsupported input format %q, expected one of: %s", identifier, strings.Join(names, ", "))
}

// Parse decodes r with the parser selected for identifier.
func (d *Dispatcher) Parse(identifier string, r io.Reader) (*domain.IngestedRequest, error) {
	p, err := d.ParserFor(identifier)
	if err != nil {
		return nil, err
	}

	return p.Parse(r)
}

// LoadFile opens path, parses it with the parser selected by its extension
// and closes it on every exit path.
func (d *Dispatcher) LoadFile(path string) (req *domain.IngestedRequest, err error) {
	p, err := d.ParserFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not open input")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = serrors.Wrap(serrors.ErrIO, cerr, "could not close input")
		}
	}()

	req, err = p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
	}

	return req, nil
}

// ContentTypes lists the content types accepted by the dispatcher's parsers.
func (d *Dispatcher) ContentTypes() []string {
	var out []string
	for _, p := range d.parsers {
		if ct, ok := p.(interface{ ContentTypes() []string }); ok {
			out = append(out, ct.ContentTypes()...)
		}
	}

	return out
}
