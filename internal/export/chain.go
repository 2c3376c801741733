package export

import (
	"bytes"
	"io"
	"logistics/pkg/domain"
)

type wrapped struct {
	inner       Exporter
	transformer Transformer
}

// Wrap returns an exporter that runs inner and passes its output through t.
// Wrapped exporters can themselves be wrapped, in any order.
func Wrap(inner Exporter, t Transformer) Exporter {
	if ia, ok := t.(innerAware); ok {
		t = ia.forInner(inner.Extension())
	}

	return wrapped{inner: inner, transformer: t}
}

// Chain wraps inner with each transformer in turn, so the last one is the
// outermost.
func Chain(inner Exporter, transformers ...Transformer) Exporter {
	e := inner
	for _, t := range transformers {
		e = Wrap(e, t)
	}

	return e
}

func (w wrapped) Format() string      { return w.inner.Format() + "+" + w.transformer.Name() }
func (w wrapped) Extension() string   { return w.transformer.Extension() }
func (w wrapped) ContentType() string { return w.transformer.ContentType() }

func (w wrapped) Export(out io.Writer, options []domain.DeliveryOption) error {
	buf := &bytes.Buffer{}
	if err := w.inner.Export(buf, options); err != nil {
		return err
	}

	data, err := w.transformer.Apply(buf.Bytes())
	if err != nil {
		return err
	}

	return writeAll(out, data)
}

// Unwind undoes transformers listed in the order they were applied, as
// passed to Chain, reverting the last one first.
func Unwind(data []byte, transformers ...Transformer) ([]byte, error) {
	for i := len(transformers) - 1; i >= 0; i-- {
		var err error
		if data, err = transformers[i].Revert(data); err != nil {
			return nil, err
		}
	}

	return data, nil
}
