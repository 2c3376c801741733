package serrors_test

import (
	"errors"
	"fmt"
	"logistics/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrUnknownKind,
		serrors.ErrMalformedInput,
		serrors.ErrUnsupportedFormat,
		serrors.ErrValidation,
		serrors.ErrTransform,
		serrors.ErrIO,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	e1 := serrors.With(serrors.ErrUnknownKind, "unknown cargo kind %q", "rocks")
	require.Equal(t, `unknown cargo kind "rocks"`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrIO, base, "writing result")
	require.Equal(t, "writing result: disk full", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrValidation)
	require.Equal(t, "VALIDATION", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTransform, base, "sealing")

	require.ErrorIs(t, e, serrors.ErrTransform)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrValidation)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrMalformedInput, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrMalformedInput, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "direct", err: serrors.With(serrors.ErrValidation, "x"), want: serrors.ErrValidation},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("stage: %w", serrors.With(serrors.ErrUnknownKind, "x")),
			want: serrors.ErrUnknownKind,
		},
		{
			name: "outermost wins",
			err:  serrors.Wrap(serrors.ErrValidation, serrors.With(serrors.ErrUnknownKind, "x"), "build"),
			want: serrors.ErrValidation,
		},
		{name: "bare sentinel", err: serrors.ErrIO, want: serrors.ErrIO},
		{name: "plain error", err: errors.New("boom"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrIO, base, "no file")
	require.Equal(t, serrors.ErrIO, e.Kind())
	require.Equal(t, "no file", e.Message())
	require.Equal(t, base, e.Cause())
}
