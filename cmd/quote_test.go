package main

import (
	"bytes"
	"errors"
	"logistics/internal/config"
	"logistics/internal/export"
	"logistics/pkg/serrors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	return cfg
}

func TestQuoteCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "order.json")
	require.NoError(t, os.WriteFile(input,
		[]byte(`{"cargo":[{"type":"electronics","quantity":5}],"distance":500,"destination":"Minsk"}`), 0o600))

	out := &bytes.Buffer{}
	cmd := quoteCommand(loadDefaults(t))
	cmd.SetOut(out)
	cmd.SetArgs([]string{input,
		"--out", dir,
		"--format", "json,csv",
		"--compress", "gzip",
		"--max-price", "10000",
		"--sort", "name:asc",
		"--breakdown",
	})
	require.NoError(t, cmd.Execute())

	text := out.String()
	require.Contains(t, text, "Destination: Minsk")
	require.Contains(t, text, "3 of 5 delivery options kept")
	require.Contains(t, text, "7875.00")
	require.Contains(t, text, "order-quotes.json.gz")

	data, err := os.ReadFile(filepath.Join(dir, "order-quotes.csv.gz"))
	require.NoError(t, err)
	plain, err := export.Unwind(data, export.Gzip())
	require.NoError(t, err)
	options, err := export.ReadCSV(bytes.NewReader(plain))
	require.NoError(t, err)
	require.Len(t, options, 3)
	require.Equal(t, "Tanker", options[0].TransportName)
}

func TestQuoteCommandPinnedTransport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "order.csv")
	require.NoError(t, os.WriteFile(input, []byte("500\nelectronics,5\n"), 0o600))

	out := &bytes.Buffer{}
	cmd := quoteCommand(loadDefaults(t))
	cmd.SetOut(out)
	cmd.SetArgs([]string{input, "--out", dir, "--transport", "truck"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "1 of 1 delivery options kept")
}

func TestQuoteCommandRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "order.csv")
	require.NoError(t, os.WriteFile(input, []byte("500\nelectronics,5\n"), 0o600))

	cmd := quoteCommand(loadDefaults(t))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{input, "--out", dir, "--encrypt"})
	require.ErrorIs(t, cmd.Execute(), serrors.ErrValidation)
}

func TestCatalogCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := catalogCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	require.Contains(t, out.String(), "electronics")
	require.Contains(t, out.String(), "helicopter")
}

func TestQuoteHelpListsInputContentTypes(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := quoteCommand(loadDefaults(t))
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	require.Contains(t, out.String(), "application/json, application/xml, text/xml, text/csv")
}

func TestErrorFieldsCarryKind(t *testing.T) {
	fields := errorFields(serrors.With(serrors.ErrUnsupportedFormat, "no parser"))
	require.Len(t, fields, 2)
	require.Equal(t, "kind", fields[1].Key)
	require.Equal(t, "UNSUPPORTED_FORMAT", fields[1].String)

	require.Len(t, errorFields(errors.New("plain")), 1)
}
