package pipeline_test

import (
	"context"
	"logistics/internal/catalog"
	"logistics/internal/config"
	"logistics/internal/export"
	"logistics/internal/ingest"
	"logistics/internal/pipeline"
	"logistics/internal/pricing"
	"logistics/internal/quote"
	mockquote "logistics/internal/quote/mock"
	"logistics/internal/selection"
	"logistics/pkg/domain"
	"logistics/pkg/logger"
	"logistics/pkg/metrics"
	"logistics/pkg/serrors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func quotes() []domain.DeliveryOption {
	return []domain.DeliveryOption{
		{TransportName: "Truck", TransportType: "Land", TotalCost: 7875, DeliveryTimeHours: 6.25, Speed: 80},
		{TransportName: "Train", TransportType: "Land", TotalCost: 2875, DeliveryTimeHours: 500.0 / 60, Speed: 60},
		{TransportName: "Airplane", TransportType: "Air", TotalCost: 75375, DeliveryTimeHours: 500.0 / 850, Speed: 850},
	}
}

func TestRunWithMockPlanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := &domain.IngestedRequest{
		Cargo:    []domain.CargoLine{{Kind: "electronics", Quantity: 5}},
		Distance: 500,
	}
	mock := mockquote.NewMockPlanner(ctrl)
	mock.EXPECT().LoadRequest(gomock.Any(), "orders/input.json").Return(req, nil)
	mock.EXPECT().ComputeOptions(gomock.Any(), *req).Return(quotes(), nil)
	mock.EXPECT().Breakdowns(gomock.Any(), *req).Return([]pricing.Breakdown{
		{TransportName: "Truck", TotalCost: 7875},
		{TransportName: "Train", TotalCost: 2875},
		{TransportName: "Airplane", TotalCost: 75375},
	}, nil)

	dir := t.TempDir()
	p := pipeline.New(mock, nil, pipeline.Options{
		Filters:   []selection.Predicate{selection.MaxPrice(10000)},
		Order:     selection.ByPrice(true),
		OutputDir: dir,
		Formats:   []string{"json", "csv"},
		Breakdown: true,
	})

	res, err := p.Run(context.Background(), "orders/input.json")
	require.NoError(t, err)
	require.Equal(t, 3, res.Computed)
	require.Len(t, res.Options, 2)
	require.Equal(t, "Train", res.Options[0].TransportName)
	require.Equal(t, "Truck", res.Options[1].TransportName)
	require.Len(t, res.Breakdowns, 2)
	require.Equal(t, "Train", res.Breakdowns[0].TransportName)
	require.Equal(t, []string{
		filepath.Join(dir, "input-quotes.json"),
		filepath.Join(dir, "input-quotes.csv"),
	}, res.Files)

	f, err := os.Open(res.Files[0])
	require.NoError(t, err)
	defer f.Close()
	written, err := export.ReadJSON(f)
	require.NoError(t, err)
	require.Equal(t, res.Options, written)
}

func TestRunPinsTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := &domain.IngestedRequest{
		Cargo:         []domain.CargoLine{{Kind: "electronics", Quantity: 5}},
		Distance:      500,
		TransportKind: "truck",
	}
	mock := mockquote.NewMockPlanner(ctrl)
	mock.EXPECT().LoadRequest(gomock.Any(), "input.csv").Return(req, nil)
	mock.EXPECT().ComputeOptions(gomock.Any(), req.WithTransport("train")).Return(quotes()[1:2], nil)

	p := pipeline.New(mock, nil, pipeline.Options{Transport: "train", OutputDir: t.TempDir()})
	res, err := p.Run(context.Background(), "input.csv")
	require.NoError(t, err)
	require.Equal(t, "train", res.Request.TransportKind)
	require.Len(t, res.Options, 1)
	require.Empty(t, res.Files)
}

func TestRunStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockquote.NewMockPlanner(ctrl)
	mock.EXPECT().LoadRequest(gomock.Any(), "input.yaml").
		Return(nil, serrors.With(serrors.ErrUnsupportedFormat, "unsupported input format"))

	_, err := pipeline.New(mock, nil, pipeline.Options{}).Run(context.Background(), "input.yaml")
	require.ErrorIs(t, err, serrors.ErrUnsupportedFormat)

	req := &domain.IngestedRequest{Distance: 1, TransportKind: "rocket"}
	mock.EXPECT().LoadRequest(gomock.Any(), "input.json").Return(req, nil)
	mock.EXPECT().ComputeOptions(gomock.Any(), *req).
		Return(nil, serrors.With(serrors.ErrUnknownKind, "unknown transport kind"))

	_, err = pipeline.New(mock, nil, pipeline.Options{}).Run(context.Background(), "input.json")
	require.ErrorIs(t, err, serrors.ErrUnknownKind)
}

func TestRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	input := filepath.Join(dir, "order.xml")
	require.NoError(t, os.WriteFile(input, []byte(`<request>
  <cargo><type>electronics</type><quantity>5</quantity></cargo>
  <distance>500</distance>
  <destination>Minsk</destination>
</request>`), 0o600))

	recorder, err := metrics.New(ctx)
	require.NoError(t, err)

	transformers := pipeline.Transformers(export.Zip(), true, "secret", false)
	p := pipeline.New(quote.New(catalog.New(), ingest.NewDispatcher()), recorder, pipeline.Options{
		Order:        selection.Then(selection.ByTime(true), selection.ByName(true)),
		OutputDir:    dir,
		OutputName:   "quotes",
		Formats:      []string{"csv"},
		Transformers: transformers,
	})

	res, err := p.Run(ctx, input)
	require.NoError(t, err)
	require.Equal(t, 5, res.Computed)
	require.Equal(t, "Airplane", res.Options[0].TransportName)
	require.Equal(t, []string{filepath.Join(dir, "quotes.csv.enc")}, res.Files)

	data, err := os.ReadFile(res.Files[0])
	require.NoError(t, err)
	plain, err := export.Unwind(data, transformers...)
	require.NoError(t, err)
	require.Contains(t, string(plain), "Truck,Land,7875.00,6.25,80.00")

	textfile := filepath.Join(dir, "run.prom")
	require.NoError(t, recorder.WriteTextfile(textfile))
	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	require.Contains(t, string(prom), `format="xml"`)
	require.Contains(t, string(prom), `format="csv+zip+aes"`)
}

func TestTransformersOrder(t *testing.T) {
	require.Empty(t, pipeline.Transformers(nil, false, "", false))

	names := func(ts []export.Transformer) []string {
		out := make([]string, len(ts))
		for i, tr := range ts {
			out[i] = tr.Name()
		}

		return out
	}
	require.Equal(t, []string{"zip", "aes"}, names(pipeline.Transformers(export.Zip(), true, "k", false)))
	require.Equal(t, []string{"aes", "gzip"}, names(pipeline.Transformers(export.Gzip(), true, "k", true)))
	require.Equal(t, []string{"aes"}, names(pipeline.Transformers(nil, true, "k", true)))
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Export.Dir = "out"
	cfg.Export.Formats = []string{"json"}
	cfg.Export.Compress = "gzip"
	cfg.Filter.MaxPrice = 5000
	cfg.Filter.TransportName = "^T"
	cfg.Sort.Order = "price:desc"

	opts, err := pipeline.NewOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, "out", opts.OutputDir)
	require.Len(t, opts.Filters, 2)
	require.NotNil(t, opts.Order)
	require.Len(t, opts.Transformers, 1)

	kept := selection.Sort(selection.Filter(quotes(), opts.Filters...), opts.Order)
	require.Len(t, kept, 1)
	require.Equal(t, "Train", kept[0].TransportName)

	cfg.Filter.TransportName = "("
	_, err = pipeline.NewOptions(cfg)
	require.ErrorIs(t, err, serrors.ErrValidation)

	cfg.Filter.TransportName = ""
	cfg.Sort.Order = "weight"
	_, err = pipeline.NewOptions(cfg)
	require.ErrorIs(t, err, serrors.ErrUnsupportedFormat)
}
