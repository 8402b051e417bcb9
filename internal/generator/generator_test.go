package generator

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-data-generator/internal/config"
	"github.com/ginjaninja78/sales-data-generator/internal/csvparser"
	"github.com/ginjaninja78/sales-data-generator/internal/persona"
	"github.com/ginjaninja78/sales-data-generator/internal/types"
	"github.com/ginjaninja78/sales-data-generator/internal/xlsxwriter"
	"github.com/ginjaninja78/sales-data-generator/pkg/utils"
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func reducedConfig(t *testing.T, name string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	cfg.OutputFile = filepath.Join(t.TempDir(), name)
	cfg.Counts = config.Counts{Stores: 10, Products: 20, Customers: 50, Sellers: 10, Transactions: 200}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRunReducedDataset(t *testing.T) {
	cfg := reducedConfig(t, "raw_sales_data.csv")

	result, err := New(cfg, Options{Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(42), result.Seed)
	assert.Equal(t, cfg.OutputFile, result.OutputFile)
	assert.Equal(t, Stats{
		Transactions:   200,
		Products:       20,
		Categories:     10,
		Cities:         10,
		Stores:         10,
		Customers:      50,
		Sellers:        10,
		ProcessingTime: result.Stats.ProcessingTime,
	}, result.Stats)

	raw, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, 201, bytes.Count(raw, []byte("\n")))
	assert.NotContains(t, string(raw), "\r\n")

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 201)
	assert.Equal(t, types.Header, rows[0])
	for i, row := range rows[1:] {
		require.Len(t, row, 15, "row %d: %s", i+1, spew.Sdump(row))
		assert.Equal(t, "ORD-"+strconv.Itoa(types.OrderIDOffset+i+1), row[0])

		qty, err := strconv.Atoi(row[11])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, qty, 1)

		price, err := strconv.ParseFloat(row[10], 64)
		require.NoError(t, err)
		assert.Greater(t, price, 0.0)

		date, err := time.Parse(types.DateLayout, row[1])
		require.NoError(t, err)
		assert.False(t, date.After(fixedNow), row[1])
		assert.False(t, date.Before(fixedNow.AddDate(-2, 0, -1)), row[1])
	}
}

func TestRunIsReproducible(t *testing.T) {
	first := reducedConfig(t, "a.csv")
	second := reducedConfig(t, "b.csv")

	_, err := New(first, Options{Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)
	_, err = New(second, Options{Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)

	a, err := os.ReadFile(first.OutputFile)
	require.NoError(t, err)
	b, err := os.ReadFile(second.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	third := reducedConfig(t, "c.csv")
	third.Seed = 43
	_, err = New(third, Options{Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)
	c, err := os.ReadFile(third.OutputFile)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunDatasetStats(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42
	cfg.OutputFile = filepath.Join(t.TempDir(), "raw_sales_data.csv")
	cfg.Counts.Transactions = 2000

	_, err := New(cfg, Options{Now: fixedNow, People: persona.NewSequential()}).Run(context.Background())
	require.NoError(t, err)

	stats, err := csvparser.InspectFile(cfg.OutputFile)
	require.NoError(t, err)

	assert.Equal(t, 2000, stats.Rows)
	assert.LessOrEqual(t, stats.Customers, 1200)
	assert.LessOrEqual(t, stats.Sellers, 150)
	assert.LessOrEqual(t, stats.Products, 100)
	assert.LessOrEqual(t, stats.Stores, 30)
	assert.LessOrEqual(t, len(stats.Payments), 5)
	// Uniform pairing would give ~10%; locality pushes it far higher.
	assert.Greater(t, stats.LocalShare(), 0.6)
}

func TestRunEmailPoolExhausted(t *testing.T) {
	cfg := reducedConfig(t, "raw_sales_data.csv")
	people := persona.NewSequential()
	people.Limit = 5

	_, err := New(cfg, Options{Now: fixedNow, People: people}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, persona.ErrEmailPoolExhausted)
	assert.Contains(t, err.Error(), "failed to generate customers")
	assert.NoFileExists(t, cfg.OutputFile)
}

func TestRunPlaceholdersAndSummary(t *testing.T) {
	dir := t.TempDir()
	cfg := reducedConfig(t, "unused.csv")
	cfg.OutputFile = filepath.Join(dir, "sales_{seed}.{format}")
	cfg.SummaryFile = filepath.Join(dir, "reports", "{run_id}.yaml")

	result, err := New(cfg, Options{Now: fixedNow, People: persona.NewSequential()}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "sales_42.csv"), result.OutputFile)
	assert.FileExists(t, result.OutputFile)

	runID := utils.RunID(42, 10, 20, 50, 10, 200).String()
	assert.Equal(t, runID, result.RunID)
	assert.Equal(t, filepath.Join(dir, "reports", runID+".yaml"), result.SummaryFile)

	summary, err := utils.ReadSummary(result.SummaryFile)
	require.NoError(t, err)
	assert.Equal(t, runID, summary.RunID)
	assert.Equal(t, uint64(42), summary.Seed)
	assert.Equal(t, 200, summary.Transactions)
	assert.Equal(t, "2026-10-19", summary.Today)
	assert.Equal(t, result.OutputFile, summary.OutputFile)
}

func TestRunXLSX(t *testing.T) {
	cfg := reducedConfig(t, "ventas.xlsx")
	cfg.Format = config.FormatXLSX

	result, err := New(cfg, Options{Now: fixedNow, People: persona.NewSequential()}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, result.Stats.Transactions)

	f, err := excelize.OpenFile(result.OutputFile)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxwriter.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 201)
	assert.Equal(t, types.Header, rows[0])
	assert.Equal(t, "ORD-100200", rows[200][0])
}

func TestRunXMLMatchesCSV(t *testing.T) {
	csvCfg := reducedConfig(t, "ventas.csv")
	xmlCfg := reducedConfig(t, "ventas.xml")
	xmlCfg.Format = config.FormatXML

	opts := Options{Now: fixedNow, People: persona.NewSequential()}
	_, err := New(csvCfg, opts).Run(context.Background())
	require.NoError(t, err)
	opts.People = persona.NewSequential()
	result, err := New(xmlCfg, opts).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, result.Stats.Transactions)

	raw, err := os.ReadFile(csvCfg.OutputFile)
	require.NoError(t, err)
	want, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)

	raw, err = os.ReadFile(xmlCfg.OutputFile)
	require.NoError(t, err)
	var doc struct {
		Ventas []struct {
			Fields []struct {
				XMLName xml.Name
				Value   string `xml:",chardata"`
			} `xml:",any"`
		} `xml:"venta"`
	}
	require.NoError(t, xml.Unmarshal(raw, &doc))
	require.Len(t, doc.Ventas, 200)

	for i, v := range doc.Ventas {
		got := make([]string, len(v.Fields))
		for j, f := range v.Fields {
			assert.Equal(t, types.Header[j], f.XMLName.Local)
			got[j] = f.Value
		}
		require.Equal(t, want[i+1], got, "venta %d", i+1)
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := reducedConfig(t, "raw_sales_data.csv")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(cfg, Options{Now: fixedNow, People: persona.NewSequential()}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Stats.Transactions)

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(types.Header, ",")+"\n", string(raw))
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, uint64(7), ResolveSeed(7))
	for i := 0; i < 10; i++ {
		assert.NotZero(t, ResolveSeed(0))
	}
}
