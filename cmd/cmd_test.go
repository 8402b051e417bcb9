package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-data-generator/internal/generator"
	"github.com/ginjaninja78/sales-data-generator/pkg/utils"
)

// resetFlags undoes the previous execution; cobra keeps flag state on the
// package-level commands.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	generateCmd.Flags().VisitAll(reset)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateAndInspect(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
counts:
  stores: 10
  products: 20
  customers: 50
  sellers: 10
  transactions: 200
`), 0644))

	output := filepath.Join(dir, "data", "sales_{seed}.csv")
	summary := filepath.Join(dir, "summary.yaml")

	out, err := execute(t, "generate", "--config", cfgPath, "--seed", "7", "-o", output, "--summary", summary)
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset generado: 200 ventas")
	assert.Contains(t, out, "20 productos en 10 categorías")
	assert.Contains(t, out, "10 tiendas en 10 ciudades")
	assert.Contains(t, out, "50 clientes, 10 vendedores")
	assert.Contains(t, out, "Seed:         7")

	written := filepath.Join(dir, "data", "sales_7.csv")
	assert.FileExists(t, written)

	s, err := utils.ReadSummary(summary)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, written, s.OutputFile)

	out, err = execute(t, "inspect", written)
	require.NoError(t, err)
	assert.Contains(t, out, "Rows:         200")
	assert.Contains(t, out, "Payments:")
}

func TestGenerateRejectsBadFormat(t *testing.T) {
	_, err := execute(t, "generate", "--format", "parquet", "-o", filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGenerateAndInspectXLSX(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
seed: 11
format: xlsx
counts:
  stores: 5
  products: 10
  customers: 20
  sellers: 5
  transactions: 50
`), 0644))
	output := filepath.Join(dir, "ventas.xlsx")

	_, err := execute(t, "generate", "--config", cfgPath, "-o", output)
	require.NoError(t, err)

	out, err := execute(t, "inspect", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Rows:         50")
}

func TestGenerateXML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
counts:
  stores: 5
  products: 10
  customers: 20
  sellers: 5
  transactions: 30
`), 0644))
	output := filepath.Join(dir, "ventas_{seed}.{format}")

	out, err := execute(t, "generate", "--config", cfgPath, "--seed", "5", "--format", "xml", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset generado: 30 ventas")

	raw, err := os.ReadFile(filepath.Join(dir, "ventas_5.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<ventas>")
	assert.Contains(t, string(raw), "<order_id>ORD-100030</order_id>")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Sales Data Generator")
	assert.Contains(t, out, "Version:    "+Version)
}

func TestPrintSummaryOmitsEmptySummaryPath(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, generator.Result{OutputFile: "data/raw_sales_data.csv", Seed: 3})
	assert.NotContains(t, buf.String(), "Summary:")
	assert.Contains(t, buf.String(), "Output:       data/raw_sales_data.csv")
}
