package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thyeshengleng/collection-form/config"
	"github.com/thyeshengleng/collection-form/models"
	"github.com/thyeshengleng/collection-form/repositories"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func TestImportThenExportCSVBackend(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	common := []string{
		"--db", filepath.Join(dir, "collection.db"),
		"--backend", config.BackendCSV,
		"--csv", filepath.Join(dir, "store.csv"),
		"--log-level", "error",
	}

	var rows models.RecordSet
	for _, company := range []string{"Acme", "Beta"} {
		form := &models.RecordForm{
			ExistingUser:                true,
			CompanyName:                 company,
			Email:                       "ops@" + strings.ToLower(company) + ".io",
			Address:                     "1 Road",
			BusinessInfo:                "Retail",
			TaxID:                       "T1",
			EInvoiceStartDate:           "2024-07-01",
			PlugIns:                     []string{"Deposit Plugin"},
			VPNInfo:                     "none",
			ModuleLicense:               "2 users",
			ReportTemplates:             []string{"INV"},
			MigrationMasterData:         "yes",
			MigrationOutstandingBalance: "no",
			Status:                      models.StatusPending,
		}
		record, err := models.NewRecord(form.ToFields())
		require.NoError(t, err)
		rows = append(rows, record)
	}
	data, err := repositories.EncodeRecordsCSV(rows)
	require.NoError(t, err)
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, data, 0o600))

	out := run(t, append([]string{"import", in}, common...)...)
	assert.Contains(t, out, "Imported 2 records")

	exported := filepath.Join(dir, "out.csv")
	run(t, append([]string{"export", exported}, common...)...)

	content, err := os.ReadFile(exported)
	require.NoError(t, err)
	set, err := repositories.DecodeRecordsCSV(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "Acme", set[0].CompanyName)
	assert.Equal(t, "Beta", set[1].CompanyName)
	assert.NotEmpty(t, set[0].ID)
	assert.NotEmpty(t, set[0].CreatedDate)

	stdout := run(t, append([]string{"export"}, common...)...)
	assert.True(t, strings.HasPrefix(stdout, "ID,"))
}

func TestNewRecordRepository(t *testing.T) {
	cfg := config.Default()

	for _, backend := range []string{config.BackendSQL, config.BackendHTTP, config.BackendCSV, config.BackendMemory} {
		cfg.Backend = backend
		repo, err := newRecordRepository(cfg, nil)
		require.NoError(t, err, backend)
		assert.NotNil(t, repo, backend)
	}

	cfg.Backend = "ftp"
	_, err := newRecordRepository(cfg, nil)
	assert.Error(t, err)
}

func TestMissingEnvFileIsAnError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Cleanup(func() { envFile = "" })

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"export", "--env-file", "nope.env"})

	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
