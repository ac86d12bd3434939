package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bookclub/internal/engine"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	header := make([]interface{}, len(engine.RequiredColumns))
	for i, c := range engine.RequiredColumns {
		header[i] = c
	}
	rows := [][]interface{}{
		header,
		{2023, 1, 10, "Война и мир", "[Лев Толстой]", "[роман]", "[Россия]", "[м]", 1300, 1869},
		{2024, 3, 5, "Маленький принц", "[Антуан де Сент-Экзюпери]", "[сказка]", "[Франция]", "[м]", 100, 1943},
	}

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "books.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile = ""
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	path := writeWorkbook(t)

	out, err := runCmd(t, "report", "--workbook", path, "--log-level", "disabled", "--year", "2024")
	require.NoError(t, err)

	assert.Contains(t, out, "# Общая статистика (за 2024 год)")
	assert.Contains(t, out, "Количество проведённых встреч: **1**.")
	assert.Contains(t, out, "Маленький принц")
	assert.NotContains(t, out, "Война и мир")
	assert.Contains(t, out, "## Жанры")
	assert.Contains(t, out, "- сказка: 1 кн.")
}

func TestReportAllYears(t *testing.T) {
	path := writeWorkbook(t)

	out, err := runCmd(t, "report", "--workbook", path, "--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, out, "(за все годы)")
	assert.Contains(t, out, "Прочитано: **2** книги **2** авторов в **2** жанрах.")
}

func TestReportMissingWorkbook(t *testing.T) {
	_, err := runCmd(t, "report", "--workbook", filepath.Join(t.TempDir(), "missing.xlsx"), "--log-level", "disabled")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCmd(t, "report", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestChartOptions(t *testing.T) {
	cfgFile = ""
	cmd, _, err := newRootCmd().Find([]string{"report"})
	require.NoError(t, err)
	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, engine.Options{DecadeRunMin: 3, DecadeFiller: "...", HistogramBins: 20}, chartOptions(cfg))
}
