package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bookclub/internal/engine"
	"bookclub/internal/models"
	"bookclub/internal/report"
)

func newReportCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the statistics for a year as Markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			frame, err := engine.LoadWorkbook(cfg.Workbook.Path, cfg.Workbook.Sheet)
			if err != nil {
				return err
			}
			data, err := engine.Aggregate(frame, year, chartOptions(cfg))
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "meeting year to report on (0 = all years)")
	return cmd
}

func writeReport(w io.Writer, data *models.DashboardData) error {
	sections := []struct {
		heading string
		body    string
	}{
		{"Страны (книги)", report.Shares(data.Charts.BooksByCountry, "кн.")},
		{"Страны (авторы)", report.Shares(data.Charts.AuthorsByCountry, "ав.")},
		{"Пол авторов", report.Shares(data.Charts.AuthorsByGender, "ав.")},
		{"Жанры", report.Shares(data.Charts.Genres, "кн.")},
	}

	if _, err := fmt.Fprintf(w, "# Общая статистика (за %s)\n\n", report.YearLabel(data.Year)); err != nil {
		return err
	}
	for _, line := range report.Summary(data) {
		if _, err := fmt.Fprintf(w, "%s\n\n", line); err != nil {
			return err
		}
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "## %s\n\n%s\n", s.heading, s.body); err != nil {
			return err
		}
	}
	return nil
}
