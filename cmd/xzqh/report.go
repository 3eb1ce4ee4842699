package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"xzqh/internal/crawl"
)

// renderReport prints the per-year summary: a table on a terminal, tab
// separated lines otherwise so the output stays easy to pipe.
func renderReport(w io.Writer, report crawl.Report) {
	headers := []string{"Year", "Regions", "Skipped", "Source"}
	rows := make([][]string, 0, len(report.Years))
	total := 0
	for _, st := range report.Years {
		origin := "download"
		if st.Cached {
			origin = "cache"
		}
		rows = append(rows, []string{
			strconv.Itoa(st.Year),
			strconv.Itoa(st.Regions),
			strconv.Itoa(st.Skipped),
			origin,
		})
		total += st.Regions
	}

	if isTerminal(w) {
		fmt.Fprintln(w, renderTable(headers, rows))
	} else {
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r[0], r[1], r[2], r[3])
		}
	}
	fmt.Fprintf(w, "%d years, %d regions -> %s\n", len(report.Years), total, report.Output)
	if report.SQLite != "" {
		fmt.Fprintf(w, "sqlite export -> %s\n", report.SQLite)
	}
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignRight
		if i == len(headers)-1 {
			align = text.AlignLeft
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
