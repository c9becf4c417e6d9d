package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dataproc/internal/services/submit/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle(title)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderKV is a two column field/value table
func renderKV(title string, rows [][]string) string {
	return renderTable(title, []string{"Field", "Value"}, rows, nil)
}

// renderResult lays out a processed result in the sections a user reads:
// who they are, what was computed, the list breakdown, then the file
func renderResult(r domain.ProcessedResult) string {
	var b strings.Builder

	b.WriteString(renderKV("User Information", [][]string{
		{"User ID", dash(r.UserID)},
		{"Email", dash(r.Email)},
		{"Roll Number", dash(r.RollNumber)},
	}))
	b.WriteString("\n")

	b.WriteString(renderKV("Processing Results", [][]string{
		{"Success", yesNo(r.IsSuccess)},
		{"Prime Found", yesNo(r.IsPrimeFound)},
	}))
	b.WriteString("\n")

	b.WriteString(renderTable("Data", []string{"Category", "Count", "Values"}, [][]string{
		{"Numbers", printer.Sprintf("%d", len(r.Numbers)), joinList(r.Numbers)},
		{"Alphabets", printer.Sprintf("%d", len(r.Alphabets)), joinList(r.Alphabets)},
		{"Highest Lowercase", printer.Sprintf("%d", len(r.HighestLowercaseAlphabet)), joinList(r.HighestLowercaseAlphabet)},
	}, []columnAlignment{alignLeft, alignRight, alignLeft}))
	b.WriteString("\n")

	if r.ShowFileInfo() {
		rows := [][]string{
			{"Valid", dash(r.FileValidity())},
			{"MIME Type", dash(r.FileMIMEType)},
		}
		if size := r.FileSize(); size != "" {
			rows = append(rows, []string{"Size", size})
		}
		b.WriteString(renderKV("File Information", rows))
		b.WriteString("\n")
	}
	return b.String()
}

// formatBytes renders n with thousands separators, e.g. "12,345 bytes"
func formatBytes(n int64) string {
	if n == 1 {
		return "1 byte"
	}
	return printer.Sprintf("%d bytes", n)
}

// stateLabel renders a pipeline state for people, e.g. "Succeeded"
func stateLabel(s domain.State) string {
	return titler.String(s.String())
}

func joinList(v []string) string {
	if len(v) == 0 {
		return "-"
	}
	return strings.Join(v, ", ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
