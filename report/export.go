package report

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"

	"github.com/xuri/excelize/v2"
)

// Exporters serialize a bundle into its download forms. They consume only
// Bundle.Data and Metadata.Columns, so the row/column shape of the bundle is
// the whole contract.

// exportOrder fixes the section order across all export forms.
var exportOrder = []EntityType{EntityTruck, EntityFuel, EntityMaintenance, EntityCompliance}

// WriteCSV writes the bundle as delimited text: one titled section per
// entity, each with a header row of the selected columns.
func WriteCSV(w io.Writer, b *Bundle) error {
	cw := csv.NewWriter(w)
	first := true
	for _, entity := range exportOrder {
		rows, ok := b.Data[entity]
		if !ok {
			continue
		}
		columns := b.Metadata.Columns[entity]
		if len(columns) == 0 {
			continue
		}
		if !first {
			if err := cw.Write([]string{}); err != nil {
				return err
			}
		}
		first = false
		if err := cw.Write([]string{EntityTitle(entity)}); err != nil {
			return err
		}
		if err := cw.Write(columns); err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write(row.Values()); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the bundle as a workbook with one sheet per entity.
func WriteXLSX(w io.Writer, b *Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	created := false
	for _, entity := range exportOrder {
		rows, ok := b.Data[entity]
		if !ok {
			continue
		}
		columns := b.Metadata.Columns[entity]
		if len(columns) == 0 {
			continue
		}
		sheet := EntityTitle(entity)
		if !created {
			// rename the default sheet rather than leaving it empty
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
			created = true
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		header := make([]interface{}, len(columns))
		for i, c := range columns {
			header[i] = c
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		for i, row := range rows {
			values := row.Values()
			cells := make([]interface{}, len(values))
			for j, v := range values {
				cells[j] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

type htmlSection struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type htmlReport struct {
	Metadata Metadata
	Sections []htmlSection
}

var printTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Fleet Report {{.Metadata.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h2 { border-bottom: 1px solid #444; padding-bottom: 4px; }
table { border-collapse: collapse; margin-bottom: 2em; width: 100%; }
th, td { border: 1px solid #bbb; padding: 4px 8px; text-align: left; }
th { background: #eee; }
.meta { color: #555; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Fleet Report</h1>
<p class="meta">Type: {{.Metadata.ReportType}} &middot; Generated {{.Metadata.GeneratedAt.Format "Jan 02, 2006 15:04"}} by {{.Metadata.GeneratedBy}}</p>
{{range .Sections}}
<h2>{{.Title}}</h2>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

// WriteHTML writes the print-oriented form of the bundle.
func WriteHTML(w io.Writer, b *Bundle) error {
	page := htmlReport{Metadata: b.Metadata}
	for _, entity := range exportOrder {
		rows, ok := b.Data[entity]
		if !ok {
			continue
		}
		columns := b.Metadata.Columns[entity]
		if len(columns) == 0 {
			continue
		}
		section := htmlSection{Title: EntityTitle(entity), Columns: columns}
		for _, row := range rows {
			section.Rows = append(section.Rows, row.Values())
		}
		page.Sections = append(page.Sections, section)
	}
	return printTemplate.Execute(w, page)
}

// ExportFilename builds the download filename for a bundle.
func ExportFilename(b *Bundle, ext string) string {
	return fmt.Sprintf("fleet-report-%s-%s.%s", b.Metadata.ReportType, b.Metadata.GeneratedAt.Format("2006-01-02"), ext)
}
