package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func exportBundle() *Bundle {
	truckRow := NewProjectedRecord([]string{"Truck Number (Registration Plate)", "Make"})
	truckRow.set("Truck Number (Registration Plate)", "KBZ 123A")
	truckRow.set("Make", "Isuzu")

	fuelRow := NewProjectedRecord([]string{"Date of Fueling", "Total Cost"})
	fuelRow.set("Date of Fueling", "Jun 01, 2025")
	fuelRow.set("Total Cost", "KES 15,000")

	return &Bundle{
		Metadata: Metadata{
			ID:          "b1",
			GeneratedAt: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
			GeneratedBy: "ops@fleetworks.io",
			ReportType:  "operational",
			Columns: map[EntityType][]string{
				EntityTruck: {"Truck Number (Registration Plate)", "Make"},
				EntityFuel:  {"Date of Fueling", "Total Cost"},
			},
		},
		Data: map[EntityType][]*ProjectedRecord{
			EntityTruck: {truckRow},
			EntityFuel:  {fuelRow},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, exportBundle()))

	want := strings.Join([]string{
		"Trucks",
		"Truck Number (Registration Plate),Make",
		"KBZ 123A,Isuzu",
		"",
		"Fuel Records",
		"Date of Fueling,Total Cost",
		`"Jun 01, 2025","KES 15,000"`,
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVSkipsColumnlessEntities(t *testing.T) {
	b := exportBundle()
	b.Metadata.Columns[EntityFuel] = nil

	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, b))

	assert.Contains(t, buf.String(), "Trucks")
	assert.NotContains(t, buf.String(), "Fuel Records")
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteHTML(&buf, exportBundle()))

	out := buf.String()
	assert.Contains(t, out, "<h2>Trucks</h2>")
	assert.Contains(t, out, "<h2>Fuel Records</h2>")
	assert.Contains(t, out, "<th>Make</th>")
	assert.Contains(t, out, "<td>KES 15,000</td>")
	assert.Contains(t, out, "by ops@fleetworks.io")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteXLSX(&buf, exportBundle()))
	// xlsx is a zip container
	assert.Equal(t, "PK", buf.String()[:2])
}

func TestExportFilename(t *testing.T) {
	b := exportBundle()
	assert.Equal(t, "fleet-report-operational-2025-06-15.csv", ExportFilename(b, "csv"))
	assert.Equal(t, "fleet-report-operational-2025-06-15.xlsx", ExportFilename(b, "xlsx"))
}
