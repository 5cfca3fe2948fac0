package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fleetworks/fleet-manager-api/models"
)

func TestProjectKnownAndUnknownColumns(t *testing.T) {
	rec := Record{"truck": Record{"registration": "KDD-001T"}}

	got := Project(rec, EntityFuel, []string{"Truck Number (Registration Plate)", "Nonexistent Column"})

	assert.Equal(t, []string{"Truck Number (Registration Plate)", "Nonexistent Column"}, got.Columns())
	assert.Equal(t, "KDD-001T", got.Get("Truck Number (Registration Plate)"))
	assert.Equal(t, Sentinel, got.Get("Nonexistent Column"))
}

func TestProjectKeySetEqualsColumnsForMalformedRecords(t *testing.T) {
	columns := []string{"Date of Fueling", "Total Cost", "Route", "No Such Thing"}

	for _, rec := range []Record{
		nil,
		{},
		{"date": nil, "totalCost": "not-a-number"},
		{"truck": "scalar-where-object-expected"},
	} {
		got := Project(rec, EntityFuel, columns)
		assert.Equal(t, columns, got.Columns())
		for _, label := range columns {
			assert.NotEmpty(t, got.Get(label))
		}
	}
}

func TestProjectFormatsValues(t *testing.T) {
	rec := Record{
		"date":      time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		"totalCost": 15250.75,
		"liters":    120.5,
	}

	got := Project(rec, EntityFuel, []string{"Date of Fueling", "Total Cost", "Liters Filled"})

	assert.Equal(t, "Feb 01, 2025", got.Get("Date of Fueling"))
	assert.Equal(t, "KES 15,251", got.Get("Total Cost"))
	assert.Equal(t, "120.5", got.Get("Liters Filled"))
}

func TestProjectAggregatesSpareParts(t *testing.T) {
	rec := Record{
		"serviceDate": time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		"laborCost":   3000.0,
		"spareParts": []models.SparePartLine{
			{Name: "Filter", TotalPrice: 1200.555},
			{Name: "Oil", TotalPrice: 800.445},
		},
	}

	got := Project(rec, EntityMaintenance, []string{"Spare Parts Used", "Spare Parts Cost", "Spare Parts Quantity"})

	assert.Equal(t, "Filter, Oil", got.Get("Spare Parts Used"))
	assert.Equal(t, "KES 2,001", got.Get("Spare Parts Cost"))
	assert.Equal(t, "2 units", got.Get("Spare Parts Quantity"))
}

func TestProjectEmptySparePartsList(t *testing.T) {
	rec := Record{"spareParts": []models.SparePartLine{}}

	got := Project(rec, EntityMaintenance, []string{"Spare Parts Used", "Spare Parts Cost"})

	assert.Equal(t, NoSpareParts, got.Get("Spare Parts Used"))
	assert.Equal(t, "KES 0", got.Get("Spare Parts Cost"))
}

func TestProjectDoesNotMutateCallerRecord(t *testing.T) {
	lines := []models.SparePartLine{{Name: "Filter", TotalPrice: 100}}
	rec := Record{"spareParts": lines}

	_ = Project(rec, EntityMaintenance, []string{"Spare Parts Used"})

	kept, ok := rec["spareParts"].([]models.SparePartLine)
	assert.True(t, ok, "caller's spareParts slice was replaced")
	assert.Equal(t, lines, kept)
}

func TestProjectedRecordJSONPreservesColumnOrder(t *testing.T) {
	rec := Record{"truck": Record{"registration": "KDD-001T"}, "route": "Mombasa-Nairobi"}

	got := Project(rec, EntityFuel, []string{"Route", "Truck Number (Registration Plate)", "Missing"})
	b, err := json.Marshal(got)
	assert.NoError(t, err)

	assert.Equal(t, `{"Route":"Mombasa-Nairobi","Truck Number (Registration Plate)":"KDD-001T","Missing":"N/A"}`, string(b))
}

func TestProjectZeroColumns(t *testing.T) {
	got := Project(Record{"route": "A"}, EntityFuel, nil)
	assert.Empty(t, got.Columns())

	b, err := json.Marshal(got)
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}
