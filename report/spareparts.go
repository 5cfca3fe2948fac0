package report

import (
	"math"
	"strings"

	"github.com/fleetworks/fleet-manager-api/models"
)

// NoSpareParts is the display value for a maintenance event with no parts.
const NoSpareParts = "No spare parts used"

// SparePartSummary is the virtual nested object that replaces a maintenance
// record's spare-part line items before projection, so the registry can
// address spareParts.names, spareParts.totalCost and spareParts.count like
// any other path.
type SparePartSummary struct {
	Names     string  `json:"names"`
	TotalCost float64 `json:"totalCost"`
	Count     int     `json:"count"`
}

// AggregateSpareParts reduces spare-part line items to their summary. The
// input is never mutated. Line totals are trusted as stored; the sum is
// rounded to two decimals exactly once at the end so the result is identical
// for any permutation of the same lines.
func AggregateSpareParts(lines []models.SparePartLine) SparePartSummary {
	if len(lines) == 0 {
		return SparePartSummary{Names: NoSpareParts}
	}

	names := make([]string, 0, len(lines))
	var total float64
	for _, line := range lines {
		names = append(names, line.Name)
		total += line.TotalPrice
	}

	return SparePartSummary{
		Names:     strings.Join(names, ", "),
		TotalCost: math.Round(total*100) / 100,
		Count:     len(lines),
	}
}

// record exposes the summary as a Record for path resolution.
func (s SparePartSummary) record() Record {
	return Record{
		"names":     s.Names,
		"totalCost": s.TotalCost,
		"count":     s.Count,
	}
}
