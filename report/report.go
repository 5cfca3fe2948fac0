// Package report implements the fleet report engine: a schema-driven report
// builder that projects truck, fuel, maintenance and compliance records
// through a user-selected set of columns, formats values by column label, and
// bundles the projected rows together with per-entity analytics.
package report

// EntityType identifies one of the record categories the report engine can
// include in a report.
type EntityType string

// Entity types handled by the report engine.
const (
	EntityTruck       EntityType = "truck"
	EntityFuel        EntityType = "fuel"
	EntityMaintenance EntityType = "maintenance"
	EntityCompliance  EntityType = "compliance"
)

// Sentinel is the canonical "no value / unresolved" output. Resolution and
// formatting faults always degrade to this string, never to an error.
const Sentinel = "N/A"

// Record is the dynamic view of a fetched entity that the projector walks.
// Nested objects (the joined truck, the spare-parts summary) are nested
// Records addressed with dotted paths.
type Record = map[string]interface{}

// EntityTitle returns the human-readable section title used by exporters.
func EntityTitle(entity EntityType) string {
	switch entity {
	case EntityTruck:
		return "Trucks"
	case EntityFuel:
		return "Fuel Records"
	case EntityMaintenance:
		return "Maintenance & Service Records"
	case EntityCompliance:
		return "Compliance Documents"
	default:
		return string(entity)
	}
}
