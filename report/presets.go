package report

// Report-type presets. Each preset pre-populates a curated, ordered column
// selection per entity type; the caller is free to edit the selection before
// generating. Every preset that includes maintenance carries the spare-parts
// columns.
var reportPresets = map[string]map[EntityType][]string{
	"comprehensive": {
		EntityTruck: {
			"Truck Number (Registration Plate)", "Make", "Model", "Year", "Status",
		},
		EntityFuel: {
			"Truck Number (Registration Plate)", "Date of Fueling", "Liters Filled",
			"Price per Liter", "Total Cost", "Distance Covered (km)",
			"Fuel Efficiency (km/L)", "Route", "Station Attendant",
		},
		EntityMaintenance: {
			"Truck Number (Registration Plate)", "Service Date", "Category", "Type",
			"Description", "Spare Parts Used", "Spare Parts Cost", "Labor Cost",
			"Total Maintenance Cost", "Vendor Name", "Technician",
		},
		EntityCompliance: {
			"Truck Number (Registration Plate)", "Document Type", "Certificate Number",
			"Issue Date", "Expiry Date", "Issuing Authority", "Cost", "Status",
			"Days to Expiry",
		},
	},
	"operational": {
		EntityFuel: {
			"Truck Number (Registration Plate)", "Date of Fueling", "Liters Filled",
			"Distance Covered (km)", "Fuel Efficiency (km/L)", "Route",
		},
		EntityMaintenance: {
			"Truck Number (Registration Plate)", "Service Date", "Category",
			"Description", "Spare Parts Used", "Spare Parts Quantity", "Technician",
		},
	},
	"financial": {
		EntityFuel: {
			"Truck Number (Registration Plate)", "Date of Fueling", "Price per Liter",
			"Total Cost",
		},
		EntityMaintenance: {
			"Truck Number (Registration Plate)", "Service Date", "Labor Cost",
			"Spare Parts Cost", "Total Maintenance Cost", "Vendor Name",
		},
		EntityCompliance: {
			"Truck Number (Registration Plate)", "Document Type", "Cost",
		},
	},
	"compliance": {
		EntityCompliance: {
			"Truck Number (Registration Plate)", "Document Type", "Certificate Number",
			"Issue Date", "Expiry Date", "Issuing Authority", "Status", "Days to Expiry",
		},
	},
	"single-truck": {
		EntityTruck: {
			"Truck Number (Registration Plate)", "Make", "Model", "Year", "Status",
		},
		EntityFuel: {
			"Date of Fueling", "Liters Filled", "Total Cost", "Fuel Efficiency (km/L)",
			"Route",
		},
		EntityMaintenance: {
			"Service Date", "Category", "Description", "Spare Parts Used",
			"Spare Parts Cost", "Total Maintenance Cost",
		},
		EntityCompliance: {
			"Document Type", "Expiry Date", "Status", "Days to Expiry",
		},
	},
}

// PresetColumns returns the default column selection for a report type. The
// result is a copy, callers may edit it freely. An unknown report type yields
// an empty mapping; the caller then has zero columns selected and is told so
// by selection validation, never by a crash.
func PresetColumns(reportType string) map[EntityType][]string {
	preset, ok := reportPresets[reportType]
	if !ok {
		return map[EntityType][]string{}
	}
	out := make(map[EntityType][]string, len(preset))
	for entity, columns := range preset {
		out[entity] = append([]string(nil), columns...)
	}
	return out
}

// PresetTypes lists the known report types.
func PresetTypes() []string {
	return []string{"comprehensive", "operational", "financial", "compliance", "single-truck"}
}
