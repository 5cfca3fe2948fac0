package report

import "strings"

// columnRegistry maps, per entity type, a human-readable column label to the
// dotted data path that extracts its raw value from a Record. The registry is
// plain data: adding a column to a report is a table change, resolution logic
// never needs to know about individual columns.
var columnRegistry = map[EntityType]map[string]string{
	EntityTruck: {
		"Truck ID":                          "id",
		"Truck Number (Registration Plate)": "registration",
		"Make":                              "make",
		"Model":                             "model",
		"Year":                              "year",
		"Status":                            "status",
	},
	EntityFuel: {
		"Truck Number (Registration Plate)": "truck.registration",
		"Truck Make":                        "truck.make",
		"Truck Model":                       "truck.model",
		"Date of Fueling":                   "date",
		"Liters Filled":                     "liters",
		"Price per Liter":                   "costPerLiter",
		"Total Cost":                        "totalCost",
		"Distance Covered (km)":             "distanceKm",
		"Fuel Efficiency (km/L)":            "efficiencyKmPerL",
		"Route":                             "route",
		"Station Attendant":                 "attendant",
	},
	EntityMaintenance: {
		"Truck Number (Registration Plate)": "truck.registration",
		"Service Date":                      "serviceDate",
		"Category":                          "category",
		"Type":                              "type",
		"Description":                       "description",
		"Labor Cost":                        "laborCost",
		"Vendor Name":                       "vendor",
		"Technician":                        "technician",
		"Spare Parts Used":                  "spareParts.names",
		"Spare Parts Cost":                  "spareParts.totalCost",
		"Spare Parts Quantity":              "spareParts.count",
		"Total Maintenance Cost":            "totalCost",
	},
	EntityCompliance: {
		"Truck Number (Registration Plate)": "truck.registration",
		"Document Type":                     "documentType",
		"Certificate Number":                "certificateNumber",
		"Issue Date":                        "issueDate",
		"Expiry Date":                       "expiryDate",
		"Issuing Authority":                 "issuingAuthority",
		"Cost":                              "cost",
		"Status":                            "status",
		"Days to Expiry":                    "daysToExpiry",
	},
}

// ResolvePath looks up the data path for a column label of the given entity
// type. A missing (entity, label) pair reports ok=false, never an error:
// callers project unresolved columns as the sentinel.
func ResolvePath(entity EntityType, label string) (string, bool) {
	columns, ok := columnRegistry[entity]
	if !ok {
		return "", false
	}
	path, ok := columns[label]
	return path, ok
}

// Columns returns every registered column label for an entity type, useful
// for building column pickers.
func Columns(entity EntityType) []string {
	columns := columnRegistry[entity]
	labels := make([]string, 0, len(columns))
	for label := range columns {
		labels = append(labels, label)
	}
	return labels
}

// LookupPath walks a dotted path against a record one step at a time. The
// walk stops and reports ok=false as soon as any intermediate step is missing
// or nil, even if later steps would have resolved on a different shape.
func LookupPath(rec Record, path string) (interface{}, bool) {
	if rec == nil || path == "" {
		return nil, false
	}
	steps := strings.Split(path, ".")
	var current interface{} = rec
	for _, step := range steps {
		node, ok := current.(Record)
		if !ok {
			return nil, false
		}
		value, ok := node[step]
		if !ok || value == nil {
			return nil, false
		}
		current = value
	}
	return current, true
}
