package report

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/fleetworks/fleet-manager-api/databases"
	"github.com/fleetworks/fleet-manager-api/models"
)

// ScopeAll is the truck scope value that bypasses truck filtering.
const ScopeAll = "all"

// TruckScope is the set of truck ids a report covers. The wire form is either
// a JSON array of ids or the literal string "all".
type TruckScope []string

// All reports whether the scope covers the whole fleet.
func (s TruckScope) All() bool {
	return len(s) == 1 && s[0] == ScopeAll
}

// UnmarshalJSON accepts both `"all"` and `["id", ...]`.
func (s *TruckScope) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = TruckScope{single}
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = TruckScope(ids)
	return nil
}

// MarshalJSON writes the whole-fleet scope back as the literal "all".
func (s TruckScope) MarshalJSON() ([]byte, error) {
	if s.All() {
		return json.Marshal(ScopeAll)
	}
	return json.Marshal([]string(s))
}

// DateRange bounds an entity's natural date field. Either end may be open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Selection is the caller's report request: which entities to include, which
// trucks, over which period, and the ordered column labels per entity.
type Selection struct {
	Entities   []EntityType            `json:"entities"`
	TruckScope TruckScope              `json:"truckScope"`
	DateRange  *DateRange              `json:"dateRange,omitempty"`
	ReportType string                  `json:"reportType"`
	Columns    map[EntityType][]string `json:"columns"`
}

// ValidationError names the exact selection field the caller has to fix.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// EntityError reports a fetch failure for one entity without aborting the
// rest of the report.
type EntityError struct {
	Entity  EntityType `json:"entity"`
	Message string     `json:"message"`
}

// Metadata describes a generated bundle: who asked for it, when, what scope,
// and the resolved column selection echoed back so consumers can label tables
// without re-deriving it.
type Metadata struct {
	ID           string                  `json:"id"`
	GeneratedAt  time.Time               `json:"generatedAt"`
	GeneratedBy  string                  `json:"generatedBy"`
	ReportType   string                  `json:"reportType"`
	TruckScope   TruckScope              `json:"truckScope"`
	RecordCounts map[EntityType]int      `json:"recordCounts"`
	Columns      map[EntityType][]string `json:"columns"`
}

// Bundle is one generated report. It is ephemeral: assembled per request,
// rendered or downloaded, then discarded, never persisted.
type Bundle struct {
	Metadata  Metadata                          `json:"metadata"`
	Data      map[EntityType][]*ProjectedRecord `json:"data"`
	Analytics map[EntityType]Analytics          `json:"analytics"`
	Errors    []EntityError                     `json:"errors,omitempty"`
}

// Assembler generates report bundles from the entity stores. It is stateless
// and safe for concurrent use; every Generate call is independent.
type Assembler struct {
	Trucks      databases.TruckDatabase
	Fuel        databases.FuelDatabase
	Maintenance databases.MaintenanceDatabase
	Compliance  databases.ComplianceDatabase

	// Now is the report clock, overridable in tests. Nil means time.Now.
	Now func() time.Time
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Validate checks a selection before any fetch happens. Each violation names
// its field so the caller knows exactly what to fix.
func (a *Assembler) Validate(sel Selection) error {
	if len(sel.Entities) == 0 {
		return &ValidationError{Field: "entities", Message: "select at least one entity to include in the report"}
	}
	if len(sel.TruckScope) == 0 {
		return &ValidationError{Field: "truckScope", Message: "select at least one truck or \"all\""}
	}
	total := 0
	for _, columns := range sel.Columns {
		total += len(columns)
	}
	if total == 0 {
		return &ValidationError{Field: "columns", Message: "select at least one column"}
	}
	return nil
}

// Generate runs the full report pipeline: validate, resolve the truck scope,
// fetch each requested entity, compute analytics, project rows, and stamp
// metadata. A fetch failure for one entity is recorded in the bundle's error
// list and the remaining entities still generate; the only error return is a
// pre-fetch validation failure.
func (a *Assembler) Generate(ctx context.Context, actor string, sel Selection) (*Bundle, error) {
	if err := a.Validate(sel); err != nil {
		return nil, err
	}

	now := a.now()
	bundle := &Bundle{
		Metadata: Metadata{
			ID:           uuid.New().String(),
			GeneratedAt:  now,
			GeneratedBy:  actor,
			ReportType:   sel.ReportType,
			TruckScope:   sel.TruckScope,
			RecordCounts: make(map[EntityType]int),
			Columns:      sel.Columns,
		},
		Data:      make(map[EntityType][]*ProjectedRecord),
		Analytics: make(map[EntityType]Analytics),
	}

	trucks, err := a.fetchTrucks(ctx, sel.TruckScope)
	if err != nil {
		zap.S().Errorw("report: truck fetch failed", "error", err)
		bundle.Errors = append(bundle.Errors, EntityError{Entity: EntityTruck, Message: err.Error()})
	}
	trucksByID := make(map[string]*models.Truck, len(trucks))
	for i := range trucks {
		trucksByID[trucks[i].ID.Hex()] = &trucks[i]
	}

	for _, entity := range sel.Entities {
		columns := sel.Columns[entity]
		switch entity {
		case EntityTruck:
			if err != nil {
				continue // fetch failure already recorded
			}
			rows := make([]*ProjectedRecord, 0, len(trucks))
			if len(columns) > 0 {
				for _, truck := range trucks {
					rows = append(rows, Project(TruckRecord(truck), EntityTruck, columns))
				}
			}
			bundle.Data[EntityTruck] = rows
			bundle.Analytics[EntityTruck] = TruckAnalytics(trucks)
			bundle.Metadata.RecordCounts[EntityTruck] = len(trucks)

		case EntityFuel:
			events, ferr := a.Fuel.Find(ctx, a.entityFilter(sel, "date"))
			if ferr != nil {
				zap.S().Errorw("report: fuel fetch failed", "error", ferr)
				bundle.Errors = append(bundle.Errors, EntityError{Entity: EntityFuel, Message: ferr.Error()})
				continue
			}
			rows := make([]*ProjectedRecord, 0, len(events))
			if len(columns) > 0 {
				for _, event := range events {
					rows = append(rows, Project(FuelRecord(event, trucksByID[event.TruckID]), EntityFuel, columns))
				}
			}
			bundle.Data[EntityFuel] = rows
			bundle.Analytics[EntityFuel] = FuelAnalytics(events)
			bundle.Metadata.RecordCounts[EntityFuel] = len(events)

		case EntityMaintenance:
			events, ferr := a.Maintenance.Find(ctx, a.entityFilter(sel, "serviceDate"))
			if ferr != nil {
				zap.S().Errorw("report: maintenance fetch failed", "error", ferr)
				bundle.Errors = append(bundle.Errors, EntityError{Entity: EntityMaintenance, Message: ferr.Error()})
				continue
			}
			rows := make([]*ProjectedRecord, 0, len(events))
			if len(columns) > 0 {
				for _, event := range events {
					rows = append(rows, Project(MaintenanceRecord(event, trucksByID[event.TruckID]), EntityMaintenance, columns))
				}
			}
			bundle.Data[EntityMaintenance] = rows
			bundle.Analytics[EntityMaintenance] = MaintenanceAnalytics(events)
			bundle.Metadata.RecordCounts[EntityMaintenance] = len(events)

		case EntityCompliance:
			sort := options.Find().SetSort(bson.D{{Key: "expiryDate", Value: 1}})
			docs, ferr := a.Compliance.Find(ctx, a.entityFilter(sel, "expiryDate"), sort)
			if ferr != nil {
				zap.S().Errorw("report: compliance fetch failed", "error", ferr)
				bundle.Errors = append(bundle.Errors, EntityError{Entity: EntityCompliance, Message: ferr.Error()})
				continue
			}
			rows := make([]*ProjectedRecord, 0, len(docs))
			if len(columns) > 0 {
				for _, doc := range docs {
					rows = append(rows, Project(ComplianceRecord(doc, trucksByID[doc.TruckID], now), EntityCompliance, columns))
				}
			}
			bundle.Data[EntityCompliance] = rows
			bundle.Analytics[EntityCompliance] = ComplianceAnalytics(docs, now)
			bundle.Metadata.RecordCounts[EntityCompliance] = len(docs)

		default:
			bundle.Errors = append(bundle.Errors, EntityError{Entity: entity, Message: "unknown entity type"})
		}
	}

	return bundle, nil
}

func (a *Assembler) fetchTrucks(ctx context.Context, scope TruckScope) ([]models.Truck, error) {
	if scope.All() {
		return a.Trucks.Find(ctx, bson.M{})
	}
	ids := make([]primitive.ObjectID, 0, len(scope))
	for _, id := range scope {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			zap.S().Warnf("report: skipping invalid truck id %q", id)
			continue
		}
		ids = append(ids, oid)
	}
	return a.Trucks.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// entityFilter builds the mongo filter for an entity fetch: the truck scope
// plus the selection's date range applied to the entity's natural date field.
func (a *Assembler) entityFilter(sel Selection, dateField string) bson.M {
	filter := bson.M{}
	if !sel.TruckScope.All() {
		filter["truckId"] = bson.M{"$in": []string(sel.TruckScope)}
	}
	if sel.DateRange != nil {
		bounds := bson.M{}
		if sel.DateRange.From != nil {
			bounds["$gte"] = *sel.DateRange.From
		}
		if sel.DateRange.To != nil {
			bounds["$lte"] = *sel.DateRange.To
		}
		if len(bounds) > 0 {
			filter[dateField] = bounds
		}
	}
	return filter
}
