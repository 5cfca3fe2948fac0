package report

import (
	"bytes"
	"encoding/json"

	"github.com/fleetworks/fleet-manager-api/models"
)

// ProjectedRecord is one flat, display-ready report row. Column order is the
// user's selection order and is preserved through JSON marshalling; table and
// export rendering depend on it.
type ProjectedRecord struct {
	columns []string
	values  map[string]string
}

// NewProjectedRecord returns an empty row for the given column order.
func NewProjectedRecord(columns []string) *ProjectedRecord {
	return &ProjectedRecord{
		columns: append([]string(nil), columns...),
		values:  make(map[string]string, len(columns)),
	}
}

// Columns returns the row's column labels in selection order.
func (p *ProjectedRecord) Columns() []string {
	return p.columns
}

// Get returns the display value for a column label, or the sentinel for a
// label the row does not carry.
func (p *ProjectedRecord) Get(label string) string {
	if v, ok := p.values[label]; ok {
		return v
	}
	return Sentinel
}

func (p *ProjectedRecord) set(label, value string) {
	p.values[label] = value
}

// Values returns the row's values in column order.
func (p *ProjectedRecord) Values() []string {
	out := make([]string, len(p.columns))
	for i, label := range p.columns {
		out[i] = p.Get(label)
	}
	return out
}

// MarshalJSON writes the row as a JSON object with keys in column order.
func (p *ProjectedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range p.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Get(label))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Project turns one raw record into a report row with exactly the requested
// columns, in the requested order. Every failure path, an unregistered label,
// a missing or nil path step, degrades to the sentinel; a single malformed
// field must never abort a whole report.
func Project(rec Record, entity EntityType, columns []string) *ProjectedRecord {
	rec = prepareRecord(rec, entity)

	out := NewProjectedRecord(columns)
	for _, label := range columns {
		path, ok := ResolvePath(entity, label)
		if !ok {
			out.set(label, Sentinel)
			continue
		}
		raw, ok := LookupPath(rec, path)
		if !ok {
			out.set(label, Sentinel)
			continue
		}
		out.set(label, Format(label, raw))
	}
	return out
}

// prepareRecord pre-aggregates maintenance spare parts on a shallow copy so
// the caller's record is never mutated.
func prepareRecord(rec Record, entity EntityType) Record {
	if entity != EntityMaintenance || rec == nil {
		return rec
	}
	lines, ok := rec["spareParts"].([]models.SparePartLine)
	if !ok {
		return rec
	}

	copied := make(Record, len(rec))
	for k, v := range rec {
		copied[k] = v
	}
	copied["spareParts"] = AggregateSpareParts(lines).record()
	return copied
}
