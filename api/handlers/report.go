package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/fleetworks/fleet-manager-api/api"
	"github.com/fleetworks/fleet-manager-api/config"
	"github.com/fleetworks/fleet-manager-api/report"
)

// Report exported for testing purposes
type Report struct {
	Assembler *report.Assembler
}

// requestActor resolves who asked for a report, for the bundle metadata. The
// auth middleware already verified the credentials by the time this runs.
func requestActor(r *http.Request) string {
	if email, _, ok := r.BasicAuth(); ok && email != "" {
		return email
	}
	if actor := r.Header.Get("X-Operator"); actor != "" {
		return actor
	}
	return "anonymous"
}

// GenerateReportHandler generates a report bundle from the posted selection
func (rep Report) GenerateReportHandler(w http.ResponseWriter, r *http.Request) {
	var sel report.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	bundle, err := rep.Assembler.Generate(r.Context(), requestActor(r), sel)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			config.ErrorStatus("invalid report selection", http.StatusBadRequest, w, verr)
			return
		}
		config.ErrorStatus("failed to generate report", http.StatusInternalServerError, w, err)
		return
	}

	api.ReportsGenerated.WithLabelValues(bundle.Metadata.ReportType).Inc()
	zap.S().Infow("report generated",
		"id", bundle.Metadata.ID,
		"type", bundle.Metadata.ReportType,
		"actor", bundle.Metadata.GeneratedBy,
	)

	b, err := json.Marshal(bundle)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ExportReportHandler generates a report bundle and streams it in the
// requested download format
func (rep Report) ExportReportHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var sel report.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	bundle, err := rep.Assembler.Generate(r.Context(), requestActor(r), sel)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			config.ErrorStatus("invalid report selection", http.StatusBadRequest, w, verr)
			return
		}
		config.ErrorStatus("failed to generate report", http.StatusInternalServerError, w, err)
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExportFilename(bundle, "csv")))
		err = report.WriteCSV(w, bundle)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExportFilename(bundle, "xlsx")))
		err = report.WriteXLSX(w, bundle)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = report.WriteHTML(w, bundle)
	default:
		config.ErrorStatus("unsupported export format", http.StatusBadRequest, w, fmt.Errorf("format: %q", format))
		return
	}
	if err != nil {
		zap.S().Errorw("failed to write report export", "format", format, "error", err)
		return
	}

	api.ReportExports.WithLabelValues(format).Inc()
}

// PresetsHandler returns every report-type preset and its per-entity columns
func (rep Report) PresetsHandler(w http.ResponseWriter, r *http.Request) {
	presets := make(map[string]map[report.EntityType][]string)
	for _, name := range report.PresetTypes() {
		presets[name] = report.PresetColumns(name)
	}

	b, err := json.Marshal(presets)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ColumnsHandler returns every selectable column label per entity type, for
// building column pickers
func (rep Report) ColumnsHandler(w http.ResponseWriter, r *http.Request) {
	columns := map[report.EntityType][]string{
		report.EntityTruck:       report.Columns(report.EntityTruck),
		report.EntityFuel:        report.Columns(report.EntityFuel),
		report.EntityMaintenance: report.Columns(report.EntityMaintenance),
		report.EntityCompliance:  report.Columns(report.EntityCompliance),
	}

	b, err := json.Marshal(columns)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
