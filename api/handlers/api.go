package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fleetworks/fleet-manager-api/api"
	"github.com/fleetworks/fleet-manager-api/config"
	"github.com/fleetworks/fleet-manager-api/databases"
	"github.com/fleetworks/fleet-manager-api/models"
	"github.com/fleetworks/fleet-manager-api/report"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewOperatorDatabase(a.dbHelper)}
	m.SetupGoGuardian()
	api.RegisterMetrics()

	r := mux.NewRouter()

	t := Truck{DB: databases.NewTruckDatabase(a.dbHelper)}
	f := Fuel{DB: databases.NewFuelDatabase(a.dbHelper)}
	mt := Maintenance{DB: databases.NewMaintenanceDatabase(a.dbHelper)}
	c := Compliance{DB: databases.NewComplianceDatabase(a.dbHelper)}
	o := Operator{DB: databases.NewOperatorDatabase(a.dbHelper), JWTSecret: a.Config.JWTSecret}
	rep := Report{Assembler: &report.Assembler{
		Trucks:      databases.NewTruckDatabase(a.dbHelper),
		Fuel:        databases.NewFuelDatabase(a.dbHelper),
		Maintenance: databases.NewMaintenanceDatabase(a.dbHelper),
		Compliance:  databases.NewComplianceDatabase(a.dbHelper),
	}}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)
	r.Handle("/metrics", api.MetricsHandler())
	r.Use(api.MetricsMiddleware)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/auth/login", http.HandlerFunc(o.OperatorLoginHandler)).Methods("POST")

	apiCreate.Handle("/operator", api.Middleware(http.HandlerFunc(o.CreateOperatorHandler))).Methods("POST")

	apiCreate.Handle("/truck", api.Middleware(http.HandlerFunc(t.CreateTruckHandler))).Methods("POST")
	apiCreate.Handle("/truck/{truck_id}", api.Middleware(http.HandlerFunc(t.TruckByIDHandler))).Methods("GET")
	apiCreate.Handle("/truck/{truck_id}", api.Middleware(http.HandlerFunc(t.UpdateTruckHandler))).Methods("PUT")
	apiCreate.Handle("/truck/{truck_id}", api.Middleware(http.HandlerFunc(t.DeleteTruckHandler))).Methods("DELETE")
	apiCreate.Handle("/trucks", api.Middleware(http.HandlerFunc(t.TruckHandler))).Methods("GET")

	apiCreate.Handle("/fuel", api.Middleware(http.HandlerFunc(f.CreateFuelHandler))).Methods("POST")
	apiCreate.Handle("/fuel/{fuel_id}", api.Middleware(http.HandlerFunc(f.FuelByIDHandler))).Methods("GET")
	apiCreate.Handle("/fuel/{fuel_id}", api.Middleware(http.HandlerFunc(f.DeleteFuelHandler))).Methods("DELETE")
	apiCreate.Handle("/fuel-events", api.Middleware(http.HandlerFunc(f.FuelHandler))).Methods("GET")
	apiCreate.Handle("/fuel-events/truck/{truck_id}", api.Middleware(http.HandlerFunc(f.FuelByTruckIDHandler))).Methods("GET")

	apiCreate.Handle("/maintenance", api.Middleware(http.HandlerFunc(mt.CreateMaintenanceHandler))).Methods("POST")
	apiCreate.Handle("/maintenance/{maintenance_id}", api.Middleware(http.HandlerFunc(mt.MaintenanceByIDHandler))).Methods("GET")
	apiCreate.Handle("/maintenance/{maintenance_id}", api.Middleware(http.HandlerFunc(mt.DeleteMaintenanceHandler))).Methods("DELETE")
	apiCreate.Handle("/maintenance-events", api.Middleware(http.HandlerFunc(mt.MaintenanceHandler))).Methods("GET")
	apiCreate.Handle("/maintenance-events/truck/{truck_id}", api.Middleware(http.HandlerFunc(mt.MaintenanceByTruckIDHandler))).Methods("GET")

	apiCreate.Handle("/compliance", api.Middleware(http.HandlerFunc(c.CreateComplianceHandler))).Methods("POST")
	apiCreate.Handle("/compliance/{compliance_id}", api.Middleware(http.HandlerFunc(c.ComplianceByIDHandler))).Methods("GET")
	apiCreate.Handle("/compliance/{compliance_id}", api.Middleware(http.HandlerFunc(c.DeleteComplianceHandler))).Methods("DELETE")
	apiCreate.Handle("/compliance-documents", api.Middleware(http.HandlerFunc(c.ComplianceHandler))).Methods("GET")
	apiCreate.Handle("/compliance-documents/truck/{truck_id}", api.Middleware(http.HandlerFunc(c.ComplianceByTruckIDHandler))).Methods("GET")
	apiCreate.Handle("/compliance-documents/expiring", api.Middleware(http.HandlerFunc(c.ExpiringComplianceHandler))).Methods("GET")

	apiCreate.Handle("/reports/generate", api.Middleware(http.HandlerFunc(rep.GenerateReportHandler))).Methods("POST")
	apiCreate.Handle("/reports/export", api.Middleware(http.HandlerFunc(rep.ExportReportHandler))).Methods("POST")
	apiCreate.Handle("/reports/presets", api.Middleware(http.HandlerFunc(rep.PresetsHandler))).Methods("GET")
	apiCreate.Handle("/reports/columns", api.Middleware(http.HandlerFunc(rep.ColumnsHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("fleet-manager-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil

}

// ComplianceDB exposes the compliance database for the background scheduler
func (a *App) ComplianceDB() databases.ComplianceDatabase {
	return databases.NewComplianceDatabase(a.dbHelper)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
