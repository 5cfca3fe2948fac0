package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/fleetworks/fleet-manager-api/api/handlers"
	"github.com/fleetworks/fleet-manager-api/api/scheduler"

	"go.uber.org/zap"

	"github.com/fleetworks/fleet-manager-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	a.Initialize() //initialize database and router

	s := scheduler.NewScheduler(a.ComplianceDB())
	s.Start()
	defer s.Stop()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("fleet-manager-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
