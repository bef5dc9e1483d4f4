// dashboard is the fleet logistics dashboard gateway. It authenticates
// against the remote fleet API, aggregates its collections into dashboard
// metrics, charts and recent-activity feeds, and serves them over HTTP.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-logistics/internal/api"
	"github.com/ukydev/fleet-logistics/internal/config"
	"github.com/ukydev/fleet-logistics/internal/handlers"
	"github.com/ukydev/fleet-logistics/internal/models"
	"github.com/ukydev/fleet-logistics/internal/report"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	client := api.New(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout))
	creds := models.LoginRequest{Email: cfg.API.Email, Password: cfg.API.Password}
	loadOpts := report.LoadOptions{
		Options:  report.Options{OnTimePolicy: report.PolicyFromString(cfg.Dashboard.OnTimePolicy)},
		PageSize: cfg.Dashboard.PageSize,
	}

	h := handlers.NewDashboardHandler(client, creds, loadOpts)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/dashboard", h.GetDashboard)
	r.Get("/api/transitions/{kind}/{status}", h.GetTransitions)
	r.Get("/health", h.Health)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.WithFields(log.Fields{
		"addr":     addr,
		"fleetAPI": cfg.API.BaseURL,
	}).Info("dashboard gateway listening")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
