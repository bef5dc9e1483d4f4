// fleetsim is a self-contained mock of the remote fleet API. It seeds a
// randomized fleet in memory and serves the same REST surface the dashboard
// gateway consumes, including JWT login and status transition actions.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ukydev/fleet-logistics/internal/auth"
	"github.com/ukydev/fleet-logistics/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Sim.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash demo password")
	}

	store := NewStore()
	seed := time.Now().UnixNano()
	Seed(store, rand.New(rand.NewSource(seed)), cfg.Sim.Trucks, cfg.Sim.Drivers, cfg.Sim.Trips)

	a := &app{
		store:        store,
		authService:  auth.NewService(cfg.Sim.JWTSecret, 24*time.Hour),
		email:        cfg.Sim.Email,
		passwordHash: hash,
		validate:     validator.New(),
	}

	addr := fmt.Sprintf(":%d", cfg.Sim.Port)
	log.WithFields(log.Fields{
		"addr":    addr,
		"trucks":  cfg.Sim.Trucks,
		"drivers": cfg.Sim.Drivers,
		"trips":   cfg.Sim.Trips,
	}).Info("fleetsim listening")

	if err := http.ListenAndServe(addr, a.routes()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
