package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ukydev/fleet-logistics/internal/auth"
	"github.com/ukydev/fleet-logistics/internal/middleware"
	"github.com/ukydev/fleet-logistics/internal/models"
)

// app wires the simulated API's handlers to the store.
type app struct {
	store        *Store
	authService  *auth.Service
	email        string
	passwordHash []byte
	validate     *validator.Validate
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.login)

		r.Group(func(r chi.Router) {
			mw := middleware.NewAuthMiddleware(a.authService)
			r.Use(mw.RequireToken)

			r.Post("/auth/logout", a.logout)

			r.Get("/trucks", a.listTrucks)
			r.Post("/trucks", a.createTruck)
			r.Get("/trucks/{id}", a.getTruck)
			r.Patch("/trucks/{id}/status/{action}", a.truckStatus)

			r.Get("/drivers", a.listDrivers)
			r.Post("/drivers", a.createDriver)
			r.Get("/drivers/{id}", a.getDriver)
			r.Patch("/drivers/{id}/employment-status/{action}", a.driverStatus)

			r.Get("/trips", a.listTrips)
			r.Post("/trips", a.createTrip)
			r.Get("/trips/{id}", a.getTrip)
			r.Patch("/trips/{id}/begin", a.tripAction(models.TripInTransit))
			r.Patch("/trips/{id}/finish/success", a.tripAction(models.TripCompleted))
			r.Patch("/trips/{id}/finish/failure", a.tripAction(models.TripFailedDelivery))
			r.Patch("/trips/{id}/cancel", a.tripAction(models.TripCanceled))

			r.Get("/facilities", a.listFacilities)
			r.Post("/facilities", a.createFacility)
			r.Get("/facilities/{id}", a.getFacility)

			r.Get("/incident-reports", a.listIncidents)
			r.Post("/incident-reports", a.createIncident)
			r.Get("/incident-reports/{id}", a.getIncident)

			r.Get("/maintenance-logs", a.listMaintenanceLogs)
			r.Post("/maintenance-logs", a.createMaintenanceLog)
			r.Get("/maintenance-logs/{id}", a.getMaintenanceLog)
		})
	})

	return r
}

type listEnvelope struct {
	Items  any `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func pageParams(r *http.Request) (limit, offset int) {
	limit = 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func writePage(w http.ResponseWriter, r *http.Request, items any, total int) {
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, listEnvelope{Items: items, Total: total, Limit: limit, Offset: offset})
}

// readPayload decodes and validates a JSON request body.
func (a *app) readPayload(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	if err := a.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (a *app) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !a.readPayload(w, r, &req) {
		return
	}
	if req.Email != a.email ||
		bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := a.authService.GenerateToken(req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}

func (a *app) logout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout just acknowledges.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *app) listTrucks(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total := a.store.Trucks(limit, offset)
	writePage(w, r, items, total)
}

func (a *app) getTruck(w http.ResponseWriter, r *http.Request) {
	truck, ok := a.store.Truck(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "truck not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: truck})
}

func (a *app) createTruck(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateTruckPayload
	if !a.readPayload(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: a.store.AddTruck(payload)})
}

var truckActions = map[string]models.TruckStatus{
	"available":   models.TruckAvailable,
	"in-transit":  models.TruckInTransit,
	"maintenance": models.TruckUnderMaintenance,
	"retire":      models.TruckRetired,
}

func (a *app) truckStatus(w http.ResponseWriter, r *http.Request) {
	target, ok := truckActions[chi.URLParam(r, "action")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown status action")
		return
	}
	truck, err := a.store.SetTruckStatus(chi.URLParam(r, "id"), target)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: truck})
}

func (a *app) listDrivers(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total := a.store.Drivers(limit, offset)
	writePage(w, r, items, total)
}

func (a *app) getDriver(w http.ResponseWriter, r *http.Request) {
	driver, ok := a.store.Driver(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "driver not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: driver})
}

func (a *app) createDriver(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateDriverPayload
	if !a.readPayload(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: a.store.AddDriver(payload)})
}

var driverActions = map[string]models.EmploymentStatus{
	"activate":  models.DriverActive,
	"suspend":   models.DriverSuspended,
	"terminate": models.DriverTerminated,
}

func (a *app) driverStatus(w http.ResponseWriter, r *http.Request) {
	target, ok := driverActions[chi.URLParam(r, "action")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown status action")
		return
	}
	driver, err := a.store.SetDriverStatus(chi.URLParam(r, "id"), target)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: driver})
}

func (a *app) listTrips(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total := a.store.Trips(limit, offset)
	writePage(w, r, items, total)
}

func (a *app) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := a.store.Trip(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: trip})
}

func (a *app) createTrip(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateTripPayload
	if !a.readPayload(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: a.store.AddTrip(payload)})
}

func (a *app) tripAction(target models.TripStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trip, err := a.store.SetTripStatus(chi.URLParam(r, "id"), target)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataEnvelope{Data: trip})
	}
}

func (a *app) listFacilities(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total := a.store.Facilities(limit, offset)
	writePage(w, r, items, total)
}

func (a *app) getFacility(w http.ResponseWriter, r *http.Request) {
	facility, ok := a.store.Facility(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "facility not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: facility})
}

func (a *app) createFacility(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateFacilityPayload
	if !a.readPayload(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: a.store.AddFacility(payload)})
}

func (a *app) listIncidents(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total := a.store.Incidents(limit, offset)
	writePage(w, r, items, total)
}

func (a *app) getIncident(w http.ResponseWriter, r *http.Request) {
	incident, ok := a.store.Incident(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "incident report not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: incident})
}

func (a *app) createIncident(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateIncidentPayload
	if !a.readPayload(w, r, &payload) {
		return
	}
	incident, err := a.store.AddIncident(payload)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: incident})
}

func (a *app) listMaintenanceLogs(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total := a.store.MaintenanceLogs(limit, offset)
	writePage(w, r, items, total)
}

func (a *app) getMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	entry, ok := a.store.MaintenanceLog(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "maintenance log not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: entry})
}

func (a *app) createMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateMaintenanceLogPayload
	if !a.readPayload(w, r, &payload) {
		return
	}
	entry, err := a.store.AddMaintenanceLog(payload)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: entry})
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errIllegalTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
