package main

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ukydev/fleet-logistics/internal/models"
	"github.com/ukydev/fleet-logistics/internal/transitions"
)

var (
	errNotFound          = errors.New("not found")
	errIllegalTransition = errors.New("illegal status transition")
)

// Store is the in-memory backing state of the simulated fleet API. Slices
// keep insertion order so pagination is deterministic.
type Store struct {
	mu          sync.RWMutex
	trucks      []models.Truck
	drivers     []models.Driver
	trips       []models.Trip
	facilities  []models.Facility
	incidents   []models.IncidentReport
	maintenance []models.MaintenanceLog
}

func NewStore() *Store {
	return &Store{}
}

// page slices items for a limit/offset window. Zero limit means everything.
func page[T any](items []T, limit, offset int) ([]T, int) {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out, total
}

func findByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store) Trucks(limit, offset int) ([]models.Truck, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.trucks, limit, offset)
}

func (s *Store) Truck(id string) (models.Truck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.trucks, id, func(t models.Truck) string { return t.ID })
}

func (s *Store) AddTruck(payload models.CreateTruckPayload) models.Truck {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	truck := models.Truck{
		ID:              uuid.NewString(),
		TruckNumber:     payload.TruckNumber,
		VIN:             payload.VIN,
		Make:            payload.Make,
		Model:           payload.Model,
		Year:            payload.Year,
		LicensePlate:    payload.LicensePlate,
		Mileage:         payload.Mileage,
		Status:          models.TruckAvailable,
		TrailerType:     payload.TrailerType,
		CapacityTons:    payload.CapacityTons,
		FuelType:        payload.FuelType,
		LastMaintenance: payload.LastMaintenance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.trucks = append(s.trucks, truck)
	return truck
}

// SetTruckStatus applies a status transition, consulting the registry for
// legality.
func (s *Store) SetTruckStatus(id string, target models.TruckStatus) (models.Truck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trucks {
		if s.trucks[i].ID != id {
			continue
		}
		if !transitions.CanTransition(transitions.KindTruck, string(s.trucks[i].Status), string(target)) {
			return models.Truck{}, errIllegalTransition
		}
		s.trucks[i].Status = target
		s.trucks[i].UpdatedAt = time.Now().UTC()
		return s.trucks[i], nil
	}
	return models.Truck{}, errNotFound
}

func (s *Store) Drivers(limit, offset int) ([]models.Driver, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.drivers, limit, offset)
}

func (s *Store) Driver(id string) (models.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.drivers, id, func(d models.Driver) string { return d.ID })
}

func (s *Store) AddDriver(payload models.CreateDriverPayload) models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	driver := models.Driver{
		ID:                uuid.NewString(),
		FirstName:         payload.FirstName,
		LastName:          payload.LastName,
		DOB:               payload.DOB,
		LicenseNumber:     payload.LicenseNumber,
		LicenseState:      payload.LicenseState,
		LicenseExpiration: payload.LicenseExpiration,
		Phone:             payload.Phone,
		Email:             payload.Email,
		Address:           payload.Address,
		EmploymentStatus:  models.DriverActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.drivers = append(s.drivers, driver)
	return driver
}

func (s *Store) SetDriverStatus(id string, target models.EmploymentStatus) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].ID != id {
			continue
		}
		if !transitions.CanTransition(transitions.KindDriver, string(s.drivers[i].EmploymentStatus), string(target)) {
			return models.Driver{}, errIllegalTransition
		}
		s.drivers[i].EmploymentStatus = target
		s.drivers[i].UpdatedAt = time.Now().UTC()
		return s.drivers[i], nil
	}
	return models.Driver{}, errNotFound
}

func (s *Store) Trips(limit, offset int) ([]models.Trip, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.trips, limit, offset)
}

func (s *Store) Trip(id string) (models.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.trips, id, func(t models.Trip) string { return t.ID })
}

func (s *Store) AddTrip(payload models.CreateTripPayload) models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	trip := models.Trip{
		ID:                  uuid.NewString(),
		TripNumber:          payload.TripNumber,
		DriverID:            payload.DriverID,
		TruckID:             payload.TruckID,
		OriginFacility:      payload.OriginFacility,
		DestinationFacility: payload.DestinationFacility,
		DepartureTime:       models.ScheduledActual{Scheduled: payload.ScheduledDeparture},
		ArrivalTime:         models.ScheduledActual{Scheduled: payload.ScheduledArrival},
		Status:              models.TripScheduled,
		Cargo:               payload.Cargo,
		DistanceMiles:       payload.DistanceMiles,
		Notes:               []models.TripNote{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.trips = append(s.trips, trip)
	return trip
}

// tripMoves is the trip lifecycle: unlike trucks and drivers, trip moves are
// driven by dedicated actions rather than the shared registry.
var tripMoves = map[models.TripStatus][]models.TripStatus{
	models.TripScheduled: {models.TripInTransit, models.TripCanceled},
	models.TripInTransit: {models.TripCompleted, models.TripFailedDelivery, models.TripCanceled},
}

func (s *Store) SetTripStatus(id string, target models.TripStatus) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trips {
		if s.trips[i].ID != id {
			continue
		}
		legal := false
		for _, next := range tripMoves[s.trips[i].Status.Canonical()] {
			if next == target {
				legal = true
				break
			}
		}
		if !legal {
			return models.Trip{}, errIllegalTransition
		}

		now := time.Now().UTC()
		switch target {
		case models.TripInTransit:
			s.trips[i].DepartureTime.Actual = &now
		case models.TripCompleted, models.TripFailedDelivery:
			s.trips[i].ArrivalTime.Actual = &now
		}
		s.trips[i].Status = target
		s.trips[i].UpdatedAt = now
		return s.trips[i], nil
	}
	return models.Trip{}, errNotFound
}

func (s *Store) Facilities(limit, offset int) ([]models.Facility, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.facilities, limit, offset)
}

func (s *Store) Facility(id string) (models.Facility, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.facilities, id, func(f models.Facility) string { return f.ID })
}

func (s *Store) AddFacility(payload models.CreateFacilityPayload) models.Facility {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	facility := models.Facility{
		ID:                uuid.NewString(),
		FacilityNumber:    payload.FacilityNumber,
		Name:              payload.Name,
		Type:              payload.Type,
		Address:           payload.Address,
		ContactInfo:       payload.ContactInfo,
		ParkingCapacity:   payload.ParkingCapacity,
		ServicesAvailable: payload.ServicesAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.facilities = append(s.facilities, facility)
	return facility
}

func (s *Store) Incidents(limit, offset int) ([]models.IncidentReport, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.incidents, limit, offset)
}

func (s *Store) Incident(id string) (models.IncidentReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.incidents, id, func(i models.IncidentReport) string { return i.ID })
}

// AddIncident resolves the referenced trip, truck and driver into embedded
// snapshots, mirroring the real API's response shape.
func (s *Store) AddIncident(payload models.CreateIncidentPayload) (models.IncidentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := findByID(s.trips, payload.TripID, func(t models.Trip) string { return t.ID })
	if !ok {
		return models.IncidentReport{}, errNotFound
	}
	truck, ok := findByID(s.trucks, payload.TruckID, func(t models.Truck) string { return t.ID })
	if !ok {
		return models.IncidentReport{}, errNotFound
	}
	driver, ok := findByID(s.drivers, payload.DriverID, func(d models.Driver) string { return d.ID })
	if !ok {
		return models.IncidentReport{}, errNotFound
	}

	now := time.Now().UTC()
	incident := models.IncidentReport{
		ID:             uuid.NewString(),
		Trip:           trip,
		Truck:          truck,
		Driver:         driver,
		Type:           payload.Type,
		Description:    payload.Description,
		Date:           payload.Date,
		Location:       payload.Location,
		DamageEstimate: payload.DamageEstimate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.incidents = append(s.incidents, incident)
	return incident, nil
}

func (s *Store) MaintenanceLogs(limit, offset int) ([]models.MaintenanceLog, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.maintenance, limit, offset)
}

func (s *Store) MaintenanceLog(id string) (models.MaintenanceLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.maintenance, id, func(m models.MaintenanceLog) string { return m.ID })
}

func (s *Store) AddMaintenanceLog(payload models.CreateMaintenanceLogPayload) (models.MaintenanceLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	truck, ok := findByID(s.trucks, payload.TruckID, func(t models.Truck) string { return t.ID })
	if !ok {
		return models.MaintenanceLog{}, errNotFound
	}

	now := time.Now().UTC()
	entry := models.MaintenanceLog{
		ID:          uuid.NewString(),
		Truck:       truck,
		Date:        payload.Date,
		ServiceType: payload.ServiceType,
		Cost:        payload.Cost,
		Notes:       payload.Notes,
		Mechanic:    payload.Mechanic,
		Location:    payload.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.maintenance = append(s.maintenance, entry)
	return entry, nil
}
