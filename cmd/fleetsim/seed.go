package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ukydev/fleet-logistics/internal/models"
)

var (
	truckMakes   = []string{"Freightliner", "Kenworth", "Peterbilt", "Volvo", "Mack", "International"}
	truckModels  = []string{"Cascadia", "T680", "579", "VNL 860", "Anthem", "LT Series"}
	trailerTypes = []string{"DRY_VAN", "REFRIGERATED", "FLATBED", "TANKER"}
	plateStates  = []string{"CA", "TX", "IL", "OH", "GA", "PA"}

	firstNames = []string{"John", "Maria", "James", "Linda", "Robert", "Patricia", "Carlos", "Susan", "David", "Angela"}
	lastNames  = []string{"Smith", "Garcia", "Johnson", "Miller", "Davis", "Rodriguez", "Wilson", "Martinez", "Anderson", "Taylor"}

	cityNames = []string{"Chicago", "Dallas", "Atlanta", "Columbus", "Memphis", "Denver"}

	incidentTypes = []models.IncidentType{
		models.IncidentTrafficAccident, models.IncidentMechanicalFailure,
		models.IncidentWeatherDelay, models.IncidentCargoIssue, models.IncidentOther,
	}
	serviceTypes = []models.ServiceType{
		models.ServiceRoutine, models.ServiceRepair, models.ServiceEmergency,
	}
	truckStatuses = []models.TruckStatus{
		models.TruckAvailable, models.TruckAvailable, models.TruckInTransit,
		models.TruckUnderMaintenance, models.TruckRetired,
	}
	tripStatuses = []models.TripStatus{
		models.TripScheduled, models.TripInTransit, models.TripCompleted,
		models.TripCompleted, models.TripFailedDelivery, models.TripCanceled,
	}
)

func randomVIN(r *rand.Rand) string {
	const alphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
	vin := make([]byte, 17)
	for i := range vin {
		vin[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(vin)
}

// Seed populates the store with a randomized but internally consistent
// fleet: trips reference seeded trucks, drivers and facilities, and
// incidents and maintenance logs reference seeded trips and trucks.
func Seed(store *Store, r *rand.Rand, trucks, drivers, trips int) {
	now := time.Now().UTC()

	for i := 0; i < len(cityNames); i++ {
		store.AddFacility(models.CreateFacilityPayload{
			FacilityNumber:    fmt.Sprintf("FAC-%03d", i+1),
			Name:              cityNames[i] + " Distribution Center",
			Type:              "DISTRIBUTION_CENTER",
			Address:           models.Address{City: cityNames[i], State: plateStates[i%len(plateStates)]},
			ContactInfo:       models.ContactInfo{Phone: "555-0100", Email: "dispatch@example.com"},
			ParkingCapacity:   20 + r.Intn(80),
			ServicesAvailable: []string{"FUEL", "REPAIR", "PARKING"},
		})
	}

	for i := 0; i < trucks; i++ {
		truck := store.AddTruck(models.CreateTruckPayload{
			TruckNumber: fmt.Sprintf("TRK-%03d", i+1),
			VIN:         randomVIN(r),
			Make:        truckMakes[r.Intn(len(truckMakes))],
			Model:       truckModels[r.Intn(len(truckModels))],
			Year:        2015 + r.Intn(10),
			LicensePlate: models.LicensePlate{
				Number: fmt.Sprintf("%c%c%c%04d", 'A'+r.Intn(26), 'A'+r.Intn(26), 'A'+r.Intn(26), r.Intn(10000)),
				State:  plateStates[r.Intn(len(plateStates))],
			},
			Mileage:         50000 + r.Intn(400000),
			TrailerType:     trailerTypes[r.Intn(len(trailerTypes))],
			CapacityTons:    10 + float64(r.Intn(30)),
			FuelType:        "DIESEL",
			LastMaintenance: now.AddDate(0, 0, -r.Intn(180)).Format("2006-01-02"),
		})
		// AddTruck always starts AVAILABLE; walk some into other states.
		seedTruckStatus(store, truck.ID, truckStatuses[r.Intn(len(truckStatuses))])
	}

	for i := 0; i < drivers; i++ {
		first := firstNames[r.Intn(len(firstNames))]
		last := lastNames[r.Intn(len(lastNames))]
		driver := store.AddDriver(models.CreateDriverPayload{
			FirstName:         first,
			LastName:          last,
			DOB:               fmt.Sprintf("19%02d-0%d-1%d", 60+r.Intn(40), 1+r.Intn(9), r.Intn(9)),
			LicenseNumber:     fmt.Sprintf("CDL%07d", r.Intn(10000000)),
			LicenseState:      plateStates[r.Intn(len(plateStates))],
			LicenseExpiration: now.AddDate(1+r.Intn(4), 0, 0).Format("2006-01-02"),
			Phone:             fmt.Sprintf("555-%04d", r.Intn(10000)),
			Email:             fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			Address:           models.Address{City: cityNames[r.Intn(len(cityNames))], State: plateStates[r.Intn(len(plateStates))]},
		})
		if r.Intn(5) == 0 {
			store.SetDriverStatus(driver.ID, models.DriverSuspended)
		}
	}

	storedTrucks, _ := store.Trucks(0, 0)
	storedDrivers, _ := store.Drivers(0, 0)
	storedFacilities, _ := store.Facilities(0, 0)

	for i := 0; i < trips; i++ {
		origin := storedFacilities[r.Intn(len(storedFacilities))]
		dest := storedFacilities[r.Intn(len(storedFacilities))]
		departure := now.Add(-time.Duration(r.Intn(30*24)) * time.Hour)
		distance := 100 + float64(r.Intn(1900))

		trip := store.AddTrip(models.CreateTripPayload{
			TripNumber:          fmt.Sprintf("TR-%04d", i+1),
			DriverID:            storedDrivers[r.Intn(len(storedDrivers))].ID,
			TruckID:             storedTrucks[r.Intn(len(storedTrucks))].ID,
			OriginFacility:      origin.ID,
			DestinationFacility: dest.ID,
			ScheduledDeparture:  departure,
			ScheduledArrival:    departure.Add(time.Duration(6+r.Intn(48)) * time.Hour),
			Cargo: models.Cargo{
				Description: "General freight",
				Weight:      1000 + float64(r.Intn(40000)),
				Hazmat:      r.Intn(10) == 0,
			},
			DistanceMiles: distance,
		})
		seedTripOutcome(store, r, trip.ID, tripStatuses[r.Intn(len(tripStatuses))], distance)
	}

	storedTrips, _ := store.Trips(0, 0)
	for i := 0; i < trips/5; i++ {
		trip := storedTrips[r.Intn(len(storedTrips))]
		store.AddIncident(models.CreateIncidentPayload{
			TripID:         trip.ID,
			TruckID:        trip.TruckID,
			DriverID:       trip.DriverID,
			Type:           incidentTypes[r.Intn(len(incidentTypes))],
			Description:    "Reported during trip " + trip.TripNumber,
			Date:           now.Add(-time.Duration(r.Intn(30*24)) * time.Hour),
			Location:       cityNames[r.Intn(len(cityNames))],
			DamageEstimate: float64(r.Intn(20000)),
		})
	}

	for i := 0; i < trucks*2; i++ {
		truck := storedTrucks[r.Intn(len(storedTrucks))]
		store.AddMaintenanceLog(models.CreateMaintenanceLogPayload{
			TruckID:     truck.ID,
			Date:        now.Add(-time.Duration(r.Intn(90*24)) * time.Hour),
			ServiceType: serviceTypes[r.Intn(len(serviceTypes))],
			Cost:        50 + float64(r.Intn(500000))/100,
			Notes:       "Scheduled service",
			Mechanic:    firstNames[r.Intn(len(firstNames))],
			Location:    cityNames[r.Intn(len(cityNames))],
		})
	}
}

// seedTruckStatus walks a fresh truck from AVAILABLE to the desired status
// through legal transitions only.
func seedTruckStatus(store *Store, id string, target models.TruckStatus) {
	switch target {
	case models.TruckInTransit:
		store.SetTruckStatus(id, models.TruckInTransit)
	case models.TruckUnderMaintenance:
		store.SetTruckStatus(id, models.TruckUnderMaintenance)
	case models.TruckRetired:
		store.SetTruckStatus(id, models.TruckRetired)
	}
}

// seedTripOutcome walks a fresh SCHEDULED trip to the desired status and
// backfills fuel usage for trips that ran.
func seedTripOutcome(store *Store, r *rand.Rand, id string, target models.TripStatus, distance float64) {
	switch target {
	case models.TripInTransit:
		store.SetTripStatus(id, models.TripInTransit)
	case models.TripCompleted:
		store.SetTripStatus(id, models.TripInTransit)
		store.SetTripStatus(id, models.TripCompleted)
	case models.TripFailedDelivery:
		store.SetTripStatus(id, models.TripInTransit)
		store.SetTripStatus(id, models.TripFailedDelivery)
	case models.TripCanceled:
		store.SetTripStatus(id, models.TripCanceled)
	}

	if target == models.TripCompleted || target == models.TripFailedDelivery {
		// 5.5 to 8.5 mpg, typical for a loaded class 8 truck.
		mpg := 5.5 + r.Float64()*3
		store.setTripFuel(id, distance/mpg)
	}
}

// setTripFuel backfills fuel usage on a finished trip.
func (s *Store) setTripFuel(id string, gallons float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trips {
		if s.trips[i].ID == id {
			s.trips[i].FuelUsageGallons = gallons
			return
		}
	}
}
