package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/fleet-logistics/internal/models"
)

func testTruckPayload(n string) models.CreateTruckPayload {
	return models.CreateTruckPayload{
		TruckNumber:  "TRK-" + n,
		VIN:          "1FUJGLDR0CLBP8834",
		Make:         "Freightliner",
		Model:        "Cascadia",
		Year:         2020,
		LicensePlate: models.LicensePlate{Number: "ABC1234", State: "IL"},
		Mileage:      120000,
		TrailerType:  "DRY_VAN",
		CapacityTons: 20,
		FuelType:     "DIESEL",
	}
}

func TestStoreTruckStatusTransitions(t *testing.T) {
	store := NewStore()
	truck := store.AddTruck(testTruckPayload("001"))
	assert.Equal(t, models.TruckAvailable, truck.Status)

	updated, err := store.SetTruckStatus(truck.ID, models.TruckInTransit)
	require.NoError(t, err)
	assert.Equal(t, models.TruckInTransit, updated.Status)

	// IN_TRANSIT trucks cannot be retired mid-trip.
	_, err = store.SetTruckStatus(truck.ID, models.TruckRetired)
	assert.ErrorIs(t, err, errIllegalTransition)

	// But they can break down into maintenance.
	_, err = store.SetTruckStatus(truck.ID, models.TruckUnderMaintenance)
	require.NoError(t, err)

	_, err = store.SetTruckStatus("no-such-id", models.TruckAvailable)
	assert.ErrorIs(t, err, errNotFound)

	_, err = store.SetTruckStatus(truck.ID, models.TruckAvailable)
	require.NoError(t, err)
	_, err = store.SetTruckStatus(truck.ID, models.TruckRetired)
	require.NoError(t, err)

	// RETIRED is terminal.
	_, err = store.SetTruckStatus(truck.ID, models.TruckAvailable)
	assert.ErrorIs(t, err, errIllegalTransition)
}

func TestStoreTripLifecycle(t *testing.T) {
	store := NewStore()
	trip := store.AddTrip(models.CreateTripPayload{
		TripNumber:          "TR-0001",
		DriverID:            "d-1",
		TruckID:             "t-1",
		OriginFacility:      "f-1",
		DestinationFacility: "f-2",
		ScheduledDeparture:  time.Now(),
		ScheduledArrival:    time.Now().Add(8 * time.Hour),
		DistanceMiles:       400,
	})
	require.Equal(t, models.TripScheduled, trip.Status)
	assert.Nil(t, trip.DepartureTime.Actual)

	// A scheduled trip cannot complete without departing first.
	_, err := store.SetTripStatus(trip.ID, models.TripCompleted)
	assert.ErrorIs(t, err, errIllegalTransition)

	started, err := store.SetTripStatus(trip.ID, models.TripInTransit)
	require.NoError(t, err)
	require.NotNil(t, started.DepartureTime.Actual)

	done, err := store.SetTripStatus(trip.ID, models.TripCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.ArrivalTime.Actual)

	// COMPLETED is terminal.
	_, err = store.SetTripStatus(trip.ID, models.TripCanceled)
	assert.ErrorIs(t, err, errIllegalTransition)
}

func TestStorePagination(t *testing.T) {
	store := NewStore()
	for i := 0; i < 5; i++ {
		store.AddTruck(testTruckPayload(string(rune('a' + i))))
	}

	items, total := store.Trucks(2, 0)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)

	items, total = store.Trucks(2, 4)
	assert.Equal(t, 5, total)
	assert.Len(t, items, 1)

	items, _ = store.Trucks(10, 10)
	assert.Empty(t, items)

	items, _ = store.Trucks(0, 0)
	assert.Len(t, items, 5)
}

func TestStoreIncidentEmbedsSnapshots(t *testing.T) {
	store := NewStore()
	truck := store.AddTruck(testTruckPayload("001"))
	driver := store.AddDriver(models.CreateDriverPayload{
		FirstName: "Maria", LastName: "Garcia",
		LicenseNumber: "CDL0000001", LicenseState: "TX",
		Email: "maria@example.com",
	})
	trip := store.AddTrip(models.CreateTripPayload{
		TripNumber: "TR-0001", DriverID: driver.ID, TruckID: truck.ID,
		OriginFacility: "f-1", DestinationFacility: "f-2",
		ScheduledDeparture: time.Now(), ScheduledArrival: time.Now(),
	})

	incident, err := store.AddIncident(models.CreateIncidentPayload{
		TripID: trip.ID, TruckID: truck.ID, DriverID: driver.ID,
		Type: models.IncidentWeatherDelay, Description: "Ice storm", Date: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, trip.TripNumber, incident.Trip.TripNumber)
	assert.Equal(t, truck.VIN, incident.Truck.VIN)
	assert.Equal(t, "Garcia", incident.Driver.LastName)

	_, err = store.AddIncident(models.CreateIncidentPayload{
		TripID: "missing", TruckID: truck.ID, DriverID: driver.ID,
		Type: models.IncidentOther, Description: "x", Date: time.Now(),
	})
	assert.ErrorIs(t, err, errNotFound)
}

func TestSeedProducesConsistentFleet(t *testing.T) {
	store := NewStore()
	Seed(store, rand.New(rand.NewSource(42)), 10, 6, 30)

	trucks, totalTrucks := store.Trucks(0, 0)
	require.Equal(t, 10, totalTrucks)
	drivers, _ := store.Drivers(0, 0)
	require.Len(t, drivers, 6)
	trips, _ := store.Trips(0, 0)
	require.Len(t, trips, 30)
	facilities, _ := store.Facilities(0, 0)
	require.NotEmpty(t, facilities)

	truckIDs := make(map[string]bool, len(trucks))
	for _, truck := range trucks {
		assert.Len(t, truck.VIN, 17)
		assert.True(t, models.IsValidTruckStatus(truck.Status))
		truckIDs[truck.ID] = true
	}

	driverIDs := make(map[string]bool, len(drivers))
	for _, driver := range drivers {
		driverIDs[driver.ID] = true
	}

	for _, trip := range trips {
		assert.True(t, truckIDs[trip.TruckID], "trip references a seeded truck")
		assert.True(t, driverIDs[trip.DriverID], "trip references a seeded driver")
		assert.True(t, models.IsValidTripStatus(trip.Status))

		switch trip.Status {
		case models.TripCompleted, models.TripFailedDelivery:
			assert.NotNil(t, trip.ArrivalTime.Actual, "finished trip has an actual arrival")
			assert.Greater(t, trip.FuelUsageGallons, 0.0, "finished trip has fuel usage")
		case models.TripScheduled:
			assert.Nil(t, trip.DepartureTime.Actual)
		}
	}

	incidents, _ := store.Incidents(0, 0)
	assert.Len(t, incidents, 30/5)
	logs, _ := store.MaintenanceLogs(0, 0)
	assert.Len(t, logs, 10*2)
	for _, entry := range logs {
		assert.True(t, truckIDs[entry.Truck.ID], "log references a seeded truck")
		assert.Greater(t, entry.Cost, 0.0)
	}
}
