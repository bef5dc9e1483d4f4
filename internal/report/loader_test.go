package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleet-logistics/internal/api"
	"github.com/ukydev/fleet-logistics/internal/models"
)

type stubSource struct {
	trips       api.Page[models.Trip]
	trucks      api.Page[models.Truck]
	drivers     api.Page[models.Driver]
	incidents   api.Page[models.IncidentReport]
	maintenance api.Page[models.MaintenanceLog]

	tripsErr error
}

func (s *stubSource) ListTrips(ctx context.Context, opts api.ListOptions) (api.Page[models.Trip], error) {
	return s.trips, s.tripsErr
}

func (s *stubSource) ListTrucks(ctx context.Context, opts api.ListOptions) (api.Page[models.Truck], error) {
	return s.trucks, nil
}

func (s *stubSource) ListDrivers(ctx context.Context, opts api.ListOptions) (api.Page[models.Driver], error) {
	return s.drivers, nil
}

func (s *stubSource) ListIncidents(ctx context.Context, opts api.ListOptions) (api.Page[models.IncidentReport], error) {
	return s.incidents, nil
}

func (s *stubSource) ListMaintenanceLogs(ctx context.Context, opts api.ListOptions) (api.Page[models.MaintenanceLog], error) {
	return s.maintenance, nil
}

func TestLoad(t *testing.T) {
	src := &stubSource{
		trips: api.Page[models.Trip]{
			Items: []models.Trip{{Status: models.TripCanceled}},
			Total: 1,
		},
		trucks: api.Page[models.Truck]{
			Items: []models.Truck{{Status: models.TruckAvailable}, {Status: models.TruckInTransit}},
			Total: 10, // paginated source reports more than fetched
		},
		drivers: api.Page[models.Driver]{
			Items: []models.Driver{{EmploymentStatus: models.DriverActive}},
			Total: 1,
		},
		incidents: api.Page[models.IncidentReport]{Total: 3},
	}

	d, err := Load(context.Background(), src, LoadOptions{})
	require.NoError(t, err)
	require.Nil(t, d.Err)
	assert.Equal(t, 10, d.Metrics.Fleet.Total)
	assert.Equal(t, 1, d.Metrics.Fleet.Available)
	assert.Equal(t, 1, d.Metrics.Fleet.InTransit)
	assert.Equal(t, 1, d.Metrics.Delivery.FailedDeliveries)
	assert.Equal(t, 1, d.Metrics.ActiveDrivers)
	assert.Equal(t, 3, d.Metrics.IncidentCount)
}

func TestLoadDegradesToZeroedOnFetchError(t *testing.T) {
	src := &stubSource{
		trucks:   api.Page[models.Truck]{Items: []models.Truck{{Status: models.TruckAvailable}}, Total: 1},
		tripsErr: errors.New("connection refused"),
	}

	d, err := Load(context.Background(), src, LoadOptions{})
	require.Error(t, err)
	require.NotNil(t, d.Err)
	assert.Equal(t, "DATA_LOAD_ERROR", d.Err.Code)

	// Degraded output is fully zeroed, not partially populated.
	assert.Equal(t, 0, d.Metrics.Fleet.Available)
	assert.Equal(t, "0.0", d.Metrics.Delivery.OnTimeRate)
	assert.Equal(t, "0.00", d.Metrics.Efficiency.MaintenanceCost)
}
