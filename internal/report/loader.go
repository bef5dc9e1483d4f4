package report

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-logistics/internal/api"
	"github.com/ukydev/fleet-logistics/internal/models"
)

// Source is the slice of the fleet API the loader needs. *api.Client
// satisfies it.
type Source interface {
	ListTrips(ctx context.Context, opts api.ListOptions) (api.Page[models.Trip], error)
	ListTrucks(ctx context.Context, opts api.ListOptions) (api.Page[models.Truck], error)
	ListDrivers(ctx context.Context, opts api.ListOptions) (api.Page[models.Driver], error)
	ListIncidents(ctx context.Context, opts api.ListOptions) (api.Page[models.IncidentReport], error)
	ListMaintenanceLogs(ctx context.Context, opts api.ListOptions) (api.Page[models.MaintenanceLog], error)
}

// LoadOptions configure a dashboard load.
type LoadOptions struct {
	Options
	// PageSize is the limit passed to each list endpoint; zero means the
	// server default.
	PageSize int
}

// Load fans out the five list fetches concurrently, joins them, and builds
// the dashboard. Each fetch writes its own result variable, so there is no
// shared mutable state between the goroutines. If any fetch fails, the
// returned dashboard degrades to zeroed defaults with an explicit error
// flag; the first fetch error is also returned so callers can apply policy
// (e.g. re-authenticate on 401), but the dashboard is complete either way.
func Load(ctx context.Context, src Source, opts LoadOptions) (Dashboard, error) {
	listOpts := api.ListOptions{Limit: opts.PageSize}

	var (
		trips       api.Page[models.Trip]
		trucks      api.Page[models.Truck]
		drivers     api.Page[models.Driver]
		incidents   api.Page[models.IncidentReport]
		maintenance api.Page[models.MaintenanceLog]
		errs        [5]error
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		trips, errs[0] = src.ListTrips(ctx, listOpts)
	}()
	go func() {
		defer wg.Done()
		trucks, errs[1] = src.ListTrucks(ctx, listOpts)
	}()
	go func() {
		defer wg.Done()
		drivers, errs[2] = src.ListDrivers(ctx, listOpts)
	}()
	go func() {
		defer wg.Done()
		incidents, errs[3] = src.ListIncidents(ctx, listOpts)
	}()
	go func() {
		defer wg.Done()
		maintenance, errs[4] = src.ListMaintenanceLogs(ctx, listOpts)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.WithError(err).Warn("dashboard load degraded to zeroed defaults")
			return Zeroed(opts.Options), err
		}
	}

	return Build(Input{
		Trips:            trips.Items,
		TripsTotal:       trips.Total,
		Trucks:           trucks.Items,
		TrucksTotal:      trucks.Total,
		Drivers:          drivers.Items,
		DriversTotal:     drivers.Total,
		Incidents:        incidents.Items,
		IncidentsTotal:   incidents.Total,
		Maintenance:      maintenance.Items,
		MaintenanceTotal: maintenance.Total,
	}, opts.Options), nil
}
