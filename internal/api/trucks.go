package api

import (
	"context"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// ListTrucks fetches a page of trucks.
func (c *Client) ListTrucks(ctx context.Context, opts ListOptions) (Page[models.Truck], error) {
	return list[models.Truck](ctx, c, "/trucks", opts)
}

// GetTruck fetches a single truck by id.
func (c *Client) GetTruck(ctx context.Context, id string) (models.Truck, error) {
	return getOne[models.Truck](ctx, c, "/trucks/"+id)
}

// CreateTruck registers a new truck. The payload is validated locally before
// the request is sent.
func (c *Client) CreateTruck(ctx context.Context, payload models.CreateTruckPayload) (models.Truck, error) {
	return create[models.Truck](ctx, c, "/trucks", payload)
}

// SetTruckAvailable marks a truck available.
func (c *Client) SetTruckAvailable(ctx context.Context, id string) (models.Truck, error) {
	return patchAction[models.Truck](ctx, c, "/trucks/"+id+"/status/available")
}

// SetTruckInTransit marks a truck in transit.
func (c *Client) SetTruckInTransit(ctx context.Context, id string) (models.Truck, error) {
	return patchAction[models.Truck](ctx, c, "/trucks/"+id+"/status/in-transit")
}

// SetTruckInMaintenance sends a truck to the shop.
func (c *Client) SetTruckInMaintenance(ctx context.Context, id string) (models.Truck, error) {
	return patchAction[models.Truck](ctx, c, "/trucks/"+id+"/status/maintenance")
}

// RetireTruck retires a truck permanently.
func (c *Client) RetireTruck(ctx context.Context, id string) (models.Truck, error) {
	return patchAction[models.Truck](ctx, c, "/trucks/"+id+"/status/retire")
}
