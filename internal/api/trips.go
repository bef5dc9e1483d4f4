package api

import (
	"context"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// ListTrips fetches a page of trips.
func (c *Client) ListTrips(ctx context.Context, opts ListOptions) (Page[models.Trip], error) {
	return list[models.Trip](ctx, c, "/trips", opts)
}

// GetTrip fetches a single trip by id.
func (c *Client) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	return getOne[models.Trip](ctx, c, "/trips/"+id)
}

// CreateTrip schedules a new trip.
func (c *Client) CreateTrip(ctx context.Context, payload models.CreateTripPayload) (models.Trip, error) {
	return create[models.Trip](ctx, c, "/trips", payload)
}

// BeginTrip moves a scheduled trip into transit.
func (c *Client) BeginTrip(ctx context.Context, id string) (models.Trip, error) {
	return patchAction[models.Trip](ctx, c, "/trips/"+id+"/begin")
}

// CompleteTrip finishes a trip as a successful delivery.
func (c *Client) CompleteTrip(ctx context.Context, id string) (models.Trip, error) {
	return patchAction[models.Trip](ctx, c, "/trips/"+id+"/finish/success")
}

// FailTrip finishes a trip as a failed delivery.
func (c *Client) FailTrip(ctx context.Context, id string) (models.Trip, error) {
	return patchAction[models.Trip](ctx, c, "/trips/"+id+"/finish/failure")
}

// CancelTrip cancels a trip.
func (c *Client) CancelTrip(ctx context.Context, id string) (models.Trip, error) {
	return patchAction[models.Trip](ctx, c, "/trips/"+id+"/cancel")
}
