package api

import (
	"context"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// ListFacilities fetches a page of facilities.
func (c *Client) ListFacilities(ctx context.Context, opts ListOptions) (Page[models.Facility], error) {
	return list[models.Facility](ctx, c, "/facilities", opts)
}

// GetFacility fetches a single facility by id.
func (c *Client) GetFacility(ctx context.Context, id string) (models.Facility, error) {
	return getOne[models.Facility](ctx, c, "/facilities/"+id)
}

// CreateFacility registers a new facility.
func (c *Client) CreateFacility(ctx context.Context, payload models.CreateFacilityPayload) (models.Facility, error) {
	return create[models.Facility](ctx, c, "/facilities", payload)
}
