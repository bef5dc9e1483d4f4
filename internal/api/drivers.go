package api

import (
	"context"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// ListDrivers fetches a page of drivers.
func (c *Client) ListDrivers(ctx context.Context, opts ListOptions) (Page[models.Driver], error) {
	return list[models.Driver](ctx, c, "/drivers", opts)
}

// GetDriver fetches a single driver by id.
func (c *Client) GetDriver(ctx context.Context, id string) (models.Driver, error) {
	return getOne[models.Driver](ctx, c, "/drivers/"+id)
}

// CreateDriver registers a new driver.
func (c *Client) CreateDriver(ctx context.Context, payload models.CreateDriverPayload) (models.Driver, error) {
	return create[models.Driver](ctx, c, "/drivers", payload)
}

// ActivateDriver reactivates a suspended driver.
func (c *Client) ActivateDriver(ctx context.Context, id string) (models.Driver, error) {
	return patchAction[models.Driver](ctx, c, "/drivers/"+id+"/employment-status/activate")
}

// SuspendDriver suspends an active driver.
func (c *Client) SuspendDriver(ctx context.Context, id string) (models.Driver, error) {
	return patchAction[models.Driver](ctx, c, "/drivers/"+id+"/employment-status/suspend")
}

// TerminateDriver terminates a driver's employment.
func (c *Client) TerminateDriver(ctx context.Context, id string) (models.Driver, error) {
	return patchAction[models.Driver](ctx, c, "/drivers/"+id+"/employment-status/terminate")
}
