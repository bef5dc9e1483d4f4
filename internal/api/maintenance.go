package api

import (
	"context"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// ListMaintenanceLogs fetches a page of maintenance logs.
func (c *Client) ListMaintenanceLogs(ctx context.Context, opts ListOptions) (Page[models.MaintenanceLog], error) {
	return list[models.MaintenanceLog](ctx, c, "/maintenance-logs", opts)
}

// GetMaintenanceLog fetches a single maintenance log by id.
func (c *Client) GetMaintenanceLog(ctx context.Context, id string) (models.MaintenanceLog, error) {
	return getOne[models.MaintenanceLog](ctx, c, "/maintenance-logs/"+id)
}

// CreateMaintenanceLog records a new maintenance log.
func (c *Client) CreateMaintenanceLog(ctx context.Context, payload models.CreateMaintenanceLogPayload) (models.MaintenanceLog, error) {
	return create[models.MaintenanceLog](ctx, c, "/maintenance-logs", payload)
}
