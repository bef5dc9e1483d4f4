package api

import (
	"context"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// ListIncidents fetches a page of incident reports.
func (c *Client) ListIncidents(ctx context.Context, opts ListOptions) (Page[models.IncidentReport], error) {
	return list[models.IncidentReport](ctx, c, "/incident-reports", opts)
}

// GetIncident fetches a single incident report by id.
func (c *Client) GetIncident(ctx context.Context, id string) (models.IncidentReport, error) {
	return getOne[models.IncidentReport](ctx, c, "/incident-reports/"+id)
}

// CreateIncident files a new incident report.
func (c *Client) CreateIncident(ctx context.Context, payload models.CreateIncidentPayload) (models.IncidentReport, error) {
	return create[models.IncidentReport](ctx, c, "/incident-reports", payload)
}
