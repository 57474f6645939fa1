package api

import (
	"context"

	"tableflip.dev/advcontrol/pkg/logging"
	"tableflip.dev/advcontrol/pkg/resource"
)

// Deadlines fetches GET /prazos.
func (c *Client) Deadlines(ctx context.Context) ([]resource.Deadline, error) {
	return getList[resource.Deadline](ctx, c, resource.KindDeadlines)
}

// Cases fetches GET /casos.
func (c *Client) Cases(ctx context.Context) ([]resource.Case, error) {
	return getList[resource.Case](ctx, c, resource.KindCases)
}

// Financial fetches GET /financeiro.
func (c *Client) Financial(ctx context.Context) ([]resource.FinancialRecord, error) {
	return getList[resource.FinancialRecord](ctx, c, resource.KindFinancial)
}

// Dashboard fetches GET /dashboard.
func (c *Client) Dashboard(ctx context.Context) (resource.DashboardStats, error) {
	data, err := c.get(ctx, resource.KindDashboard.Path())
	if err != nil {
		return resource.DashboardStats{}, err
	}
	stats, skipped, err := resource.DecodeDashboard(data)
	if err != nil {
		return resource.DashboardStats{}, err
	}
	if skipped > 0 {
		logging.Warnf("api: dashboard: skipped %d malformed alerts", skipped)
	}
	return stats, nil
}

func getList[T any](ctx context.Context, c *Client, kind resource.Kind) ([]T, error) {
	data, err := c.get(ctx, kind.Path())
	if err != nil {
		return nil, err
	}
	items, skipped, err := resource.DecodeList[T](data)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logging.Warnf("api: %s: skipped %d malformed records", kind, skipped)
	}
	return items, nil
}
