package api

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// FetchDashboardStats contadores agregados del overview.
func (c *Client) FetchDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var out entity.DashboardStats
	if err := c.get(ctx, "/dashboard-stats/", &out, "Failed to fetch dashboard stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchAuditLogs trae el registro de auditoría.
func (c *Client) FetchAuditLogs(ctx context.Context) ([]entity.AuditLogEntry, error) {
	var out []entity.AuditLogEntry
	if err := c.get(ctx, "/audit-logs/", &out, "Failed to fetch audit logs"); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchNotifications trae el feed de avisos.
func (c *Client) FetchNotifications(ctx context.Context) ([]entity.Notification, error) {
	var out []entity.Notification
	if err := c.get(ctx, "/notifications/", &out, "Failed to fetch notifications"); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchSystemSettings lee la configuración persistida.
func (c *Client) FetchSystemSettings(ctx context.Context) (*entity.SystemSettings, error) {
	var out entity.SystemSettings
	if err := c.get(ctx, "/system-settings/", &out, "Failed to fetch system settings"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSystemSettings guarda la configuración completa.
func (c *Client) UpdateSystemSettings(ctx context.Context, s entity.SystemSettings) (*entity.SystemSettings, error) {
	var out entity.SystemSettings
	if err := c.put(ctx, "/system-settings/", s, &out, "Failed to update system settings"); err != nil {
		return nil, err
	}
	return &out, nil
}
