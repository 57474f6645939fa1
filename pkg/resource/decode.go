package resource

import (
	"encoding/json"
	"fmt"
)

// DecodeList decodes a JSON array one element at a time. Elements that fail to
// decode are skipped and counted instead of failing the whole collection. An
// error is only returned when data is not a JSON array.
func DecodeList[T any](data []byte) ([]T, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("resource: expected a JSON array: %w", err)
	}
	items := make([]T, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

// DecodeDashboard decodes dashboard stats, dropping individual alerts that
// cannot be decoded.
func DecodeDashboard(data []byte) (DashboardStats, int, error) {
	var wire struct {
		DashboardStats
		Alerts json.RawMessage `json:"alertas"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return DashboardStats{}, 0, fmt.Errorf("resource: decode dashboard: %w", err)
	}
	stats := wire.DashboardStats
	stats.Alerts = nil
	if len(wire.Alerts) == 0 || string(wire.Alerts) == "null" {
		return stats, 0, nil
	}
	alerts, skipped, err := DecodeList[Alert](wire.Alerts)
	if err != nil {
		return stats, 1, nil
	}
	stats.Alerts = alerts
	return stats, skipped, nil
}
