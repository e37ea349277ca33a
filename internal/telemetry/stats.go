package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	DayTicks        int               `json:"day_ticks"`
	SalaryPayments  int               `json:"salary_payments"`
	PropertyTrades  int               `json:"property_trades"`
	AssetTrades     int               `json:"asset_trades"`
	ItemsAcquired   int               `json:"items_acquired"`
	ItemsExpired    int               `json:"items_expired"`
	TradesPerDay    float64           `json:"trades_per_day"`
	SpendByCategory map[string]int    `json:"spend_by_category"`
}

// CalculateStats computes session stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:          since.Format("2006-01-02"),
		EventCounts:     make(map[EventType]int),
		SpendByCategory: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventDayTick:
			stats.DayTicks++
		case EventSalaryPaid:
			stats.SalaryPayments++
		case EventPropertyBought, EventPropertySold:
			stats.PropertyTrades++
		case EventAssetBought, EventAssetSold:
			stats.AssetTrades++
		case EventItemAcquired:
			stats.ItemsAcquired++
			if cat, ok := metadata["category"].(string); ok {
				stats.SpendByCategory[cat]++
			}
		case EventItemExpired:
			stats.ItemsExpired++
		}
	}

	if stats.DayTicks > 0 {
		stats.TradesPerDay = float64(stats.AssetTrades+stats.PropertyTrades) / float64(stats.DayTicks)
	}

	return stats, nil
}
