package telemetry

import "time"

type EventType string

const (
	EventAssetBought    EventType = "asset_bought"
	EventAssetSold      EventType = "asset_sold"
	EventPropertyBought EventType = "property_bought"
	EventPropertySold   EventType = "property_sold"
	EventItemAcquired   EventType = "item_acquired"
	EventItemReleased   EventType = "item_released"
	EventItemExpired    EventType = "item_expired"
	EventHousingChanged EventType = "housing_changed"
	EventVehicleChanged EventType = "vehicle_changed"
	EventJobChanged     EventType = "job_changed"
	EventSalaryPaid     EventType = "salary_paid"
	EventDayTick        EventType = "day_tick"
	EventMonthlyClose   EventType = "monthly_close"
)

// Event is one "state changed" notification emitted after a successful
// mutation. External observers (UI, challenge tracker) subscribe here instead
// of polling the revision stamp.
type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
