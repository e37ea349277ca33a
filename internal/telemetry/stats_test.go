package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecorder_FilterByTypeAndTime(t *testing.T) {
	r := NewMemoryRecorder()

	require.NoError(t, r.RecordEvent(EventAssetBought, EventMetadata{"listing": "fund"}))
	require.NoError(t, r.RecordEvent(EventDayTick, EventMetadata{"day": 1}))
	require.NoError(t, r.RecordEvent(EventAssetSold, EventMetadata{"listing": "fund"}))

	all, err := r.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ticks, err := r.GetEvents(time.Time{}, []EventType{EventDayTick})
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.Contains(t, ticks[0].Metadata, `"day":1`)

	none, err := r.GetEvents(time.Now().Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, r.Clear())
	all, err = r.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCalculateStats(t *testing.T) {
	r := NewMemoryRecorder()
	require.NoError(t, r.RecordEvent(EventDayTick, EventMetadata{"day": 1}))
	require.NoError(t, r.RecordEvent(EventDayTick, EventMetadata{"day": 2}))
	require.NoError(t, r.RecordEvent(EventAssetBought, EventMetadata{"listing": "fund"}))
	require.NoError(t, r.RecordEvent(EventPropertyBought, EventMetadata{"listing": "condo"}))
	require.NoError(t, r.RecordEvent(EventItemAcquired, EventMetadata{"category": "wellness"}))
	require.NoError(t, r.RecordEvent(EventItemExpired, EventMetadata{"item": "i1"}))
	require.NoError(t, r.RecordEvent(EventSalaryPaid, EventMetadata{"amount": 3000}))

	events, err := r.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.DayTicks)
	assert.Equal(t, 1, stats.AssetTrades)
	assert.Equal(t, 1, stats.PropertyTrades)
	assert.Equal(t, 1, stats.ItemsAcquired)
	assert.Equal(t, 1, stats.ItemsExpired)
	assert.Equal(t, 1, stats.SalaryPayments)
	assert.Equal(t, 1.0, stats.TradesPerDay)
	assert.Equal(t, 1, stats.SpendByCategory["wellness"])
}
