package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Recorder receives mutation events
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRecorder stores events in memory (dev/test use)
type MemoryRecorder struct {
	mu     sync.RWMutex
	events []Event
	nextID int
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		events: make([]Event, 0),
		nextID: 1,
	}
}

func (r *MemoryRecorder) RecordEvent(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	event := Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	}

	r.events = append(r.events, event)
	r.nextID++

	return nil
}

func (r *MemoryRecorder) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}

	return result, nil
}

func (r *MemoryRecorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1

	return nil
}

// NopRecorder discards everything; used when no observer is attached.
type NopRecorder struct{}

func (NopRecorder) RecordEvent(EventType, EventMetadata) error         { return nil }
func (NopRecorder) GetEvents(time.Time, []EventType) ([]Event, error)  { return nil, nil }
func (NopRecorder) Clear() error                                       { return nil }
