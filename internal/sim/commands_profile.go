package sim

import (
	"context"
	"fmt"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/job"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

// SetHousing switches the housing category, changing the monthly housing
// expense and the daily comfort adjustment from the next tick on.
func (e *Engine) SetHousing(ctx context.Context, characterID string, h character.HousingType) error {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return err
	}
	if _, ok := e.Balance.HousingCost[string(h)]; !ok {
		return fmt.Errorf("unknown housing category: %s", h)
	}
	c.Housing = h
	if _, err := e.commit(ctx, c); err != nil {
		return err
	}
	e.emit(telemetry.EventHousingChanged, telemetry.EventMetadata{
		"character": c.ID,
		"housing":   string(h),
	})
	return nil
}

// SetVehicle switches the vehicle category, changing the monthly
// transportation expense.
func (e *Engine) SetVehicle(ctx context.Context, characterID string, v character.VehicleType) error {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return err
	}
	if _, ok := e.Balance.TransportCost[string(v)]; !ok {
		return fmt.Errorf("unknown vehicle category: %s", v)
	}
	c.Vehicle = v
	if _, err := e.commit(ctx, c); err != nil {
		return err
	}
	e.emit(telemetry.EventVehicleChanged, telemetry.EventMetadata{
		"character": c.ID,
		"vehicle":   string(v),
	})
	return nil
}

// SetJob attaches an employment record; salary and job effects flow through
// the daily and weekly ticks.
func (e *Engine) SetJob(ctx context.Context, characterID string, j job.Job) error {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return err
	}
	c.Job = &j
	if _, err := e.commit(ctx, c); err != nil {
		return err
	}
	e.emit(telemetry.EventJobChanged, telemetry.EventMetadata{
		"character": c.ID,
		"job":       j.Title,
	})
	return nil
}

// QuitJob clears the employment record.
func (e *Engine) QuitJob(ctx context.Context, characterID string) error {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return err
	}
	c.Job = nil
	if _, err := e.commit(ctx, c); err != nil {
		return err
	}
	e.emit(telemetry.EventJobChanged, telemetry.EventMetadata{
		"character": c.ID,
		"job":       "",
	})
	return nil
}
