package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ssage19/Aspira-sub004/internal/catalog"
	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/job"
	"github.com/ssage19/Aspira-sub004/internal/sim"
	"github.com/ssage19/Aspira-sub004/internal/store"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "lifesim_config.yml", "path to config file")
	catalogPath := flag.String("catalog", "lifesim_catalog.yml", "path to catalog file")
	dataDir := flag.String("data-dir", "data", "path to data directory")
	days := flag.Int("days", 120, "number of simulated days to run")
	startingCash := flag.Float64("cash", 80000, "starting cash")
	seed := flag.Int64("seed", 0, "payroll RNG seed (0 = time-based)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}
	repo, err := store.NewFileRepo(*dataDir)
	if err != nil {
		log.WithError(err).Fatal("open data dir")
	}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := sim.NewFakeClock(start)

	engine := sim.New(sim.Options{
		Characters: repo,
		Catalog:    cat,
		Balance:    cfg.Balance,
		Clock:      clock,
		Events:     telemetry.NewMemoryRecorder(),
		Log:        log,
		Seed:       *seed,
	})

	ctx := context.Background()
	if err := runDemo(ctx, engine, clock, start, *days, *startingCash); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
}

// runDemo seeds a character, makes a few representative purchases and drives
// the clock day by day, printing the final net worth breakdown.
func runDemo(ctx context.Context, engine *sim.Engine, clock *sim.FakeClock, start time.Time, days int, cash float64) error {
	const charID = "demo"

	if _, err := engine.CreateCharacter(ctx, charID, "Demo Character", cash); err != nil {
		return err
	}
	if err := engine.SetHousing(ctx, charID, character.HousingRented); err != nil {
		return err
	}
	if err := engine.SetVehicle(ctx, charID, character.VehicleEconomy); err != nil {
		return err
	}
	if err := engine.SetJob(ctx, charID, job.Job{
		ID:               "analyst",
		Title:            "Financial Analyst",
		AnnualSalary:     78000,
		MonthlyHappiness: 2,
		MonthlyStress:    4,
		MonthlySkillGain: 3,
		TimeCommitment:   40,
	}); err != nil {
		return err
	}
	if _, err := engine.BuyAsset(ctx, charID, "index_fund", 50); err != nil {
		return err
	}
	if _, err := engine.BuyProperty(ctx, charID, "starter_condo"); err != nil {
		return err
	}
	if _, err := engine.AcquireLifestyleItem(ctx, charID, "gym_membership"); err != nil {
		return err
	}

	for i := 0; i < days; i++ {
		clock.Advance(24 * time.Hour)
		if _, err := engine.AdvanceDay(ctx, charID, clock.Now()); err != nil {
			return err
		}
	}

	b, err := engine.NetWorthBreakdown(ctx, charID)
	if err != nil {
		return err
	}
	snap, err := engine.Snapshot(ctx, charID)
	if err != nil {
		return err
	}

	fmt.Printf("after %d days (%s):\n", days, snap.Name)
	printLine("cash", b.Cash)
	printLine("equities", b.Equities)
	printLine("crypto", b.Crypto)
	printLine("bonds", b.Bonds)
	printLine("other investments", b.OtherInvestments)
	printLine("property value", b.PropertyValue)
	printLine("property debt", b.PropertyDebt)
	printLine("property equity", b.PropertyEquity)
	printLine("lifestyle value", b.LifestyleValue)
	printLine("net worth", b.Total)
	fmt.Printf("  happiness %.0f  stress %.0f  health %.0f\n",
		snap.Attributes.Happiness, snap.Attributes.Stress, snap.Attributes.Health)
	return nil
}

func printLine(label string, d decimal.Decimal) {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	fmt.Fprintf(os.Stdout, "  %-18s %s\n", label, money.New(cents, money.USD).Display())
}
