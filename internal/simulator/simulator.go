// Package simulator plays large numbers of hands between decision policies
// and reports per-player statistics. Tables run independently, one
// goroutine each; all randomness derives from a single seed.
package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/statistics"
)

// SeatConfig describes one simulated player. NewPolicy is called once per
// table so parallel tables never share a policy instance.
type SeatConfig struct {
	ID        string
	Name      string
	Chips     int
	NewPolicy func(seed int64) game.DecisionMaker
}

// Config holds the simulation parameters
type Config struct {
	Seats      []SeatConfig
	Hands      int // hands per table
	Tables     int // tables run in parallel
	SmallBlind int
	BigBlind   int
	Seed       int64
	Rebuy      bool // top stacks back up before every hand
	Logger     *log.Logger
}

// handUpdater is implemented by policies that adjust themselves between
// hands, like trait drift.
type handUpdater interface {
	UpdateAfterHand(won bool)
}

// Simulator runs the configured simulation
type Simulator struct {
	config Config
}

// New validates the configuration and builds a simulator
func New(config Config) (*Simulator, error) {
	if len(config.Seats) < 2 {
		return nil, fmt.Errorf("simulation needs at least 2 seats, got %d", len(config.Seats))
	}
	for i, seat := range config.Seats {
		if seat.NewPolicy == nil {
			return nil, fmt.Errorf("seat %d has no policy", i)
		}
		if seat.Chips <= 0 {
			return nil, fmt.Errorf("seat %d has no chips", i)
		}
	}
	if config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", config.Hands)
	}
	if config.Tables <= 0 {
		config.Tables = 1
	}
	if config.BigBlind <= 0 || config.SmallBlind <= 0 {
		return nil, fmt.Errorf("invalid blinds %d/%d", config.SmallBlind, config.BigBlind)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}, nil
}

// Run plays the configured hands on every table and merges the results.
// The context cancels in-flight tables between hands.
func (s *Simulator) Run(ctx context.Context) (*statistics.Report, error) {
	reports := make([]*statistics.Report, s.config.Tables)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.config.Tables; i++ {
		g.Go(func() error {
			report, err := s.runTable(ctx, i)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.NewReport()
	for _, report := range reports {
		merged.Merge(report)
	}
	for _, id := range merged.PlayerIDs() {
		if err := merged.Players[id].Validate(); err != nil {
			return nil, fmt.Errorf("statistics for %s: %w", id, err)
		}
	}
	return merged, nil
}

// runTable plays up to the configured number of hands on one table
func (s *Simulator) runTable(ctx context.Context, tableIdx int) (*statistics.Report, error) {
	tableSeed := randutil.Derive(s.config.Seed, tableIdx)

	table := game.NewTable(s.config.SmallBlind, s.config.BigBlind,
		game.WithTableSeed(tableSeed),
		game.WithLogger(s.config.Logger),
	)

	policies := make(map[string]game.DecisionMaker, len(s.config.Seats))
	for i, seat := range s.config.Seats {
		policy := seat.NewPolicy(randutil.Derive(tableSeed, i+1))
		policies[seat.ID] = policy
		if err := table.AddPlayer(seat.ID, seat.Name, seat.Chips, policy); err != nil {
			return nil, err
		}
	}

	report := statistics.NewReport()

	for hand := 0; hand < s.config.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.config.Rebuy {
			for i, seat := range table.Seats() {
				seat.Chips = s.config.Seats[i].Chips
			}
		}

		before := make(map[string]int, len(table.Seats()))
		for _, seat := range table.Seats() {
			before[seat.ID] = seat.Chips
		}

		hist, err := table.PlayHand()
		if err == game.ErrNotEnoughPlayers {
			s.config.Logger.Info("table finished early",
				"table", tableIdx, "hands", hand)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", hand, err)
		}

		s.record(report, table, hist, before)

		winners := make(map[string]bool)
		for _, seat := range hist.Winners {
			winners[hist.PlayerIDs[seat]] = true
		}
		for id, policy := range policies {
			if updater, ok := policy.(handUpdater); ok {
				if _, played := hist.Stacks[id]; played {
					updater.UpdateAfterHand(winners[id])
				}
			}
		}
	}

	return report, nil
}

// record translates one hand history into per-player results
func (s *Simulator) record(report *statistics.Report, table *game.Table, hist *game.HandHistory, before map[string]int) {
	bb := float64(s.config.BigBlind)

	winners := make(map[int]bool)
	for _, seat := range hist.Winners {
		winners[seat] = true
	}

	for seat, id := range hist.PlayerIDs {
		report.Add(statistics.HandResult{
			PlayerID:       id,
			NetBB:          float64(hist.Stacks[id]-before[id]) / bb,
			Seat:           relativeSeat(seat, hist.Button, len(hist.PlayerIDs)),
			WentToShowdown: hist.Showdown,
			Won:            winners[seat],
			PotBB:          float64(hist.Pot) / bb,
		})
	}
}

// relativeSeat normalises a hand seat to its distance from the button so
// positional results aggregate across hands.
func relativeSeat(seat, button, n int) int {
	return ((seat-button)%n + n) % n
}
