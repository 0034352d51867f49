// Package statistics accumulates per-player results over a simulation run.
// Everything is denominated in big blinds so runs with different stakes are
// comparable.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is one player's outcome for one hand
type HandResult struct {
	PlayerID       string
	NetBB          float64 // big blinds won or lost this hand
	Seat           int     // hand seat, button-relative ordering
	WentToShowdown bool
	Won            bool
	PotBB          float64 // final pot in big blinds
}

// SeatStats tracks results for one hand seat
type SeatStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics accumulates one player's results across hands
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	// Wins and win/loss amounts split by how the hand ended. The split
	// must always sum back to the total, see Validate.
	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64

	Seats map[int]*SeatStats

	MaxPotBB float64
	BigPots  int // pots of 50bb or more
}

// Add incorporates one hand result
func (s *Statistics) Add(result HandResult) {
	net := result.NetBB
	s.Hands++
	s.SumBB += net
	s.SumBB2 += net * net
	s.Values = append(s.Values, net)

	if result.Won {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += net
	} else {
		s.NonShowdownBB += net
	}

	if s.Seats == nil {
		s.Seats = make(map[int]*SeatStats)
	}
	seat := s.Seats[result.Seat]
	if seat == nil {
		seat = &SeatStats{}
		s.Seats[result.Seat] = seat
	}
	seat.Hands++
	seat.SumBB += net
	seat.SumBB2 += net * net

	if result.PotBB > s.MaxPotBB {
		s.MaxPotBB = result.PotBB
	}
	if result.PotBB >= 50 {
		s.BigPots++
	}
}

// Mean returns the average result in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of per-hand results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-hand result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at percentile p (0.0-1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the average result when playing a given hand seat
func (s *Statistics) SeatMean(seat int) float64 {
	ss := s.Seats[seat]
	if ss == nil || ss.Hands == 0 {
		return 0
	}
	return ss.SumBB / float64(ss.Hands)
}

// Wins returns total hands won, at showdown or by folds
func (s *Statistics) Wins() int {
	return s.ShowdownWins + s.NonShowdownWins
}

// Validate checks internal accounting consistency
func (s *Statistics) Validate() error {
	if math.Abs(s.SumBB-s.ShowdownBB-s.NonShowdownBB) > 1e-6 {
		return fmt.Errorf("ledger mismatch: total=%.6f showdown=%.6f non-showdown=%.6f",
			s.SumBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("value count %d does not match hand count %d", len(s.Values), s.Hands)
	}
	if s.Wins() > s.Hands {
		return fmt.Errorf("wins %d exceed hands %d", s.Wins(), s.Hands)
	}
	seatHands := 0
	for _, ss := range s.Seats {
		seatHands += ss.Hands
	}
	if seatHands != s.Hands {
		return fmt.Errorf("seat hands %d do not match total hands %d", seatHands, s.Hands)
	}
	return nil
}

// Report aggregates statistics per player across a run
type Report struct {
	Players map[string]*Statistics
	order   []string
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{Players: make(map[string]*Statistics)}
}

// Add records one player's result for one hand
func (r *Report) Add(result HandResult) {
	stats := r.Players[result.PlayerID]
	if stats == nil {
		stats = &Statistics{}
		r.Players[result.PlayerID] = stats
		r.order = append(r.order, result.PlayerID)
	}
	stats.Add(result)
}

// PlayerIDs returns the players in first-seen order
func (r *Report) PlayerIDs() []string {
	return append([]string(nil), r.order...)
}

// Merge folds another report into this one. Used to combine per-table
// reports from parallel simulations.
func (r *Report) Merge(other *Report) {
	for _, id := range other.PlayerIDs() {
		src := other.Players[id]
		dst := r.Players[id]
		if dst == nil {
			dst = &Statistics{}
			r.Players[id] = dst
			r.order = append(r.order, id)
		}
		dst.merge(src)
	}
}

func (s *Statistics) merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	if s.Seats == nil {
		s.Seats = make(map[int]*SeatStats)
	}
	for seat, ss := range other.Seats {
		dst := s.Seats[seat]
		if dst == nil {
			dst = &SeatStats{}
			s.Seats[seat] = dst
		}
		dst.Hands += ss.Hands
		dst.SumBB += ss.SumBB
		dst.SumBB2 += ss.SumBB2
	}
	if other.MaxPotBB > s.MaxPotBB {
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
}
