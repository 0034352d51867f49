package policy

import (
	"context"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
)

const equitySamples = 400

// TraitPolicy decides actions from a personality profile and skill level.
// It implements game.DecisionMaker. Not safe for concurrent use; give each
// seat its own policy.
type TraitPolicy struct {
	personality Personality
	skill       SkillLevel
	base        Profile
	profile     Profile
	rng         *rand.Rand
	logger      *log.Logger
	drift       bool
	handsPlayed int
}

// Option configures a TraitPolicy
type Option func(*TraitPolicy)

// WithSeed makes the policy's randomness deterministic
func WithSeed(seed int64) Option {
	return func(p *TraitPolicy) { p.rng = randutil.New(seed) }
}

// WithLogger supplies a logger for decision tracing
func WithLogger(logger *log.Logger) Option {
	return func(p *TraitPolicy) { p.logger = logger }
}

// WithDrift enables trait drift: winning nudges the profile toward
// aggression, losing away from it, with a periodic reshuffle.
func WithDrift() Option {
	return func(p *TraitPolicy) { p.drift = true }
}

// New builds a policy for a personality at a skill level. Skill levels
// below Expert perturb the profile so two policies with the same
// personality play noticeably differently.
func New(personality Personality, skill SkillLevel, opts ...Option) *TraitPolicy {
	p := &TraitPolicy{
		personality: personality,
		skill:       skill,
		base:        personality.Profile(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = randutil.New(rand.Int64())
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	p.profile = p.base.randomized(skill, p.rng)
	return p
}

// Profile returns the policy's current effective traits
func (p *TraitPolicy) Profile() Profile { return p.profile }

// Decide chooses an action from the valid set. The returned action is
// always one of valid, with any raise amount clamped to its bounds.
func (p *TraitPolicy) Decide(state game.TableState, valid []game.ValidAction) (game.Action, int) {
	if len(valid) == 0 {
		return game.Fold, 0
	}

	me := state.Players[state.Viewer]
	toCall := state.CurrentBet - me.Bet
	strength := p.strength(state, me)
	potOdds := potOdds(toCall, state.Pot)

	p.logger.Debug("deciding",
		"hand", state.HandID,
		"seat", state.Viewer,
		"street", state.Street.String(),
		"strength", strength,
		"pot_odds", potOdds,
		"to_call", toCall,
	)

	if toCall <= 0 {
		if strength > float64(p.profile.Aggression)/200 {
			if strength > 0.85 && p.profile.Aggression > 60 {
				if a, ok := find(valid, game.AllIn); ok {
					return game.AllIn, a.Min
				}
			}
			if raise, ok := find(valid, game.Raise); ok {
				extra := float64(p.profile.Aggression) / 100 * float64(state.MinRaise) * 2 * strength
				return game.Raise, clamp(raise.Min+int(extra), raise.Min, raise.Max)
			}
		}
		return game.Check, 0
	}

	if strength > potOdds || p.shouldBluff(state, me) {
		wantsRaise := strength > float64(p.profile.FoldThreshold)/100 ||
			p.rng.Float64() < float64(p.profile.Aggression)/150
		if wantsRaise &&
			(strength > 0.7 || p.rng.Float64() < float64(p.profile.Aggression)/200) {
			if strength > 0.85 && p.profile.Aggression > 60 {
				if a, ok := find(valid, game.AllIn); ok {
					return game.AllIn, a.Min
				}
			}
			if raise, ok := find(valid, game.Raise); ok {
				scale := 1.1 + strength*0.5 + p.rng.Float64()*0.2
				amount := state.CurrentBet + int(float64(state.MinRaise)*scale)
				return game.Raise, clamp(amount, raise.Min, raise.Max)
			}
		}
		return p.callOrShove(valid)
	}

	// Not priced in; occasionally peel anyway.
	if p.rng.Float64() < float64(p.profile.BluffTendency)/150 {
		return p.callOrShove(valid)
	}
	return game.Fold, 0
}

// strength estimates hand strength; Expert policies sample equity against
// the live opponent count instead of using heuristics.
func (p *TraitPolicy) strength(state game.TableState, me game.PlayerState) float64 {
	if p.skill == Expert {
		opponents := 0
		for _, other := range state.Players {
			if other.Seat != me.Seat && !other.Folded {
				opponents++
			}
		}
		if opponents > 0 && len(me.HoleCards) == 2 {
			res, err := evaluator.Equity(context.Background(), me.HoleCards, state.Board,
				opponents, equitySamples, p.rng.Int64())
			if err == nil {
				return res.Equity
			}
		}
	}
	return handStrength(me.HoleCards, state.Board)
}

// shouldBluff rolls against the bluff tendency, adjusted for street, field
// size and how much of the stack the bet represents.
func (p *TraitPolicy) shouldBluff(state game.TableState, me game.PlayerState) bool {
	chance := float64(p.profile.BluffTendency) / 100

	switch state.Street {
	case game.Preflop:
		chance *= 0.5
	case game.River:
		chance *= 1.5
	}

	inHand := 0
	for _, other := range state.Players {
		if !other.Folded {
			inHand++
		}
	}
	if inHand <= 2 {
		chance *= 1.5
	}

	if me.Chips > 0 {
		relative := float64(state.CurrentBet) / float64(me.Chips+me.Bet)
		if relative > 1 {
			relative = 1
		}
		chance *= 1 - relative*0.5
	}

	return p.rng.Float64() < chance
}

// callOrShove calls when possible, otherwise goes all-in. Facing a bet
// those are the only non-fold continuations.
func (p *TraitPolicy) callOrShove(valid []game.ValidAction) (game.Action, int) {
	if a, ok := find(valid, game.Call); ok {
		return game.Call, a.Min
	}
	if a, ok := find(valid, game.AllIn); ok {
		return game.AllIn, a.Min
	}
	return game.Fold, 0
}

// UpdateAfterHand applies trait drift when enabled: winners get bolder,
// losers tighten up, and every ten hands the profile is re-randomized
// from the base personality so it doesn't wander off indefinitely.
func (p *TraitPolicy) UpdateAfterHand(won bool) {
	p.handsPlayed++
	if !p.drift {
		return
	}

	if won {
		p.profile.Aggression = clamp(p.profile.Aggression+2, 0, 100)
		p.profile.BluffTendency = clamp(p.profile.BluffTendency+1, 0, 100)
	} else {
		p.profile.Aggression = clamp(p.profile.Aggression-1, 0, 100)
		p.profile.BluffTendency = clamp(p.profile.BluffTendency-2, 0, 100)
	}

	if p.handsPlayed%10 == 0 {
		p.profile = p.base.randomized(p.skill, p.rng)
	}
}

func potOdds(toCall, pot int) float64 {
	if toCall <= 0 {
		return 1
	}
	return float64(pot) / float64(pot+toCall)
}

func find(valid []game.ValidAction, a game.Action) (game.ValidAction, bool) {
	for _, va := range valid {
		if va.Action == a {
			return va, true
		}
	}
	return game.ValidAction{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
