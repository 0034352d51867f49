// Package policy provides decision makers for automated players. The trait
// policy models a personality through four 0-100 traits and a skill level
// that controls how consistently the traits are applied.
package policy

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
)

// Personality names a preset trait profile
type Personality int

const (
	Balanced Personality = iota
	Conservative
	Aggressive
	Loose
	Maniac
	Tight
)

var personalityNames = map[Personality]string{
	Balanced:     "balanced",
	Conservative: "conservative",
	Aggressive:   "aggressive",
	Loose:        "loose",
	Maniac:       "maniac",
	Tight:        "tight",
}

func (p Personality) String() string {
	if name, ok := personalityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("personality(%d)", int(p))
}

// ParsePersonality resolves a personality by name, case-insensitively
func ParsePersonality(s string) (Personality, error) {
	for p, name := range personalityNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown personality %q", s)
}

// SkillLevel controls how much random variance is applied to a profile.
// Lower skill plays the personality less consistently.
type SkillLevel int

const (
	Rookie SkillLevel = iota
	Amateur
	Intermediate
	Advanced
	Expert
)

var skillNames = map[SkillLevel]string{
	Rookie:       "rookie",
	Amateur:      "amateur",
	Intermediate: "intermediate",
	Advanced:     "advanced",
	Expert:       "expert",
}

func (s SkillLevel) String() string {
	if name, ok := skillNames[s]; ok {
		return name
	}
	return fmt.Sprintf("skill(%d)", int(s))
}

// ParseSkillLevel resolves a skill level by name, case-insensitively
func ParseSkillLevel(s string) (SkillLevel, error) {
	for level, name := range skillNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown skill level %q", s)
}

// Profile is a set of behavioural traits on a 0-100 scale
type Profile struct {
	Aggression    int // how often to bet and raise
	BluffTendency int // how often to represent a hand it doesn't have
	CallThreshold int // reluctance to call without a strong hand
	FoldThreshold int // strength below which a bet forces a fold
}

// Profile returns the preset traits for a personality
func (p Personality) Profile() Profile {
	switch p {
	case Conservative:
		return Profile{Aggression: 20, BluffTendency: 15, CallThreshold: 75, FoldThreshold: 40}
	case Aggressive:
		return Profile{Aggression: 80, BluffTendency: 60, CallThreshold: 30, FoldThreshold: 20}
	case Loose:
		return Profile{Aggression: 60, BluffTendency: 50, CallThreshold: 25, FoldThreshold: 15}
	case Maniac:
		return Profile{Aggression: 90, BluffTendency: 80, CallThreshold: 20, FoldThreshold: 10}
	case Tight:
		return Profile{Aggression: 30, BluffTendency: 20, CallThreshold: 70, FoldThreshold: 50}
	default:
		return Profile{Aggression: 50, BluffTendency: 40, CallThreshold: 50, FoldThreshold: 30}
	}
}

// variance returns the per-trait variance applied at this skill level:
// the general trait variance and the wider bluff variance.
func (s SkillLevel) variance() (trait, bluff int) {
	switch s {
	case Rookie:
		return 30, 40
	case Amateur:
		return 20, 25
	case Intermediate:
		return 10, 15
	case Advanced:
		return 5, 10
	default:
		return 0, 0
	}
}

// randomized returns the profile with each trait perturbed within the
// skill level's variance. Expert profiles come back unchanged.
func (p Profile) randomized(skill SkillLevel, rng *rand.Rand) Profile {
	trait, bluff := skill.variance()
	if trait == 0 && bluff == 0 {
		return p
	}
	return Profile{
		Aggression:    perturb(p.Aggression, trait, rng),
		BluffTendency: perturb(p.BluffTendency, bluff, rng),
		CallThreshold: perturb(p.CallThreshold, trait, rng),
		FoldThreshold: perturb(p.FoldThreshold, trait, rng),
	}
}

// perturb picks a uniform value within variance of base, clamped to 0-100
func perturb(base, variance int, rng *rand.Rand) int {
	lo := base - variance
	if lo < 0 {
		lo = 0
	}
	hi := base + variance
	if hi > 100 {
		hi = 100
	}
	return lo + rng.IntN(hi-lo+1)
}
