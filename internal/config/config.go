// Package config loads simulation configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem/internal/policy"
)

// SimConfig is the top-level simulation configuration
type SimConfig struct {
	Table TableConfig  `hcl:"table,block"`
	Seats []SeatConfig `hcl:"seat,block"`
}

// TableConfig sets the stakes and run length
type TableConfig struct {
	SmallBlind int   `hcl:"small_blind,optional"`
	BigBlind   int   `hcl:"big_blind,optional"`
	Hands      int   `hcl:"hands,optional"`
	Tables     int   `hcl:"tables,optional"`
	Seed       int64 `hcl:"seed,optional"`
	Rebuy      bool  `hcl:"rebuy,optional"`
}

// SeatConfig describes one seated player
type SeatConfig struct {
	Name        string `hcl:"name,label"`
	Chips       int    `hcl:"chips,optional"`
	Personality string `hcl:"personality,optional"`
	Skill       string `hcl:"skill,optional"`
	Drift       bool   `hcl:"drift,optional"`
}

// Default returns the configuration used when no file is given: a 6-max
// table with one of each personality at mixed skill levels.
func Default() *SimConfig {
	return &SimConfig{
		Table: TableConfig{
			SmallBlind: 5,
			BigBlind:   10,
			Hands:      1000,
			Tables:     1,
			Rebuy:      true,
		},
		Seats: []SeatConfig{
			{Name: "alice", Chips: 1000, Personality: "tight", Skill: "expert"},
			{Name: "bob", Chips: 1000, Personality: "aggressive", Skill: "advanced"},
			{Name: "carol", Chips: 1000, Personality: "balanced", Skill: "intermediate"},
			{Name: "dave", Chips: 1000, Personality: "loose", Skill: "amateur"},
			{Name: "erin", Chips: 1000, Personality: "maniac", Skill: "rookie"},
			{Name: "frank", Chips: 1000, Personality: "conservative", Skill: "intermediate"},
		},
	}
}

// Load reads and validates an HCL configuration file. A missing filename
// returns the defaults.
func Load(filename string) (*SimConfig, error) {
	if filename == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(filename, src)
}

// Parse decodes HCL source, applies defaults and validates
func Parse(filename string, src []byte) (*SimConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var cfg SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *SimConfig) applyDefaults() {
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = 5
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = c.Table.SmallBlind * 2
	}
	if c.Table.Hands == 0 {
		c.Table.Hands = 1000
	}
	if c.Table.Tables == 0 {
		c.Table.Tables = 1
	}
	for i := range c.Seats {
		if c.Seats[i].Chips == 0 {
			c.Seats[i].Chips = c.Table.BigBlind * 100
		}
		if c.Seats[i].Personality == "" {
			c.Seats[i].Personality = "balanced"
		}
		if c.Seats[i].Skill == "" {
			c.Seats[i].Skill = "intermediate"
		}
	}
}

// Validate checks stakes, seat count and that every personality and skill
// name resolves.
func (c *SimConfig) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.Table.SmallBlind)
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", c.Table.BigBlind, c.Table.SmallBlind)
	}
	if len(c.Seats) < 2 {
		return fmt.Errorf("at least two seats required, got %d", len(c.Seats))
	}
	seen := make(map[string]bool)
	for _, seat := range c.Seats {
		if seen[seat.Name] {
			return fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		seen[seat.Name] = true
		if seat.Chips <= 0 {
			return fmt.Errorf("seat %s: chips must be positive", seat.Name)
		}
		if _, err := policy.ParsePersonality(seat.Personality); err != nil {
			return fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		if _, err := policy.ParseSkillLevel(seat.Skill); err != nil {
			return fmt.Errorf("seat %s: %w", seat.Name, err)
		}
	}
	return nil
}

// Policy builds the decision policy configured for a seat
func (s SeatConfig) Policy(seed int64) (*policy.TraitPolicy, error) {
	pers, err := policy.ParsePersonality(s.Personality)
	if err != nil {
		return nil, err
	}
	skill, err := policy.ParseSkillLevel(s.Skill)
	if err != nil {
		return nil, err
	}
	opts := []policy.Option{policy.WithSeed(seed)}
	if s.Drift {
		opts = append(opts, policy.WithDrift())
	}
	return policy.New(pers, skill, opts...), nil
}
