package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/policy"
)

const sampleConfig = `
table {
  small_blind = 25
  big_blind   = 50
  hands       = 500
  tables      = 2
  seed        = 7
  rebuy       = true
}

seat "hero" {
  chips       = 10000
  personality = "tight"
  skill       = "expert"
}

seat "villain" {
  personality = "maniac"
  skill       = "rookie"
  drift       = true
}
`

func TestParse(t *testing.T) {
	cfg, err := Parse("test.hcl", []byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Table.SmallBlind)
	assert.Equal(t, 50, cfg.Table.BigBlind)
	assert.Equal(t, 500, cfg.Table.Hands)
	assert.Equal(t, 2, cfg.Table.Tables)
	assert.Equal(t, int64(7), cfg.Table.Seed)

	require.Len(t, cfg.Seats, 2)
	assert.Equal(t, "hero", cfg.Seats[0].Name)
	assert.Equal(t, 10000, cfg.Seats[0].Chips)
	assert.Equal(t, 5000, cfg.Seats[1].Chips, "default is 100 big blinds")
	assert.True(t, cfg.Seats[1].Drift)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse("test.hcl", []byte(`
table {
  small_blind = 10
}
seat "a" {}
seat "b" {}
`))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Table.BigBlind, "big blind defaults to twice the small")
	assert.Equal(t, 1000, cfg.Table.Hands)
	assert.Equal(t, 1, cfg.Table.Tables)
	assert.Equal(t, "balanced", cfg.Seats[0].Personality)
	assert.Equal(t, "intermediate", cfg.Seats[0].Skill)
	assert.Equal(t, 2000, cfg.Seats[0].Chips)
}

func TestParseRejectsUnknownPersonality(t *testing.T) {
	_, err := Parse("test.hcl", []byte(`
table {}
seat "a" { personality = "gto-wizard" }
seat "b" {}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gto-wizard")
}

func TestParseRejectsUnknownSkill(t *testing.T) {
	_, err := Parse("test.hcl", []byte(`
table {}
seat "a" { skill = "grandmaster" }
seat "b" {}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grandmaster")
}

func TestParseRejectsDuplicateSeats(t *testing.T) {
	_, err := Parse("test.hcl", []byte(`
table {}
seat "a" {}
seat "a" {}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParseRejectsSingleSeat(t *testing.T) {
	_, err := Parse("test.hcl", []byte(`
table {}
seat "a" {}
`))
	assert.Error(t, err)
}

func TestParseInvalidHCL(t *testing.T) {
	_, err := Parse("test.hcl", []byte(`table { small_blind = `))
	assert.Error(t, err)
}

func TestLoadMissingFilenameUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Seats, 6)
	require.NoError(t, cfg.Validate())
}

func TestLoadNonexistentFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestSeatPolicy(t *testing.T) {
	cfg, err := Parse("test.hcl", []byte(sampleConfig))
	require.NoError(t, err)

	p, err := cfg.Seats[0].Policy(1)
	require.NoError(t, err)
	assert.Equal(t, policy.Tight.Profile(), p.Profile(), "expert plays the preset exactly")

	_, err = SeatConfig{Personality: "nope", Skill: "expert"}.Policy(1)
	assert.Error(t, err)
}
