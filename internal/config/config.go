// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, optional YAML file, then environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SchedulePath points at the season schedule JSON.
	SchedulePath string `koanf:"schedule_path"`

	// BoxscoreDir holds per-game boxscore JSON files named <game id>.json.
	// Optional; schedules may embed statistics inline.
	BoxscoreDir string `koanf:"boxscore_dir"`

	// CheckpointPath, when set, is where the final simulation state is written.
	CheckpointPath string `koanf:"checkpoint_path"`

	// ParseWorkers bounds the boxscore parse pool.
	ParseWorkers int `koanf:"parse_workers"`

	// TopK is the leaderboard size the staking simulation bets on.
	TopK int `koanf:"top_k"`

	// Odds is the fixed decimal odds applied to every stake.
	Odds float64 `koanf:"odds"`

	// BaseStake is the stake a player starts from and resets to on a win.
	BaseStake float64 `koanf:"base_stake"`

	// BaseRating seeds every unseen team and player.
	BaseRating float64 `koanf:"base_rating"`

	// Team rating weights.
	TeamGoalWeight float64 `koanf:"team_goal_weight"`
	WinBonus       float64 `koanf:"win_bonus"`
	LossPenalty    float64 `koanf:"loss_penalty"`

	// Player rating weights.
	PlayerGoalWeight   float64 `koanf:"player_goal_weight"`
	PlayerAssistWeight float64 `koanf:"player_assist_weight"`

	// ResetOnReentry resets a dormant player's stake to BaseStake when the
	// player re-enters the top-K.
	ResetOnReentry bool `koanf:"reset_on_reentry"`

	// MaxLeaderboardLimit caps GET /api/ratings/players?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`
}

// New returns a Config populated with defaults matching the historical
// deployment: 1500 baseline, 10/+10/-10 team weights, 20/10 player weights,
// odds 2.5 and a unit base stake.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		SchedulePath:        "testdata/schedule.json",
		BoxscoreDir:         "",
		CheckpointPath:      "",
		ParseWorkers:        runtime.NumCPU(),
		TopK:                10,
		Odds:                2.5,
		BaseStake:           1,
		BaseRating:          1500,
		TeamGoalWeight:      10,
		WinBonus:            10,
		LossPenalty:         -10,
		PlayerGoalWeight:    20,
		PlayerAssistWeight:  10,
		ResetOnReentry:      true,
		MaxLeaderboardLimit: 100,
	}
}
