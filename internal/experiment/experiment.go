// Package experiment drives the single-game simulator across door counts and
// strategies and pairs each empirical win rate with its closed-form value.
package experiment

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/nvandessel/montyhall/internal/constants"
	"github.com/nvandessel/montyhall/internal/game"
	"github.com/nvandessel/montyhall/internal/logging"
)

// Params are the fixed simulation parameters of a run.
type Params struct {
	// MaxDoors is the largest door count simulated. Door counts run from
	// constants.MinDoors to MaxDoors inclusive.
	MaxDoors int

	// ThreeDoorTrials is the number of games played for the three-door case.
	ThreeDoorTrials int

	// OtherTrials is the number of games played for every other door count.
	OtherTrials int
}

// DefaultParams returns the standard study: 3 to 30 doors, 10000 games for
// three doors and 1000 for the rest.
func DefaultParams() Params {
	return Params{
		MaxDoors:        constants.DefaultMaxDoors,
		ThreeDoorTrials: constants.DefaultThreeDoorTrials,
		OtherTrials:     constants.DefaultOtherTrials,
	}
}

// TrialsFor returns how many games to play with the given door count.
func (p Params) TrialsFor(doors int) int {
	if doors == constants.HeadlineDoors {
		return p.ThreeDoorTrials
	}
	return p.OtherTrials
}

// RowCount returns the number of rows a run emits.
func (p Params) RowCount() int {
	if p.MaxDoors < constants.MinDoors {
		return 0
	}
	return len(game.Strategies()) * (p.MaxDoors - constants.MinDoors + 1)
}

// Theoretical returns the closed-form win probability: (n-1)/n when
// switching and 1/n when staying.
func Theoretical(s game.Strategy, doors int) float64 {
	n := float64(doors)
	if s == game.Switch {
		return (n - 1) / n
	}
	return 1 / n
}

// Row is one line of the results table.
type Row struct {
	Doors        int           `json:"doors"`
	Strategy     game.Strategy `json:"strategy"`
	Theoretical  float64       `json:"theoretical"`
	Experimental float64       `json:"experimental"`
}

// RowWriter receives rows as they are produced.
type RowWriter interface {
	WriteRow(row Row) error
}

// Observer is called after every simulated game.
type Observer func(doors int, s game.Strategy, r *game.Round)

// PlayGames plays games rounds with the given strategy and door count and
// returns the fraction won. It returns 0 when games is not positive.
// observe may be nil.
func PlayGames(rng *rand.Rand, s game.Strategy, games, doors int, observe Observer) float64 {
	if games <= 0 {
		return 0
	}

	wins := 0
	for i := 0; i < games; i++ {
		r := game.PlayRound(rng, s, doors)
		if observe != nil {
			observe(doors, s, r)
		}
		if r.Won() {
			wins++
		}
	}
	return float64(wins) / float64(games)
}

// Summary describes a completed run.
type Summary struct {
	Rows    []Row         `json:"rows"`
	Games   int           `json:"games"`
	Elapsed time.Duration `json:"elapsed"`
}

// Runner executes the full study sequentially on a single random source.
type Runner struct {
	rng    *rand.Rand
	params Params
	logger *slog.Logger
	trace  *logging.TraceLogger
}

// NewRunner creates a runner. logger and trace may be nil.
func NewRunner(rng *rand.Rand, params Params, logger *slog.Logger, trace *logging.TraceLogger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		rng:    rng,
		params: params,
		logger: logger,
		trace:  trace,
	}
}

// Run plays every (strategy, door count) combination and hands each row to
// w: all switch rows in ascending door order, then all stay rows. It stops
// at the first write error. The returned summary covers the rows written.
func (r *Runner) Run(w RowWriter) (*Summary, error) {
	start := time.Now()
	summary := &Summary{Rows: make([]Row, 0, r.params.RowCount())}

	var observe Observer
	if r.trace != nil {
		observe = r.traceRound
	}

	for _, s := range game.Strategies() {
		for doors := constants.MinDoors; doors <= r.params.MaxDoors; doors++ {
			games := r.params.TrialsFor(doors)
			row := Row{
				Doors:        doors,
				Strategy:     s,
				Theoretical:  Theoretical(s, doors),
				Experimental: PlayGames(r.rng, s, games, doors, observe),
			}

			if err := w.WriteRow(row); err != nil {
				summary.Elapsed = time.Since(start)
				return summary, fmt.Errorf("writing row doors=%d strategy=%s: %w", doors, s, err)
			}

			summary.Rows = append(summary.Rows, row)
			summary.Games += games
			r.logger.Debug("row written",
				"doors", doors,
				"strategy", s.String(),
				"games", games,
				"theoretical", row.Theoretical,
				"experimental", row.Experimental)
		}
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

func (r *Runner) traceRound(doors int, s game.Strategy, round *game.Round) {
	r.trace.Log(map[string]any{
		"doors":    doors,
		"strategy": s.String(),
		"prize":    round.Prize,
		"pick":     round.Pick,
		"kept":     round.Kept,
		"final":    round.Final,
		"won":      round.Won(),
	})
}
