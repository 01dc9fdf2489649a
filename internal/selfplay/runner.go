package selfplay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/persistence"
)

// Options configures one batch of self-play battles.
type Options struct {
	Battles  int
	BaseSeed uint64
	Format   string
	MaxTurns int
	Progress bool
	LogDir   string // when set, each battle's log is written here as JSONL
	Logger   *zerolog.Logger
}

// Record summarizes a single finished battle.
type Record struct {
	Battle int           `json:"battle"`
	Seed   uint64        `json:"seed"`
	Result engine.Result `json:"result"`
	Turns  int           `json:"turns"`
}

// Summary aggregates a whole batch.
type Summary struct {
	Battles    int      `json:"battles"`
	P1Wins     int      `json:"p1_wins"`
	P2Wins     int      `json:"p2_wins"`
	Ties       int      `json:"ties"`
	TotalTurns int      `json:"total_turns"`
	Records    []Record `json:"records"`
}

// AvgTurns is the mean battle length of the batch.
func (s *Summary) AvgTurns() float64 {
	if s.Battles == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Battles)
}

// Runner plays two fixed rosters against each other repeatedly under
// random policies. Battle i uses seed BaseSeed+i, so a batch is as
// reproducible as a single battle.
type Runner struct {
	dex     *data.Dex
	rosters [2]*data.Roster
	opts    Options
}

func NewRunner(dex *data.Dex, rosters [2]*data.Roster, opts Options) *Runner {
	if opts.Battles <= 0 {
		opts.Battles = 1
	}
	return &Runner{dex: dex, rosters: rosters, opts: opts}
}

// Run plays the batch to completion.
func (r *Runner) Run() (*Summary, error) {
	summary := &Summary{Battles: r.opts.Battles}

	var bar *progressbar.ProgressBar
	if r.opts.Progress {
		bar = progressbar.Default(int64(r.opts.Battles), "simulating")
	}

	for i := 0; i < r.opts.Battles; i++ {
		seed := r.opts.BaseSeed + uint64(i)
		b, err := engine.NewBattle(r.dex, engine.Config{
			Seed:     seed,
			Format:   r.opts.Format,
			MaxTurns: r.opts.MaxTurns,
			Logger:   r.opts.Logger,
		}, r.rosters)
		if err != nil {
			return nil, fmt.Errorf("battle %d: %w", i+1, err)
		}
		b.ReplacementPicker = engine.RandomReplacementPicker(b.RNG)

		result := b.Run([2]engine.Policy{
			engine.NewRandomPolicy(seed*2 + 1),
			engine.NewRandomPolicy(seed*2 + 2),
		})

		switch result {
		case engine.ResultSideA:
			summary.P1Wins++
		case engine.ResultSideB:
			summary.P2Wins++
		default:
			summary.Ties++
		}
		summary.TotalTurns += b.Turn
		summary.Records = append(summary.Records, Record{Battle: i + 1, Seed: seed, Result: result, Turns: b.Turn})

		if r.opts.LogDir != "" {
			if err := r.writeLog(i+1, b.Log); err != nil {
				return nil, err
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return summary, nil
}

// writeLog stores one battle's log as battle_NNNN.jsonl under LogDir.
func (r *Runner) writeLog(battle int, log []engine.Entry) error {
	if err := os.MkdirAll(r.opts.LogDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(r.opts.LogDir, fmt.Sprintf("battle_%04d.jsonl", battle))
	store, err := persistence.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.AppendAll(log)
}
