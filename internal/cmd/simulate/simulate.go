// Package simulate drives complete games through the session service as an
// operational smoke tool: many concurrent sessions, full playthroughs, and
// a score audit on every finished game.
package simulate

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"

	"github.com/isakal/briskula/internal/core/deck"
	"github.com/isakal/briskula/internal/game/domain"
	platformcmd "github.com/isakal/briskula/internal/platform/cmd"
	"github.com/isakal/briskula/internal/session"
	"github.com/isakal/briskula/internal/session/service"
)

// Config holds simulate command configuration.
type Config struct {
	// Games is the total number of games to play.
	Games int `env:"BRISKULA_SIMULATE_GAMES" envDefault:"20"`
	// Concurrency is the number of games played at the same time.
	Concurrency int `env:"BRISKULA_SIMULATE_CONCURRENCY" envDefault:"4"`
	// Verbose prints a line per finished game.
	Verbose bool `env:"BRISKULA_SIMULATE_VERBOSE" envDefault:"false"`
}

// ParseConfig loads env defaults and then parses flags, so flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Games, "games", cfg.Games, "total number of games to play")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "games played at the same time")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Games <= 0 {
		return Config{}, errors.New("games must be positive")
	}
	if cfg.Concurrency <= 0 {
		return Config{}, errors.New("concurrency must be positive")
	}
	return cfg, nil
}

// Run plays cfg.Games complete games, alternating two- and four-seat
// tables, and reports the aggregate. Any rules violation fails the run.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	svc := service.New(session.NewDirectory())

	indexes := make(chan int)
	errs := make([]error, cfg.Games)
	var mu sync.Mutex
	tricks := 0

	var wg sync.WaitGroup
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				seats := 2
				if i%2 == 1 {
					seats = 4
				}
				played, err := playGame(ctx, svc, fmt.Sprintf("g%d", i), seats)
				errs[i] = err
				if err == nil {
					mu.Lock()
					tricks += played
					mu.Unlock()
					if cfg.Verbose {
						fmt.Fprintf(out, "game %d done: %d seats, %d tricks\n", i, seats, played)
					}
				}
			}
		}()
	}

	for i := 0; i < cfg.Games; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(out, "game %d failed: %v\n", i, err)
		}
	}

	fmt.Fprintf(out, "played %d games (%d tricks), %d failed\n", cfg.Games, tricks, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d games failed", failed, cfg.Games)
	}
	return nil
}

// playGame runs one full game through the service surface and audits the
// final scores. It returns the number of tricks resolved.
func playGame(ctx context.Context, svc *service.Service, label string, seats int) (int, error) {
	created, err := svc.CreateSession(ctx, label+"-p0")
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	code := created.SessionID

	for p := 1; p < seats; p++ {
		if _, err := svc.Join(ctx, code, fmt.Sprintf("%s-p%d", label, p)); err != nil {
			return 0, fmt.Errorf("join seat %d: %w", p, err)
		}
	}
	if _, err := svc.Start(ctx, code); err != nil {
		return 0, fmt.Errorf("start: %w", err)
	}

	tricks := 0
	for {
		state, err := svc.GetFullState(ctx, code)
		if err != nil {
			return tricks, fmt.Errorf("get state: %w", err)
		}

		result, err := svc.PlayCard(ctx, code, state.CurrentPlayer, state.Hands[state.CurrentPlayer][0])
		if err != nil {
			return tricks, fmt.Errorf("play card: %w", err)
		}
		if result.Outcome != domain.PlayTrickComplete {
			continue
		}

		outcome, err := svc.ResolveTrick(ctx, code)
		if err != nil {
			return tricks, fmt.Errorf("resolve trick: %w", err)
		}
		tricks++
		if outcome == domain.ResolveGameComplete {
			break
		}
	}

	scores, err := svc.Finalize(ctx, code)
	if err != nil {
		return tricks, fmt.Errorf("finalize: %w", err)
	}
	total := 0
	for _, points := range scores {
		total += points
	}
	if total != deck.TotalPoints {
		return tricks, fmt.Errorf("scores total %d, want %d", total, deck.TotalPoints)
	}
	return tricks, nil
}
