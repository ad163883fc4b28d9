package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handsim/internal/hand"
	"github.com/lox/handsim/internal/randutil"
	"github.com/lox/handsim/internal/statistics"
)

// DefaultHands is the size of the reference run
const DefaultHands = 100000

// checkEvery is how many hands a worker deals between cancellation checks
const checkEvery = 1024

// ErrTimeout is returned when a run exceeds Config.Timeout
var ErrTimeout = errors.New("simulation timed out")

// Config holds configuration for running simulations
type Config struct {
	Hands       int
	Workers     int // 0 uses runtime.NumCPU, capped at 8
	Seed        int64
	Denominator int // 0 divides by Hands
	Resolver    hand.Resolver
	Timeout     time.Duration // 0 disables the timeout
	Logger      *log.Logger
	Clock       quartz.Clock
}

// Result is the outcome of a simulation run
type Result struct {
	Tally         statistics.Tally
	Probabilities map[hand.Category]float64
	Denominator   int
	Resolver      hand.Resolver
	Seed          int64
	Workers       int
	Elapsed       time.Duration
}

// Simulator deals and classifies random hands
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	return &Simulator{config: config}
}

// Validate checks the configuration before a run
func (c Config) Validate() error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}
	if c.Denominator < 0 {
		return fmt.Errorf("denominator must not be negative, got %d", c.Denominator)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}

// Run deals Config.Hands hands across the configured workers and returns the
// merged category tally with its probability table.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, cfg.Timeout, ErrTimeout)
		defer cancel()
	}

	workers := min(cfg.Workers, cfg.Hands)
	perWorker := cfg.Hands / workers
	remainder := cfg.Hands % workers

	cfg.Logger.Debug("Starting simulation",
		"hands", cfg.Hands,
		"workers", workers,
		"seed", cfg.Seed,
		"resolver", cfg.Resolver)

	start := cfg.Clock.Now()
	tallies := make([]statistics.Tally, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder hands
		}
		g.Go(func() error {
			return s.work(gctx, w, n, &tallies[w])
		})
	}

	if err := g.Wait(); err != nil {
		if cause := context.Cause(ctx); errors.Is(cause, ErrTimeout) {
			return nil, fmt.Errorf("%w after %v", ErrTimeout, cfg.Timeout)
		}
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}

	var total statistics.Tally
	for _, t := range tallies {
		total.Merge(t)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	denominator := cfg.Denominator
	if denominator == 0 {
		denominator = total.Hands
	} else if denominator != total.Hands {
		cfg.Logger.Warn("Denominator differs from hands dealt; probabilities will not sum to 1",
			"denominator", denominator, "hands", total.Hands)
	}

	elapsed := cfg.Clock.Since(start)
	cfg.Logger.Info("Simulation complete", "hands", total.Hands, "elapsed", elapsed)

	return &Result{
		Tally:         total,
		Probabilities: total.Probabilities(denominator),
		Denominator:   denominator,
		Resolver:      cfg.Resolver,
		Seed:          cfg.Seed,
		Workers:       workers,
		Elapsed:       elapsed,
	}, nil
}

// work deals n hands on its own random stream into tally
func (s *Simulator) work(ctx context.Context, worker, n int, tally *statistics.Tally) error {
	rng := randutil.Stream(s.config.Seed, worker)
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		tally.Add(s.config.Resolver.Resolve(hand.Deal(rng)))
	}
	s.config.Logger.Debug("Worker finished", "worker", worker, "hands", n)
	return nil
}

// Sum returns the total of all probabilities in the result
func (r *Result) Sum() float64 {
	sum := 0.0
	for _, p := range r.Probabilities {
		sum += p
	}
	return sum
}
