package simulator

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handsim/internal/hand"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{Hands: 5000, Workers: 3, Seed: 42, Logger: testLogger(), Clock: quartz.NewMock(t)}

	first, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	second, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Tally, second.Tally)
	assert.Equal(t, first.Probabilities, second.Probabilities)
	assert.Equal(t, 5000, first.Tally.Hands)
	assert.Equal(t, 3, first.Workers)
}

func TestRunSingleWorker(t *testing.T) {
	res, err := New(Config{Hands: 1000, Workers: 1, Seed: 7, Logger: testLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000, res.Tally.Hands)
	assert.Equal(t, 1000, res.Denominator)
	assert.InDelta(t, 1.0, res.Sum(), 1e-9)
}

func TestRunMoreWorkersThanHands(t *testing.T) {
	res, err := New(Config{Hands: 3, Workers: 8, Seed: 1, Logger: testLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Tally.Hands)
	assert.Equal(t, 3, res.Workers)
}

func TestRunReferenceDenominator(t *testing.T) {
	// 100,000 hands over 200,000, scaled down
	res, err := New(Config{
		Hands:       20000,
		Workers:     4,
		Seed:        99,
		Denominator: 40000,
		Logger:      testLogger(),
	}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40000, res.Denominator)
	assert.InDelta(t, 0.5, res.Sum(), 1e-9)
	for c, p := range res.Probabilities {
		assert.InDelta(t, float64(res.Tally.Count(c))/40000, p, 1e-12)
	}
}

func TestRunMatchesExactProbabilities(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large simulation in short mode")
	}

	for _, resolver := range []hand.Resolver{hand.ResolverStandard, hand.ResolverLegacy} {
		t.Run(resolver.String(), func(t *testing.T) {
			res, err := New(Config{
				Hands:    DefaultHands,
				Seed:     2024,
				Resolver: resolver,
				Logger:   testLogger(),
			}).Run(context.Background())
			require.NoError(t, err)

			for _, c := range hand.Categories() {
				expected := hand.ExactProbability(c, resolver)
				if expected == 0 {
					assert.Zero(t, res.Tally.Count(c), "%s", c)
					continue
				}
				if expected*DefaultHands < 10 {
					// too rare for a normal approximation
					assert.Less(t, res.Tally.Count(c), 10, "%s", c)
					continue
				}
				z := res.Tally.ZScore(c, expected)
				assert.Less(t, math.Abs(z), 5.0, "%s: observed %.6f expected %.6f",
					c, res.Tally.Frequency(c), expected)
			}
		})
	}
}

func TestRunUsesClock(t *testing.T) {
	mClock := quartz.NewMock(t)
	res, err := New(Config{Hands: 100, Workers: 2, Logger: testLogger(), Clock: mClock}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), res.Elapsed)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Hands: 10000, Workers: 2, Logger: testLogger()}).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunTimeout(t *testing.T) {
	_, err := New(Config{Hands: 10000, Workers: 2, Timeout: time.Nanosecond, Logger: testLogger()}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero hands", Config{Hands: 0}},
		{"negative denominator", Config{Hands: 10, Denominator: -1}},
		{"negative timeout", Config{Hands: 10, Timeout: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = testLogger()
			_, err := New(tt.cfg).Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{Hands: 1})
	assert.NotNil(t, s.config.Logger)
	assert.NotNil(t, s.config.Clock)
	assert.GreaterOrEqual(t, s.config.Workers, 1)
	assert.LessOrEqual(t, s.config.Workers, 8)
}
