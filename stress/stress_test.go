package stress

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTrial(t *testing.T) {
	tests := []struct {
		name          string
		ops, span     int
		insertPercent int
	}{
		{"dense duplicates", 1000, 8, 60},
		{"sparse", 1000, 1 << 20, 70},
		{"delete heavy", 1000, 32, 30},
		{"inserts only", 500, 100, 100},
		{"deletes only", 100, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				res, err := Trial(seed, tt.ops, tt.span, tt.insertPercent)
				require.NoError(t, err, "seed %d", seed)

				assert.Equal(t, seed, res.Seed)
				assert.Equal(t, tt.ops, res.Inserts+res.Deletes+res.Misses)
				assert.Equal(t, res.Inserts-res.Deletes, res.FinalSize)
			}
		})
	}
}

func TestTrial_Deterministic(t *testing.T) {
	a, err := Trial(42, 300, 16, 50)
	require.NoError(t, err)
	b, err := Trial(42, 300, 16, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"default", func(c *Config) {}, ""},
		{"trials", func(c *Config) { c.Trials = 0 }, "trials must be positive, got 0"},
		{"ops", func(c *Config) { c.Ops = -1 }, "ops must be positive, got -1"},
		{"span", func(c *Config) { c.Span = 0 }, "span must be positive, got 0"},
		{"insert percent", func(c *Config) { c.InsertPercent = 101 }, "insert percent must be within [0, 100], got 101"},
		{"workers", func(c *Config) { c.Workers = 0 }, "workers must be positive, got 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	log := zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.DebugLevel)

	cfg := Config{
		Trials:        10,
		Ops:           300,
		Span:          50,
		InsertPercent: 60,
		Workers:       3,
		Seed:          100,
	}
	results, err := Run(context.Background(), cfg, log)
	require.NoError(t, err)
	require.Len(t, results, cfg.Trials)

	for i, res := range results {
		assert.Equal(t, cfg.Seed+int64(i), res.Seed)
		assert.Equal(t, cfg.Ops, res.Inserts+res.Deletes+res.Misses)

		// every trial can be replayed on its own
		replay, err := Trial(res.Seed, cfg.Ops, cfg.Span, cfg.InsertPercent)
		require.NoError(t, err)
		assert.Equal(t, res, replay)
	}

	assert.Equal(t, cfg.Trials, strings.Count(buf.String(), `"message":"trial passed"`))
}

func TestRun_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, DefaultConfig(), zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	for _, res := range results {
		assert.Zero(t, res)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0

	results, err := Run(context.Background(), cfg, zerolog.Nop())
	assert.Nil(t, results)
	assert.EqualError(t, err, "invalid stress config: workers must be positive, got 0")
}
