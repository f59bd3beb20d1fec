// Package stress checks the AVL tree against a plain sorted slice
// under long random sequences of inserts and deletes. Many trials
// run in parallel; each tree stays inside the goroutine that owns it.
package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"go.lepak.sg/avltree/tree/avl"
)

// Config controls a stress run.
type Config struct {
	// Trials is the number of independent trees to exercise.
	Trials int
	// Ops is the number of inserts and deletes applied to each tree.
	Ops int
	// Span bounds the values used: [0, Span). A small span means
	// many duplicates and many deletes that hit.
	Span int
	// InsertPercent is the chance, in percent, that an operation is
	// an insert rather than a delete.
	InsertPercent int
	// Workers is the maximum number of trials running at once.
	Workers int
	// Seed for trial i is Seed+i, so any failure can be replayed
	// alone with Trial.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Trials:        32,
		Ops:           2000,
		Span:          256,
		InsertPercent: 55,
		Workers:       4,
		Seed:          1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Trials <= 0:
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	case c.Ops <= 0:
		return fmt.Errorf("ops must be positive, got %d", c.Ops)
	case c.Span <= 0:
		return fmt.Errorf("span must be positive, got %d", c.Span)
	case c.InsertPercent < 0 || c.InsertPercent > 100:
		return fmt.Errorf("insert percent must be within [0, 100], got %d", c.InsertPercent)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Result summarises one trial.
type Result struct {
	Seed      int64
	Inserts   int
	Deletes   int // deletes that removed a value
	Misses    int // deletes of absent values
	FinalSize int
	MaxHeight int // tallest the tree got during the trial
}

// ErrMismatch is wrapped by every error reporting a difference
// between the tree and the reference slice.
var ErrMismatch = errors.New("tree disagrees with reference")

// Trial applies ops random operations to a fresh tree and, after each
// one, checks the tree invariants and compares it with a sorted slice
// holding the same values.
func Trial(seed int64, ops, span, insertPercent int) (Result, error) {
	rd := rand.New(rand.NewSource(seed))
	res := Result{Seed: seed}

	tr := avl.NewOrdered[int]()
	ref := []int{}

	for i := 0; i < ops; i++ {
		v := rd.Intn(span)
		var op string

		if rd.Intn(100) < insertPercent {
			op = "insert"
			tr.Insert(v)
			ref = append(ref, v)
			slices.Sort(ref)
			res.Inserts++
		} else {
			op = "delete"
			idx := slices.Index(ref, v)
			removed := tr.Delete(v)
			if removed != (idx >= 0) {
				return res, fmt.Errorf("op %d: %s %d: removed=%t but present=%t: %w",
					i, op, v, removed, idx >= 0, ErrMismatch)
			}
			if removed {
				ref = slices.Delete(ref, idx, idx+1)
				res.Deletes++
			} else {
				res.Misses++
			}
		}

		if err := tr.Validate(); err != nil {
			return res, fmt.Errorf("op %d: %s %d: %w", i, op, v, err)
		}
		if tr.Size() != len(ref) {
			return res, fmt.Errorf("op %d: %s %d: size %d, expected %d: %w",
				i, op, v, tr.Size(), len(ref), ErrMismatch)
		}
		if !slices.Equal(tr.Values(), ref) {
			return res, fmt.Errorf("op %d: %s %d: in-order values differ: %w", i, op, v, ErrMismatch)
		}
		if tr.Contains(v) != slices.Contains(ref, v) {
			return res, fmt.Errorf("op %d: %s %d: lookup disagrees: %w", i, op, v, ErrMismatch)
		}
		if h := tr.Height(); h > avl.MaxHeight(tr.Size()) {
			return res, fmt.Errorf("op %d: %s %d: height %d exceeds AVL bound %d for %d nodes",
				i, op, v, h, avl.MaxHeight(tr.Size()), tr.Size())
		} else if h > res.MaxHeight {
			res.MaxHeight = h
		}
	}

	res.FinalSize = tr.Size()
	return res, nil
}

// Run executes cfg.Trials trials with at most cfg.Workers in flight.
// Once a trial fails no further trials are started, and the error of
// the first failure is returned after the running ones finish.
//
// Context cancellation: if ctx is canceled, Run stops starting new
// trials, waits for the running ones to exit, then returns the
// context error. Results of trials that did not run are zero.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stress config: %w", err)
	}

	results := make([]Result, cfg.Trials)
	sema := semaphore.NewWeighted(int64(cfg.Workers))
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < cfg.Trials; i++ {
		// Acquire does not look at the context while there is room
		if gctx.Err() != nil {
			break
		}
		if err := sema.Acquire(gctx, 1); err != nil {
			// a trial failed or ctx was canceled
			break
		}

		i := i
		g.Go(func() error {
			defer sema.Release(1)

			seed := cfg.Seed + int64(i)
			res, err := Trial(seed, cfg.Ops, cfg.Span, cfg.InsertPercent)
			results[i] = res
			if err != nil {
				log.Error().Err(err).Int("trial", i).Int64("seed", seed).Msg("trial failed")
				return fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
			}

			log.Debug().
				Int("trial", i).
				Int64("seed", seed).
				Int("inserts", res.Inserts).
				Int("deletes", res.Deletes).
				Int("misses", res.Misses).
				Int("size", res.FinalSize).
				Int("max_height", res.MaxHeight).
				Msg("trial passed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
