package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/sync/errgroup"

	"github.com/aglyzov/go-cds/trieset"
)

const (
	kindInt    = "int"
	kindString = "string"
)

var kinds = []string{kindInt, kindString}

var (
	ErrConfig     = errors.New("bench: invalid config")
	ErrValidation = errors.New("bench: validation failed")
)

type config struct {
	Items   int
	Workers int
	Seed    uint64
	Kind    string
}

func (c config) validate() error {
	switch {
	case c.Items <= 0:
		return fmt.Errorf("%w: items must be positive, got %d", ErrConfig, c.Items)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrConfig, c.Workers)
	case c.Kind != kindInt && c.Kind != kindString:
		return fmt.Errorf("%w: unknown kind %q", ErrConfig, c.Kind)
	}

	return nil
}

type report struct {
	Kind     string
	Items    int
	Distinct int
	Count    int64
	Populate time.Duration
	Validate time.Duration
}

func (r report) String() string {
	return fmt.Sprintf(
		"kind=%s items=%d distinct=%d count=%d populate=%s validate=%s",
		r.Kind, r.Items, r.Distinct, r.Count, r.Populate, r.Validate,
	)
}

func bench(ctx context.Context, log *slog.Logger, cfg config) (report, error) {
	if err := cfg.validate(); err != nil {
		return report{}, err
	}

	switch cfg.Kind {
	case kindString:
		fake := gofakeit.New(int64(cfg.Seed))
		return benchKind(ctx, log, cfg, func() string { return fake.UUID() })
	default:
		rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))
		// a narrow range makes some duplicates likely
		span := 2 * cfg.Items
		return benchKind(ctx, log, cfg, func() int { return rnd.IntN(span) })
	}
}

// benchKind generates cfg.Items items plus as many probes, populates a set
// from cfg.Workers goroutines and checks it against a reference map.
func benchKind[T comparable](
	ctx context.Context,
	log *slog.Logger,
	cfg config,
	gen func() T,
) (report, error) {
	var (
		items  = make([]T, cfg.Items)
		probes = make([]T, cfg.Items)
		ref    = make(map[T]struct{}, cfg.Items)
		rep    = report{Kind: cfg.Kind, Items: cfg.Items}
	)

	for i := range items {
		items[i] = gen()
		ref[items[i]] = struct{}{}
	}
	for i := range probes {
		probes[i] = gen()
	}

	rep.Distinct = len(ref)

	log.Debug("generated", "kind", cfg.Kind, "items", len(items), "distinct", rep.Distinct)

	var (
		set   = trieset.New[T]()
		start = time.Now()
	)

	if err := populate(ctx, set, items, cfg.Workers); err != nil {
		return rep, err
	}

	rep.Populate = time.Since(start)
	log.Info("populated", "items", len(items), "workers", cfg.Workers, "elapsed", rep.Populate)

	start = time.Now()

	if err := check(set, items, probes, ref); err != nil {
		return rep, err
	}

	rep.Count = set.LongCount()
	rep.Validate = time.Since(start)
	log.Info("validated", "count", rep.Count, "probes", len(probes), "elapsed", rep.Validate)

	return rep, nil
}

// populate splits items into contiguous chunks, one per worker.
func populate[T any](ctx context.Context, set *trieset.Set[T], items []T, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(items) + workers - 1) / workers

	for from := 0; from < len(items); from += chunk {
		part := items[from:min(from+chunk, len(items))]

		g.Go(func() error {
			for i, item := range part {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				set.Add(item)
			}
			return nil
		})
	}

	return g.Wait()
}

func check[T comparable](set *trieset.Set[T], items, probes []T, ref map[T]struct{}) error {
	var (
		exp  = int64(len(ref))
		errs []error
	)

	if n := set.LongCount(); n != exp {
		errs = append(errs, fmt.Errorf("%w: count %d, want %d", ErrValidation, n, exp))
	}

	if n := set.SlowCount(); n != exp {
		errs = append(errs, fmt.Errorf("%w: slow count %d, want %d", ErrValidation, n, exp))
	}

	for _, item := range items {
		if !set.Contains(item) {
			errs = append(errs, fmt.Errorf("%w: missing item %v", ErrValidation, item))
			break
		}
	}

	for _, probe := range probes {
		_, want := ref[probe]
		if got := set.Contains(probe); got != want {
			errs = append(errs, fmt.Errorf("%w: contains(%v) = %t, want %t", ErrValidation, probe, got, want))
			break
		}
	}

	var seen int64
	for item := range set.All() {
		if _, ok := ref[item]; !ok {
			errs = append(errs, fmt.Errorf("%w: unexpected item %v", ErrValidation, item))
			break
		}
		seen++
	}

	if seen != exp {
		errs = append(errs, fmt.Errorf("%w: enumerated %d, want %d", ErrValidation, seen, exp))
	}

	return errors.Join(errs...)
}
