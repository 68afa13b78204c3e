package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-cds/trieset"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBench(t *testing.T) {
	t.Parallel()

	for _, kind := range kinds {
		kind := kind

		t.Run(kind, func(t *testing.T) {
			t.Parallel()

			rep, err := bench(context.Background(), discard(), config{
				Items:   20_000,
				Workers: 8,
				Seed:    42,
				Kind:    kind,
			})
			require.NoError(t, err)

			assert.Equal(t, kind, rep.Kind)
			assert.Equal(t, 20_000, rep.Items)
			assert.Positive(t, rep.Distinct)
			assert.LessOrEqual(t, rep.Distinct, rep.Items)
			assert.Equal(t, int64(rep.Distinct), rep.Count)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Cfg config
		Err bool
	}{
		{config{Items: 1, Workers: 1, Kind: kindInt}, false},
		{config{Items: 1, Workers: 1, Kind: kindString}, false},
		{config{Items: 0, Workers: 1, Kind: kindInt}, true},
		{config{Items: 1, Workers: 0, Kind: kindInt}, true},
		{config{Items: 1, Workers: 1, Kind: "float"}, true},
	} {
		err := tcase.Cfg.validate()
		if tcase.Err {
			assert.ErrorIs(t, err, ErrConfig, "%+v", tcase.Cfg)
		} else {
			assert.NoError(t, err, "%+v", tcase.Cfg)
		}
	}
}

func TestCheck_DetectsMismatch(t *testing.T) {
	t.Parallel()

	var (
		set = trieset.New(1, 2, 3)
		ref = map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}}
	)

	err := check(set, []int{1, 2, 3, 4}, []int{4, 5}, ref)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "count 3, want 4")
	assert.Contains(t, err.Error(), "missing item 4")

	assert.NoError(t, check(set, []int{1, 2, 3}, []int{4, 5}, map[int]struct{}{1: {}, 2: {}, 3: {}}))
}

func TestPopulate_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := populate(ctx, trieset.New[int](), make([]int, 10), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"bench", "--items", "5000", "--workers", "4", "--kind", "string", "--log-level", "warn"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "kind=string items=5000")

	stdout.Reset()
	stderr.Reset()

	code = run([]string{"bench", "--kind", "float"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `unknown kind "float"`)

	stderr.Reset()

	code = run([]string{"bench", "--log-level", "loud"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid --log-level")
}
