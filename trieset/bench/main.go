// Command bench populates a trieset.Set from many goroutines and validates
// the result against a reference map.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := command(stdout, stderr)

	// errors are reported by run itself
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	if err := app.Run(context.Background(), args); err != nil {
		fmt.Fprintf(stderr, "bench: %v\n", err)
		return 1
	}

	return 0
}

func command(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "populate a concurrent trie set and validate its contents",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "items",
				Value: 1_000_000,
				Usage: "number of items to generate",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: runtime.GOMAXPROCS(0),
				Usage: "number of concurrent writers",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: 1234567890,
				Usage: "seed for item generation",
			},
			&cli.StringFlag{
				Name:  "kind",
				Value: kindInt,
				Usage: "item type: " + strings.Join(kinds, ", "),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level: debug, info, warn, error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}

			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			cfg := config{
				Items:   cmd.Int("items"),
				Workers: cmd.Int("workers"),
				Seed:    cmd.Uint64("seed"),
				Kind:    cmd.String("kind"),
			}

			rep, err := bench(ctx, logger, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, rep)

			return nil
		},
	}
}
