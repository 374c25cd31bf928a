package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/depeval/depeval"
	"github.com/depeval/depeval/internal/treebank"
)

// Build metadata injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "depeval: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "depeval",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Usage:     "score dependency parses against a gold standard",
		ArgsUsage: "VALIDATION PREDICTION",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "deprel-confusion",
				Usage: "write the relation confusion matrix to `FILE`",
			},
			&cli.StringFlag{
				Name:  "deprel-accuracies",
				Usage: "write per-relation accuracies to `FILE`",
			},
			&cli.StringFlag{
				Name:  "distance-confusion",
				Usage: "write the head distance confusion matrix to `FILE`",
			},
			&cli.StringFlag{
				Name:  "distance-accuracies",
				Usage: "write per-distance accuracies to `FILE`",
			},
			&cli.StringFlag{
				Name:  "fields-confusion",
				Usage: "write the topological field confusion matrix to `FILE`",
			},
			&cli.StringFlag{
				Name:  "fields-accuracies",
				Usage: "write per-field accuracies to `FILE`",
			},
			&cli.BoolFlag{
				Name:  "fields",
				Usage: "score topological fields from token features",
			},
			&cli.StringFlag{
				Name:  "tf-feature",
				Value: "p_tf",
				Usage: "predicted-side field feature `NAME` used with --fields",
			},
			&cli.BoolFlag{
				Name:  "no-fields",
				Usage: "do not score topological fields",
			},
			&cli.BoolFlag{
				Name:  "no-rels",
				Usage: "do not write relation outputs",
			},
			&cli.BoolFlag{
				Name:  "clause-ids",
				Usage: "use clause IDs to derive relation predictions",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected VALIDATION and PREDICTION arguments, got %d", c.NArg())
	}
	if c.Bool("no-fields") && c.Bool("no-rels") {
		return errors.New("--no-fields and --no-rels are mutually exclusive")
	}
	if c.Bool("no-fields") && c.IsSet("tf-feature") {
		return errors.New("--tf-feature and --no-fields are mutually exclusive")
	}

	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if c.Bool("clause-ids") {
		logger.Warn("clause ID derived relations are not implemented, flag ignored")
	}

	gold, err := treebank.Open(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("opening validation file: %w", err)
	}
	defer func() { _ = gold.Close() }()

	pred, err := treebank.Open(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("opening prediction file: %w", err)
	}
	defer func() { _ = pred.Close() }()

	scoreFields := c.Bool("fields") && !c.Bool("no-fields")

	opts := []depeval.Option{depeval.WithLogger(logger)}
	if scoreFields {
		opts = append(opts, depeval.WithFieldScoring("tf", c.String("tf-feature")))
	}

	scorer := depeval.NewScorer(opts...)
	if err := scorer.Score(context.Background(), gold, pred); err != nil {
		return err
	}

	if err := scorer.Result().WriteSummary(c.App.Writer); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	outputs := []struct {
		path    string
		enabled bool
		write   func(io.Writer) error
	}{
		{c.String("deprel-confusion"), !c.Bool("no-rels"), scorer.Deprels().WriteTable},
		{c.String("deprel-accuracies"), !c.Bool("no-rels"), scorer.Deprels().WriteAccuracies},
		{c.String("distance-confusion"), true, scorer.Distances().WriteTable},
		{c.String("distance-accuracies"), true, scorer.Distances().WriteAccuracies},
		{c.String("fields-confusion"), scoreFields, scorer.Fields().WriteTable},
		{c.String("fields-accuracies"), scoreFields, scorer.Fields().WriteAccuracies},
	}

	// A destination that fails to write is reported but never aborts the
	// remaining destinations.
	var errs []error
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if !out.enabled {
			logger.Warn("output suppressed by flags", "path", out.path)
			continue
		}
		if err := writeOutput(out.path, out.write); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// writeOutput writes one rendering to its own file, opened and closed
// around the write.
func writeOutput(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
