package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okotila/liftsight/internal/analysis"
	"github.com/okotila/liftsight/internal/coach"
	"github.com/okotila/liftsight/internal/envstruct"
	"github.com/okotila/liftsight/internal/errors"
	"github.com/okotila/liftsight/internal/history"
	"github.com/okotila/liftsight/internal/logging"
	"github.com/okotila/liftsight/internal/pprofserver"
	"github.com/okotila/liftsight/internal/report"
	"github.com/okotila/liftsight/internal/sqlite"
)

type config struct {
	// SqliteURL is the path to the SQLite database. ":memory:" gives an
	// ephemeral in-memory database.
	SqliteURL string `env:"LIFTSIGHT_SQLITE_URL" envDefault:"./liftsight.sqlite3"`
	// ThresholdsPath optionally points to a YAML file overriding the
	// analysis thresholds.
	ThresholdsPath string `env:"LIFTSIGHT_THRESHOLDS_PATH" envDefault:""`
	// OpenAIAPIKey enables the AI coach summary. Empty means the
	// deterministic fallback summary.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"LIFTSIGHT_PPROF_ADDR" envDefault:""`
}

const usage = `Usage:
  liftsight import <file.json>        load a workout log into the database
  liftsight report [flags]            analyze the log and write a report

Report flags:
  -format markdown|html   output format (default markdown)
  -output PATH            write to file instead of stdout
  -summary                include the coach summary
`

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool), args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.PProfAddr != "" {
		pprofserver.Launch(ctx, cfg.PProfAddr, logger)
	}

	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close db", errors.SlogError(closeErr))
		}
	}()

	repo := history.NewRepository(db, logger)

	switch args[0] {
	case "import":
		return runImport(ctx, logger, repo, args[1:])
	case "report":
		return runReport(ctx, logger, repo, cfg, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return errors.New("unknown command", slog.String("command", args[0]))
	}
}

func runImport(ctx context.Context, logger *slog.Logger, repo *history.Repository, args []string) error {
	if len(args) != 1 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("import expects exactly one file argument")
	}

	summary, err := repo.Import(ctx, args[0])
	if err != nil {
		return errors.Wrap(err, "import", slog.String("path", args[0]))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "import finished",
		slog.Int("sessions", summary.Sessions),
		slog.Int("records", summary.Records))
	return nil
}

func runReport(ctx context.Context, logger *slog.Logger, repo *history.Repository, cfg config, args []string) error {
	flags := flag.NewFlagSet("report", flag.ContinueOnError)
	format := flags.String("format", "markdown", "output format: markdown or html")
	output := flags.String("output", "", "write to file instead of stdout")
	withSummary := flags.Bool("summary", false, "include the coach summary")
	if err := flags.Parse(args); err != nil {
		return errors.Wrap(err, "parse report flags")
	}

	thresholds := analysis.DefaultThresholds()
	if cfg.ThresholdsPath != "" {
		var err error
		if thresholds, err = analysis.LoadThresholds(cfg.ThresholdsPath); err != nil {
			return errors.Wrap(err, "load thresholds", slog.String("path", cfg.ThresholdsPath))
		}
	}

	var (
		sessions []analysis.WorkoutSession
		records  []analysis.PersonalRecord
	)
	g, loadCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sessions, err = repo.List(loadCtx); err != nil {
			return errors.Wrap(err, "list sessions")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = repo.ListRecords(loadCtx); err != nil {
			return errors.Wrap(err, "list records")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	result, err := analysis.Run(ctx, sessions, records, time.Now(), thresholds)
	if err != nil {
		return errors.Wrap(err, "run analysis")
	}

	var rendered string
	switch *format {
	case "markdown":
		rendered = report.Markdown(result)
	case "html":
		if rendered, err = report.HTML(result); err != nil {
			return errors.Wrap(err, "render html")
		}
	default:
		return errors.New("unknown format", slog.String("format", *format))
	}

	if *withSummary {
		summary := coach.New(cfg.OpenAIAPIKey, logger).Summarize(ctx, result)
		rendered = summary + "\n\n---\n\n" + rendered
	}

	if *output == "" {
		fmt.Print(rendered)
		return nil
	}
	if err = os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
		return errors.Wrap(err, "write report", slog.String("path", *output))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "wrote report",
		slog.String("path", *output), slog.String("format", *format))
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelInfo,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv, os.Args[1:]); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "command failed", errors.SlogError(err))
		os.Exit(1)
	}
}
