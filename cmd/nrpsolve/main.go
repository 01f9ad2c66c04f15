// Command nrpsolve runs a local-search nurse-rostering solver against a
// text problem instance and writes the best roster and run statistics it
// finds within its idle-iteration budget.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"
	_ "time/tzdata"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/checkpoint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/instanceio"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/search"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/solver"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

var (
	instancePath  = pflag.String("instance", "", "path to the problem instance file (required)")
	outPath       = pflag.String("out", "", "path to write the tabbed roster (required)")
	outXMLPath    = pflag.String("out-xml", "", "optional path to write the XML roster")
	statsOutPath  = pflag.String("stats-out", "", "optional path to write the CSV statistics series")
	algorithm     = pflag.String("algorithm", "lahc", "search algorithm: lahc|dlas|sa|tabu-state|tabu-move")
	seed          = pflag.Int64("seed", 1, "deterministic RNG seed")
	maxIdleIters  = pflag.Uint64("max-idle-iterations", search.DefaultTerminationConfig.MaxIdleIterations, "idle-iteration budget before the search stops")
	checkpointDir = pflag.String("checkpoint-dir", "", "optional badger directory to checkpoint the best roster and stats to")
	resume        = pflag.Bool("resume", false, "warm-start from the roster checkpointed under --checkpoint-dir")
	logJSON       = pflag.Bool("log-json", false, "use JSON logs instead of colorized text")
	cpuprofile    = pflag.String("cpuprofile", "", "write cpu profile to file")
	help          = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	pflag.Parse()
	if *help {
		fmt.Printf("usage: %s --instance <path> --out <path> [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		return
	}

	if *logJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, nil)))
	}

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			slog.Error("could not create CPU profile", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			slog.Error("could not start CPU profile", "error", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
		slog.Info("cpu profiling enabled", "path", profilePath)
	}

	if err := run(); err != nil {
		slog.Error("solve failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if *instancePath == "" {
		return fmt.Errorf("--instance is required")
	}
	if *outPath == "" {
		return fmt.Errorf("--out is required")
	}

	f, err := os.Open(*instancePath)
	if err != nil {
		return fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	loc := time.Local
	now := time.Now().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	cfg, err := instanceio.Parse(f, instanceio.ParseOptions{Start: start, Location: loc})
	if err != nil {
		return fmt.Errorf("parse instance: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid instance: %w", err)
	}
	slog.Info("parsed instance",
		"shifts", len(cfg.Axes.Shifts), "employees", len(cfg.Axes.Employees),
		"days", len(cfg.Axes.Days), "skills", len(cfg.Axes.Skills))

	size := state.Size{
		X: cfg.Axes.SizeX(), Y: cfg.Axes.SizeY(), Z: cfg.Axes.SizeZ(), W: cfg.Axes.SizeW(),
	}
	initial := state.New(size, cfg.Horizon, cfg.Location, &cfg.Axes)

	var store *checkpoint.Store
	if *checkpointDir != "" {
		var err error
		store, err = checkpoint.Open(*checkpointDir)
		if err != nil {
			return fmt.Errorf("open checkpoint store: %w", err)
		}
		defer store.Close()
	}
	checkpointID := *instancePath

	if *resume {
		if store == nil {
			return fmt.Errorf("--resume requires --checkpoint-dir")
		}
		saved, savedScore, ok, err := store.LoadRoster(checkpointID, &cfg.Axes, cfg.Horizon, cfg.Location)
		if err != nil {
			return fmt.Errorf("load checkpointed roster: %w", err)
		}
		if ok && saved.Size() == size {
			initial = saved
			slog.Info("resuming from checkpointed roster",
				"strict", savedScore.Strict, "hard", savedScore.Hard, "soft", savedScore.Soft)
		} else if ok {
			slog.Warn("checkpointed roster has a different shape, starting fresh")
		}
	}

	seed1 := uint64(*seed)
	seed2 := uint64(*seed)*0x9E3779B97F4A7C15 + 1
	move.Seed(seed1, seed2)
	search.Seed(seed2, seed1)

	constraints := constraint.BuildAll(cfg, size)
	evaluator := constraint.NewEvaluator(constraints)
	hp := move.BuildDefaultHeuristicProvider()

	terminationConfig := search.DefaultTerminationConfig
	terminationConfig.MaxIdleIterations = *maxIdleIters

	task, err := buildTask(*algorithm, evaluator, terminationConfig)
	if err != nil {
		return err
	}
	task.Reset(initial)

	slog.Info("starting search", "algorithm", *algorithm, "seed", *seed, "max_idle_iterations", *maxIdleIters)

	// The worker goroutine owns the task; this goroutine plays the
	// observer, polling the shared slot for progress and relaying SIGINT
	// as a cooperative stop request.
	ctx := solver.NewContext()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	type result struct {
		state *state.State
		score constraint.Score
	}
	done := make(chan result, 1)
	go func() {
		st, sc := solver.RunWorker(ctx, task, hp)
		done <- result{state: st, score: sc}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	var outputState *state.State
	var outputScore constraint.Score
observe:
	for {
		select {
		case <-interrupt:
			slog.Info("interrupt received, stopping search")
			ctx.RequestStop()
		case <-ticker.C:
			if update, ok := ctx.TryAcquireUpdate(); ok {
				slog.Info("new best",
					"strict", update.Score.Strict, "hard", update.Score.Hard, "soft", update.Score.Soft)
			}
		case r := <-done:
			outputState, outputScore = r.state, r.score
			break observe
		}
	}

	slog.Info("search finished",
		"strict", outputScore.Strict, "hard", outputScore.Hard, "soft", outputScore.Soft,
		"feasible", outputScore.IsFeasible())

	if err := writeOutputs(outputState, cfg, task.Stats()); err != nil {
		return err
	}

	if store != nil {
		if err := store.SaveRoster(checkpointID, outputState, outputScore); err != nil {
			return fmt.Errorf("checkpoint roster: %w", err)
		}
		if err := store.AppendStat(checkpointID, task.Stats()); err != nil {
			return fmt.Errorf("checkpoint stats: %w", err)
		}
		slog.Info("checkpointed run", "dir", *checkpointDir, "id", checkpointID)
	}

	return nil
}

func buildTask(algorithm string, evaluator *constraint.Evaluator, cfg search.TerminationConfig) (search.Task, error) {
	switch algorithm {
	case "lahc":
		return search.NewLAHC(evaluator, cfg, search.DefaultLAHCLength), nil
	case "dlas":
		return search.NewDLAS(evaluator, cfg, search.DefaultDLASLength), nil
	case "sa":
		return search.NewSA(evaluator, cfg, search.DefaultSAConfig), nil
	case "tabu-state":
		return search.NewTabuState(evaluator, cfg, search.DefaultTabuStateTenure), nil
	case "tabu-move":
		return search.NewTabuMove(evaluator, cfg, search.DefaultTabuMoveTenure), nil
	default:
		return nil, fmt.Errorf("unknown --algorithm %q (want lahc|dlas|sa|tabu-state|tabu-move)", algorithm)
	}
}

func writeOutputs(outputState *state.State, cfg *domain.Config, stats *search.ScoreStatistics) error {
	outFile, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create roster output: %w", err)
	}
	defer outFile.Close()
	if err := instanceio.WriteTabbed(outFile, outputState, &cfg.Axes); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	if *outXMLPath != "" {
		xmlFile, err := os.Create(*outXMLPath)
		if err != nil {
			return fmt.Errorf("create XML roster output: %w", err)
		}
		defer xmlFile.Close()
		if err := instanceio.WriteXML(xmlFile, outputState, &cfg.Axes); err != nil {
			return fmt.Errorf("write XML roster: %w", err)
		}
	}

	if *statsOutPath != "" {
		statsFile, err := os.Create(*statsOutPath)
		if err != nil {
			return fmt.Errorf("create stats output: %w", err)
		}
		defer statsFile.Close()
		if err := instanceio.WriteStats(statsFile, stats); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}

	return nil
}
