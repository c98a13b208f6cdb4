package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dirsweep/internal/cleaner"
	"dirsweep/internal/config"
	"dirsweep/internal/exitcodes"
	"dirsweep/internal/fsops"
	"dirsweep/internal/history"
	"dirsweep/internal/logging"
	"dirsweep/internal/metrics"
	"dirsweep/internal/report"
	"dirsweep/internal/safety"
	"dirsweep/internal/scheduler"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dirsweep [flags] <root-path> <minimum-age-in-minutes>\n")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "Path to optional YAML configuration file")
	execute := flag.Bool("execute", false, "Actually delete entries instead of reporting what would be removed")
	daemon := flag.Bool("daemon", false, "Keep running and sweep once per configured interval")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors in console output")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(exitcodes.UsageError)
	}

	root := flag.Arg(0)
	minutes, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid minimum age %q: %v\n", flag.Arg(1), err)
		os.Exit(exitcodes.UsageError)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(exitcodes.InvalidConfig)
		}
	}

	logger := logging.New(cfg.LogFile)

	mode := cleaner.DryRun
	if *execute {
		mode = cleaner.Execute
	}
	if mode == cleaner.DryRun {
		logger.Println("DRY RUN MODE: no entries will be deleted")
	}

	// Only execute runs can mutate, so only they are gated.
	if mode == cleaner.Execute {
		validator := safety.NewValidator(cfg.ProtectedPaths)
		if err := validator.ValidateRoot(root); err != nil {
			logger.Printf("ERROR: refusing to sweep %s: %v", root, err)
			os.Exit(exitcodes.SafetyViolation)
		}
	}

	metrics.Init()
	if cfg.Prometheus.Port > 0 {
		metrics.StartServer(cfg.PrometheusAddress(), logger)
	}

	palette := report.DefaultPalette()
	if *noColor || cfg.NoColor {
		palette = report.NoColorPalette()
	}
	sinks := []report.Sink{
		report.NewConsole(os.Stdout, os.Stderr, palette),
		metrics.Sink{},
	}

	var db *history.SweepDB
	if cfg.DatabasePath != "" {
		logger.Printf("Opening sweep journal: %s", cfg.DatabasePath)
		db, err = history.NewSweepDB(cfg.DatabasePath)
		if err != nil {
			logger.Printf("ERROR: Failed to open database: %v", err)
			os.Exit(exitcodes.RuntimeError)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Printf("ERROR: Failed to close database: %v", err)
			}
		}()
		sinks = append(sinks, history.NewSink(db, logger))
	}

	sink := report.NewMultiSink(sinks...)

	job := scheduler.Job{
		Root:       root,
		MinimumAge: time.Duration(minutes) * time.Minute,
		Mode:       mode,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if *daemon {
		logger.Printf("Daemon mode: sweeping every %s", cfg.Interval())
		if err := scheduler.Run(ctx, job, cfg.Interval(), fsops.OSFilesystem{}, sink, logger); err != nil && err != context.Canceled {
			logger.Printf("ERROR: Scheduler failed: %v", err)
			os.Exit(exitcodes.RuntimeError)
		}
	} else {
		if err := scheduler.RunOnce(ctx, job, fsops.OSFilesystem{}, sink, logger); err != nil {
			logger.Printf("ERROR: Sweep failed: %v", err)
			os.Exit(exitcodes.RuntimeError)
		}
	}
}
