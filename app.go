package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SessionIDPrefix tags the uid attached to every log entry of a run.
const SessionIDPrefix = "s"

// errSessionEnded signals a normal shell exit through the errorgroup,
// so the watcher goroutine unblocks like it does on interrupt.
var errSessionEnded = errors.New("session ended")

type AppProvider interface {
	Run() error
}

type App struct {
	logger   *zap.Logger
	config   *Config
	shell    *Shell
	input    io.Reader
	lines    chan string
	cleanups []func()
}

// NewApp wires the whole application: configuration, logging, the
// selected storage backend, the catalogue service and the menu shell.
func NewApp() (AppProvider, error) {
	var app *App
	config, err := LoadAndInitConfigs(GitCommit, GitTag, BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %s", err)
	}

	// ensure the logs folder exists and Setup the logging module.
	err = os.MkdirAll(filepath.Dir(config.LogFile), 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging folder: %s", err)
	}
	logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging file: %s", err)
	}
	closer := func() {
		if cerr := logFile.Close(); cerr != nil {
			fmt.Println("error during closing of log file: ", cerr)
		}
	}
	logger, flusher := SetupLogging(config, logFile)
	logger = logger.With(zap.String("session.id", NewIDsHandler().Generate(SessionIDPrefix)))

	clock := NewClock(config.IsProduction)
	cleanups := []func(){flusher, closer}

	// Setup the catalogue storage backend and the mutation journal.
	var storage BookStorage
	journal := NewNopJournal()
	switch config.Storage.Backend {
	case BackendBolt:
		boltDBClient, err := GetBoltDBClient(config)
		if err != nil {
			return app, fmt.Errorf("failed to open the boltDB database: %s", err)
		}
		cleanups = append(cleanups, func() {
			if cerr := boltDBClient.Close(); cerr != nil {
				logger.Error("failed to close the boltDB database", zap.Error(cerr))
			}
		})
		storage = NewBoltBookStorage(logger, &config.BoltDB, boltDBClient)
		journal = NewBoltJournal(logger, clock, &config.BoltDB, boltDBClient)
	case BackendRedis:
		redisClient, err := GetRedisClient(config)
		if err != nil {
			return app, fmt.Errorf("failed to connect to redis server: %s", err)
		}
		cleanups = append(cleanups, func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("failed to close the redis client", zap.Error(cerr))
			}
		})
		storage = NewRedisBookStorage(logger, redisClient)
	default:
		storage = NewMemoryBookStorage(logger)
	}

	// Setup the catalogue service and the menu shell.
	catalogue := NewCatalogue(logger, clock, storage, journal)
	console := NewConsole(os.Stdout, config.NoColor)
	lines := make(chan string)
	shell := NewShell(logger, console, NewValidator(clock), catalogue, config.Tokens, lines)

	return &App{
		logger:   logger,
		config:   config,
		shell:    shell,
		input:    os.Stdin,
		lines:    lines,
		cleanups: cleanups,
	}, nil
}

// Run starts the menu shell and a goroutine which is responsible to
// watch for the interrupt signal. Both the explicit exit command and
// the interrupt end the run with a success status.
func (app *App) Run() error {
	defer app.Clean()
	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.Pump()

	g, gCtx := errgroup.WithContext(nCtx)
	g.Go(app.Serve(gCtx))
	g.Go(app.Stop(nCtx, gCtx))

	err := g.Wait()
	app.logger.Info("shell stopped",
		zap.String("storage.backend", app.config.Storage.Backend),
		zap.Error(err),
	)
	if errors.Is(err, errSessionEnded) {
		return nil
	}
	return err
}

// Clean calls all registered cleanups functions.
func (app *App) Clean() {
	for _, f := range app.cleanups {
		f()
	}
}

// Pump feeds standard input lines into the shell's line channel. It
// runs detached: a read blocked on a quiet terminal cannot be
// interrupted portably, so shutdown is decided on the consuming side.
func (app *App) Pump() {
	scanner := bufio.NewScanner(app.input)
	for scanner.Scan() {
		app.lines <- scanner.Text()
	}
	close(app.lines)
}

// Serve drives the menu shell. Its returned error will be caught by
// the errorgroup.
func (app *App) Serve(ctx context.Context) func() error {
	return func() error {
		app.logger.Info("shell starting",
			zap.String("storage.backend", app.config.Storage.Backend),
		)
		if err := app.shell.Run(ctx); err != nil {
			return err
		}
		return errSessionEnded
	}
}

// Stop listens for the group context and states the reason the shell
// is going down. We explicitly return `nil` to allow the errorgroup
// catches only the `Serve` method result.
func (app *App) Stop(nCtx, gCtx context.Context) func() error {
	return func() error {
		<-gCtx.Done()

		if nCtx.Err() != nil {
			app.logger.Info("shell stopping. reason: requested to stop")
		} else {
			app.logger.Info("shell stopping. reason: session ended")
		}
		return nil
	}
}
