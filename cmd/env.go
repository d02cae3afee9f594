package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/config"
	"github.com/abhisek/careerform/internal/draft"
	"github.com/abhisek/careerform/internal/logger"
	"github.com/abhisek/careerform/internal/session"
	"github.com/abhisek/careerform/internal/store"
	"github.com/abhisek/careerform/internal/submit"
)

// env bundles what every sub-command needs: configuration, the file logger
// and the open store.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
}

// loadConfig loads configuration, applies flag overrides and opens the
// file logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return cfg, log, nil
}

// setup loads configuration and opens the logger and the store. Callers
// must Close the result.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	fail := func(err error) (*env, error) {
		log.Error("setup failed", zap.Error(err))
		_ = log.Sync()
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fail(fmt.Errorf("resolve DB path: %w", err))
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fail(fmt.Errorf("open store: %w", err))
	}

	log.Debug("environment ready", zap.String("db", dbPath), zap.String("sink", cfg.Sink.URL))
	return &env{cfg: cfg, logger: log, store: st}, nil
}

func (e *env) Close() {
	e.store.Close()
	_ = e.logger.Sync()
}

func (e *env) drafts() *draft.Adapter {
	return draft.NewAdapter(e.store.DraftRepo(), e.logger)
}

// newSession wires the draft store, the logged HTTP sink and the
// submission controller into a fresh session.
func (e *env) newSession() *session.Session {
	drafts := e.drafts()
	sink := submit.WithLogging(
		submit.NewHTTPSink(e.cfg.Sink.URL,
			submit.WithTimeout(e.cfg.Sink.Timeout),
			submit.WithOpaqueResponse(e.cfg.Sink.Opaque)),
		e.logger,
		e.store.SubmissionRepo(),
	)
	return session.New(session.Config{
		Drafts: drafts,
		Controller: submit.NewController(submit.Config{
			Sink:   sink,
			Drafts: drafts,
			Logger: e.logger,
		}),
		Debounce: e.cfg.Draft.Debounce,
		Logger:   e.logger,
	})
}
