package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"shuttle/internal/api"
	"shuttle/internal/audit"
	"shuttle/internal/config"
	"shuttle/internal/engine"
	"shuttle/internal/logging"
	"shuttle/internal/status"
)

type commandContext struct {
	configFlag *string
	actorFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, actorFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		actorFlag:  actorFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// actor resolves the audit actor from the flag, falling back to the
// configured default.
func (c *commandContext) actor() string {
	if c.actorFlag != nil {
		if actor := strings.TrimSpace(*c.actorFlag); actor != "" {
			return actor
		}
	}
	if cfg, _ := c.ensureConfig(); cfg != nil && cfg.Audit.DefaultActor != "" {
		return cfg.Audit.DefaultActor
	}
	return "operator"
}

type services struct {
	config   *config.Config
	store    *status.Store
	auditLog *audit.Log
	files    *api.FileService
}

// withServices opens the status store and wires the lifecycle engine for a
// single command invocation, closing the store when the command returns.
func (c *commandContext) withServices(fn func(*services) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	store, err := status.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	auditLog := audit.NewLog(store.DB())
	eng, err := engine.New(cfg, store, auditLog, commandLogger(cfg))
	if err != nil {
		return err
	}

	return fn(&services{
		config:   cfg,
		store:    store,
		auditLog: auditLog,
		files:    api.NewFileService(eng, store),
	})
}

// commandLogger logs to the shuttle.log file only; command output stays on
// stdout. Failures to open the log fall back to a silent logger rather than
// blocking the command.
func commandLogger(cfg *config.Config) *slog.Logger {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg == nil || cfg.Paths.LogDir == "" {
		return discard
	}
	logPath := filepath.Join(cfg.Paths.LogDir, "shuttle.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: file,
	})
	if err != nil {
		return discard
	}
	return logger
}
