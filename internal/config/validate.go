package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
//
// The watched folder paths may be empty: the write-access check reports an
// unconfigured path as a configuration failure at operation time, which keeps
// read-only commands working on a partially configured install.
func (c *Config) Validate() error {
	if err := c.validateFolders(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Audit.DefaultActor == "" {
		return errors.New("audit.default_actor must be set")
	}
	return nil
}

func (c *Config) validateFolders() error {
	if c.Folders.ImportLabel == "" {
		return errors.New("folders.import_label must be set")
	}
	if c.Folders.FailedLabel == "" {
		return errors.New("folders.failed_label must be set")
	}
	if c.Paths.ImportDir != "" && c.Paths.ImportDir == c.Paths.FailedDir {
		return errors.New("paths.import_dir and paths.failed_dir must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
