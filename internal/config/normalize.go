package config

import "strings"

// normalize expands and cleans every path field so downstream code can rely on
// absolute paths. An empty watched-folder path is preserved as empty: the
// write-access check treats it as a configuration error rather than resolving
// it to the working directory.
func (c *Config) normalize() error {
	var err error

	for _, field := range []*string{&c.Paths.ImportDir, &c.Paths.FailedDir} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		if *field, err = expandPath(trimmed); err != nil {
			return err
		}
	}

	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if dbPath := strings.TrimSpace(c.Paths.DBPath); dbPath != "" {
		if c.Paths.DBPath, err = expandPath(dbPath); err != nil {
			return err
		}
	} else {
		c.Paths.DBPath = ""
	}

	c.Folders.ImportLabel = strings.TrimSpace(c.Folders.ImportLabel)
	c.Folders.FailedLabel = strings.TrimSpace(c.Folders.FailedLabel)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Audit.DefaultActor = strings.TrimSpace(c.Audit.DefaultActor)

	return nil
}
