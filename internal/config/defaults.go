package config

const (
	defaultImportDir    = "~/.local/share/shuttle/import"
	defaultFailedDir    = "~/.local/share/shuttle/failed"
	defaultLogDir       = "~/.local/share/shuttle/logs"
	defaultImportLabel  = "Import Folder"
	defaultFailedLabel  = "Failed Folder"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultDefaultActor = "operator"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ImportDir: defaultImportDir,
			FailedDir: defaultFailedDir,
			LogDir:    defaultLogDir,
		},
		Folders: Folders{
			ImportLabel: defaultImportLabel,
			FailedLabel: defaultFailedLabel,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Audit: Audit{
			DefaultActor: defaultDefaultActor,
		},
	}
}
