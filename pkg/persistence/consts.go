package persistence

// Default paths for the filiais data file, relative to the working directory.
const (
	DefaultFiliaisPath = "./data/filiais.json"
	DefaultSQLitePath  = "./data/filiais.db"
	DefaultConfigPath  = "./config.yaml"
)
