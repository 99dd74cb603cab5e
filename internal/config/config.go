package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeExtract = "extract"
	ModeBatch   = "batch"

	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultChunkPages  = 10
	DefaultDatabase    = "revision_tracker.db"
)

// Config holds all configuration for the MCQ extraction tool
type Config struct {
	// Mode: "extract" parses one file to JSON, "batch" processes a folder
	// into the questions database
	Mode string

	// Extract mode input
	InputFile string

	// Batch mode configuration
	SourceDir    string
	DatabasePath string
	Workers      int
	ChunkPages   int

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:         ModeExtract,
		SourceDir:    currentDir,
		DatabasePath: DefaultDatabase,
		Workers:      runtime.NumCPU(),
		ChunkPages:   DefaultChunkPages,
		Version:      "1.0.0",
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.SourceDir != "" {
		if expandedPath, err := filepath.Abs(cfg.SourceDir); err == nil {
			cfg.SourceDir = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("MCQ_EXTRACT")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("input", cfg.InputFile)
	viper.SetDefault("dir", cfg.SourceDir)
	viper.SetDefault("db", cfg.DatabasePath)
	viper.SetDefault("workers", cfg.Workers)
	viper.SetDefault("chunkpages", cfg.ChunkPages)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'extract' for one file to JSON, 'batch' for a folder into the database")
	pflag.String("input", cfg.InputFile, "PDF file to extract (extract mode only)")
	pflag.String("dir", cfg.SourceDir, "Directory containing source PDF files (batch mode only)")
	pflag.String("db", cfg.DatabasePath, "Path to the questions database (batch mode only)")
	pflag.Int("workers", cfg.Workers, "Number of concurrent document workers (batch mode only)")
	pflag.Int("chunkpages", cfg.ChunkPages, "Maximum pages per chunk when splitting large PDFs")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("db", pflag.Lookup("db"))
	_ = viper.BindPFlag("workers", pflag.Lookup("workers"))
	_ = viper.BindPFlag("chunkpages", pflag.Lookup("chunkpages"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMCQ Extract - pulls embedded practice questions out of exam-prep PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=monthly_compilation.pdf                 # one file, JSON on stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=batch --dir=~/pdfs --db=questions.db     # whole folder into SQLite\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_INPUT        Input PDF file\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_DIR          Source PDF directory\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_DB           Questions database path\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_WORKERS      Concurrent document workers\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_CHUNKPAGES   Pages per chunk\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  MCQ_EXTRACT_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.InputFile = viper.GetString("input")
	cfg.SourceDir = viper.GetString("dir")
	cfg.DatabasePath = viper.GetString("db")
	cfg.Workers = viper.GetInt("workers")
	cfg.ChunkPages = viper.GetInt("chunkpages")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeExtract && c.Mode != ModeBatch {
		return errors.New("mode must be either 'extract' or 'batch'")
	}

	if c.Mode == ModeExtract && c.InputFile == "" {
		return errors.New("extract mode requires --input")
	}

	if c.Mode == ModeBatch {
		if c.SourceDir == "" {
			return errors.New("source directory cannot be empty")
		}
		if info, err := os.Stat(c.SourceDir); err != nil {
			return fmt.Errorf("cannot access source directory %s: %w", c.SourceDir, err)
		} else if !info.IsDir() {
			return fmt.Errorf("source path is not a directory: %s", c.SourceDir)
		}
		if c.DatabasePath == "" {
			return errors.New("database path cannot be empty")
		}
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	if c.ChunkPages < 1 {
		return errors.New("chunk pages must be at least 1")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsBatchMode returns true when the tool processes a whole folder
func (c *Config) IsBatchMode() bool {
	return c.Mode == ModeBatch
}

// IsExtractMode returns true when the tool processes a single file
func (c *Config) IsExtractMode() bool {
	return c.Mode == ModeExtract
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, InputFile: %s, SourceDir: %s, DatabasePath: %s, Workers: %d, ChunkPages: %d, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.InputFile, c.SourceDir, c.DatabasePath, c.Workers, c.ChunkPages, c.LogLevel, c.MaxFileSize)
}
