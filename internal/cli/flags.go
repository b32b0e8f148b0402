package cli

import (
	"time"

	"codeberg.org/snonux/cipherpair/internal/config"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputDir   string
	OutputDir  string
	Source     string
	Store      string
	Archive    bool
	ListModels bool

	// Batching flags
	BatchSize int
	Delay     time.Duration

	// Translation flags
	Provider          string
	Model             string
	RequestsPerSecond float64

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	def := config.Default()
	return &Flags{
		InputDir:  def.InputDir,
		OutputDir: def.OutputDir,
		Source:    def.Source,
		Store:     def.Store,
		BatchSize: def.BatchSize,
		Delay:     def.Delay,
		Provider:  def.Provider,
		LogLevel:  "info",
		LogFormat: "console",
	}
}
