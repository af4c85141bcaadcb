package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gopipes/internal/config"
	"github.com/philipparndt/gopipes/pkg/geometry"
	"github.com/philipparndt/gopipes/version"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gopipes",
	Short: "A CLI tool for measuring and sectioning buried pipe networks",
	Long: `gopipes loads a pipe catalog (JSON records with plan coordinates,
depth attributes and radii), maps every record into a 3D centerline,
and answers geometric queries: network statistics, pipe-to-pipe
surface distances, and vertical cross-sections with depth annotations.`,
	Version: version.GetVersion(),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gopipes.toml", "Path to the engine config file")
}

// newLogger creates the command logger. Timestamps are formatted as
// "HH:MM:SS.ms"; --verbose lowers the level to debug.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loadConfig reads the engine tunables; a broken config file is
// reported but never fatal, the defaults carry the command.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	return cfg
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
