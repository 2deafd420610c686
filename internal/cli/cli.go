// Package cli implements the graphsense command-line interface.
//
// This package provides commands for growing planar triangulated graphs,
// rendering them as SVG, PNG, or DOT, inspecting their statistics, and
// managing named snapshots in the configured store. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - new: Create a graph seeded with the initial triangle
//   - grow: Insert vertices on random periphery segments
//   - add: Insert a vertex on a chosen periphery segment
//   - center: Fit the layout into the canvas
//   - stats: Print graph statistics
//   - render: Generate SVG, PNG, or DOT output
//   - edit: Interactive terminal editor
//   - serve: Run the HTTP API
//   - snapshot: Save, load, list, and delete named snapshots
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. A
// --config flag points at a TOML file overriding the built-in defaults.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/buildinfo"
	"github.com/Aayushjha0128/GraphSense/pkg/builder"
	"github.com/Aayushjha0128/GraphSense/pkg/cache"
	"github.com/Aayushjha0128/GraphSense/pkg/config"
	"github.com/Aayushjha0128/GraphSense/pkg/layout"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphsense"

	// defaultGraphFile is where commands look for a graph when no file
	// argument is given.
	defaultGraphFile = "graph.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	cfg     config.Config
	cfgPath string
}

// New creates a new CLI instance with a default logger and default
// configuration. The configuration is replaced before command execution
// when --config names a readable file.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "GraphSense grows planar triangulated graphs",
		Long:         `GraphSense incrementally builds planar triangulated graphs: new vertices attach to the convex periphery, and a relaxation engine keeps the drawing readable as the graph grows.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadIfPresent(c.cfgPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cfgPath, "config", appName+".toml", "TOML configuration file")

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.growCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.centerCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Builder Factory
// =============================================================================

// newBuilder assembles a builder over g with the configured geometry
// and seed.
func (c *CLI) newBuilder(g *planar.Graph) *builder.Builder {
	cfg := c.cfg.Geometry.LayoutConfig()
	return builder.New(g, layout.New(&cfg), c.cfg.Seed)
}

// loadGraph reads a snapshot file into a builder.
func (c *CLI) loadGraph(path string) (*builder.Builder, error) {
	g, err := snapshot.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.newBuilder(g), nil
}

// =============================================================================
// Cache Factory
// =============================================================================

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphsense/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// graphFileArg resolves the optional positional graph file argument.
func graphFileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGraphFile
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
