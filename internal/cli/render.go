package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/cache"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
	"github.com/Aayushjha0128/GraphSense/pkg/render"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

const (
	formatSVG = "svg" // native SVG sink
	formatPNG = "png" // rasterized through Graphviz
	formatDOT = "dot" // DOT source with pinned positions

	viewColor = "color" // vertices filled with their palette color
	viewIndex = "index" // vertices labelled by ID on a neutral fill
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (derived from input when empty)
	format    string // svg, png, or dot
	view      string // color or index
	periphery bool   // draw a ring through the periphery
	maxID     int    // hide vertices above this ID (0 = show all)
	noCache   bool   // bypass the render cache
}

// renderCommand creates the render command, which draws a graph file to
// SVG, PNG, or DOT. SVG and PNG output is cached by content hash, so
// re-rendering an unchanged graph is a disk read.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		view:   viewColor,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph to SVG, PNG, or DOT",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if err := validateView(opts.view); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), graphFileArg(args), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "vertex view: color (default), index")
	cmd.Flags().BoolVar(&opts.periphery, "periphery", false, "highlight the periphery ring")
	cmd.Flags().IntVar(&opts.maxID, "max-id", 0, "hide vertices with IDs above this value")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatDOT: true}

func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", f)
	}
	return nil
}

func validateView(v string) error {
	if v != viewColor && v != viewIndex {
		return fmt.Errorf("invalid view: %s (must be 'color' or 'index')", v)
	}
	return nil
}

// outputPath derives the output file from the flags. When --output is
// unset the input name is reused with the format extension swapped in.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender loads the graph, renders it in the requested format, and
// writes the result. SVG and PNG bytes are cached under a key derived
// from the snapshot content and the render options; DOT generation is
// string formatting and is never cached.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	b, err := c.loadGraph(input)
	if err != nil {
		return err
	}
	g := b.Graph()

	var data []byte
	cached := false
	switch opts.format {
	case formatDOT:
		data = []byte(render.ToDOT(g, c.renderOptions(opts)...))
	default:
		data, cached, err = c.renderCached(ctx, g, opts)
		if err != nil {
			return err
		}
	}

	path := outputPath(opts.output, input, opts.format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered %s", StyleHighlight.Render(path))
	printStats(g.VertexCount(), g.EdgeCount(), cached)
	return nil
}

// renderCached produces SVG or PNG bytes, consulting the cache first.
// The reported bool is true on a cache hit.
func (c *CLI) renderCached(ctx context.Context, g *planar.Graph, opts *renderOpts) ([]byte, bool, error) {
	doc, err := snapshot.Marshal(g)
	if err != nil {
		return nil, false, err
	}
	key := cache.Key("render", cache.Hash(doc), opts.format, opts.view, opts.periphery, opts.maxID)

	store := c.newCache(opts.noCache)
	defer store.Close()

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("render cache hit", "key", key)
		return data, true, nil
	}

	data, err := c.renderBytes(ctx, g, opts)
	if err != nil {
		return nil, false, err
	}
	if err := store.Set(ctx, key, data); err != nil {
		c.Logger.Debug("render cache write failed", "error", err)
	}
	return data, false, nil
}

// renderBytes draws the graph. PNG goes through Graphviz, which can
// take a while on large graphs, so it runs under a spinner.
func (c *CLI) renderBytes(ctx context.Context, g *planar.Graph, opts *renderOpts) ([]byte, error) {
	renderOpts := c.renderOptions(opts)

	if opts.format == formatSVG {
		return render.SVG(g, renderOpts...), nil
	}

	sp := newSpinner(ctx, "rendering PNG")
	sp.Start()
	data, err := render.RenderPNG(render.ToDOT(g, renderOpts...))
	if err != nil {
		sp.StopWithError("PNG render failed")
		return nil, err
	}
	sp.Stop()
	return data, nil
}

// renderOptions translates flags and configuration into sink options.
func (c *CLI) renderOptions(opts *renderOpts) []render.Option {
	out := []render.Option{
		render.WithPalette(c.cfg.Palette),
		render.WithCanvas(c.cfg.Render),
	}
	if opts.view == viewIndex {
		out = append(out, render.WithIndexLabels())
	}
	if opts.periphery {
		out = append(out, render.WithPeripheryHighlight())
	}
	if opts.maxID > 0 {
		out = append(out, render.WithMaxID(opts.maxID))
	}
	return out
}
