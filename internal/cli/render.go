package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diagramlab/stencil/pkg/cache"
	"github.com/diagramlab/stencil/pkg/document"
	"github.com/diagramlab/stencil/pkg/render"
)

// renderCacheTTL bounds how long rendered artifacts stay cached.
const renderCacheTTL = 30 * 24 * time.Hour

// renderCommand creates the render command for visual output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		detailed   bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [document.json]",
		Short: "Render a diagram document to DOT, SVG, or PNG",
		Long: `Render a diagram document to DOT, SVG, or PNG.

Shapes map onto native Graphviz node shapes, so rendered diagrams keep their
visual vocabulary. SVG and PNG results are cached locally keyed by document
hash for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], formats, output, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include position, size, and port count in labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, formats []string, output string, detailed, noCache bool) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	doc, err := document.Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	g, dropped := document.ToGraph(doc)
	if dropped > 0 {
		printWarning("%d invalid edge(s) dropped on load", dropped)
	}

	artifactCache, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer artifactCache.Close()

	dot := render.ToDOT(g, render.Options{Detailed: detailed})
	docHash := cache.Hash(raw)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	type artifact struct {
		format string
		data   []byte
		hit    bool
	}
	artifacts := make([]artifact, 0, len(formats))

	for _, format := range formats {
		data, hit, err := c.renderFormat(ctx, artifactCache, docHash, dot, format)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		artifacts = append(artifacts, artifact{format: format, data: data, hit: hit})
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d node(s), %d edge(s)", g.NodeCount(), g.EdgeCount()))

	cached := true
	for _, a := range artifacts {
		path := outputPath(input, output, a.format, len(formats) > 1)
		if err := os.WriteFile(path, a.data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		cached = cached && a.hit
	}
	printStats(g.NodeCount(), g.EdgeCount(), cached)

	return nil
}

// renderFormat produces one output format, consulting the artifact cache for
// svg and png. DOT output is cheap and deterministic, so it bypasses the
// cache entirely.
func (c *CLI) renderFormat(ctx context.Context, artifactCache cache.Cache, docHash, dot, format string) ([]byte, bool, error) {
	if format == "dot" {
		return []byte(dot), false, nil
	}

	key := cache.RenderKey(docHash, format)
	if data, ok, err := artifactCache.Get(ctx, key); err == nil && ok {
		c.Logger.Debugf("cache hit for %s", format)
		return data, true, nil
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = render.RenderSVG(dot)
	case "png":
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		return nil, false, err
	}

	if err := artifactCache.Set(ctx, key, data, renderCacheTTL); err != nil {
		c.Logger.Debugf("cache store failed: %v", err)
	}
	return data, false, nil
}

// outputPath derives where to write an artifact from the input path, the
// --output flag, and whether multiple formats are being produced.
func outputPath(input, output, format string, multi bool) string {
	if output != "" {
		if multi {
			return output + "." + format
		}
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats rejects anything outside the supported output formats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case "svg", "png", "dot":
		default:
			return fmt.Errorf("unsupported format: %q (want svg, png, or dot)", f)
		}
	}
	return nil
}
