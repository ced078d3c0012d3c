package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/chartopts/internal/document"
)

const (
	formatOptions = "options" // chart options text
	formatBundle  = "bundle"  // JSON object with all three payloads
	formatScript  = "script"  // runtime calls that create the chart
	formatHTML    = "html"    // standalone page
)

type renderOpts struct {
	output           string
	format           string
	indent           string
	graphicNamespace string
	runtimeNamespace string
	echartsURL       string
}

// bundle is the render output of formatBundle. Chart is the options text
// as a string because it is not strict JSON.
type bundle struct {
	ID    string          `json:"id"`
	Chart string          `json:"chart"`
	Maps  json.RawMessage `json:"maps"`
	Fetch json.RawMessage `json:"fetch"`
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatOptions}
	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a chart document",
		Long:  "Render a YAML, TOML or JSON chart document as chart options, a payload bundle, a runtime script or an HTML page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := c.Config
			if opts.graphicNamespace != "" {
				cfg.GraphicNamespace = opts.graphicNamespace
			}
			if opts.runtimeNamespace != "" {
				cfg.RuntimeNamespace = opts.runtimeNamespace
			}
			if opts.echartsURL != "" {
				cfg.EChartsURL = opts.echartsURL
			}

			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded document", "path", args[0], "sources", len(doc.DataSources), "maps", len(doc.Maps))

			out, err := render(cmd, doc, cfg, opts)
			if err != nil {
				return err
			}
			if opts.output == "" || opts.output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(opts.output, out, 0o644); err != nil {
				return err
			}
			logger.Info("wrote output", "path", opts.output, "format", opts.format)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: options, bundle, script, html")
	cmd.Flags().StringVar(&opts.indent, "indent", "", "indent chart options with this string")
	cmd.Flags().StringVar(&opts.graphicNamespace, "graphic-namespace", "", "global holding the graphic constructors")
	cmd.Flags().StringVar(&opts.runtimeNamespace, "runtime-namespace", "", "runtime object exposing getDataSource")
	cmd.Flags().StringVar(&opts.echartsURL, "echarts-url", "", "ECharts script URL for html output")
	return cmd
}

func render(cmd *cobra.Command, doc *document.Document, cfg Config, opts renderOpts) ([]byte, error) {
	ctx := cmd.Context()
	switch strings.ToLower(opts.format) {
	case formatOptions:
		p, err := chartFor(doc, nil, cfg, opts.indent).Payload(false)
		if err != nil {
			return nil, err
		}
		return append(p.Chart.Bytes(), '\n'), nil
	case formatBundle:
		c := chartFor(doc, nil, cfg, opts.indent)
		p, err := c.Payload(true)
		if err != nil {
			return nil, err
		}
		b, err := json.MarshalIndent(bundle{ID: c.ID, Chart: p.Chart.String(), Maps: p.Maps, Fetch: p.Fetch}, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case formatScript:
		_, script, err := initScript(ctx, doc, cfg)
		if err != nil {
			return nil, err
		}
		return []byte(script), nil
	case formatHTML:
		return renderPage(ctx, doc, cfg, "")
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
}
