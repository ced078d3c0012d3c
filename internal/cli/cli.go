// Package cli implements the chartopts command-line interface.
//
// The render command turns a chart document into chart options, a payload
// bundle, a runtime script or a standalone HTML page. The serve command
// hosts a live preview of a document and the schema command prints the
// document JSON Schema. All commands support --verbose for
// debug logging; loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/chartopts"
	"github.com/reoring/chartopts/i18n"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information printed by the version command.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a CLI logging to w at level, configured from the environment.
func New(w io.Writer, level log.Level) *CLI {
	cfg := loadConfig()
	i18n.SetLanguage(cfg.Lang)
	return &CLI{Logger: newLogger(w, level), Config: cfg}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		lang    string
	)
	root := &cobra.Command{
		Use:           "chartopts",
		Short:         "chartopts renders typed chart documents to ECharts options",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			if lang != "" {
				i18n.SetLanguage(lang)
			}
			chartopts.SetLogger(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetVersionTemplate(versionText())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&lang, "lang", "", "language of error reports: "+strings.Join(i18n.Languages(), ", "))

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.versionCommand())
	return root
}

// Execute runs the CLI with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), versionText())
			return err
		},
	}
}

func versionText() string {
	s := fmt.Sprintf("chartopts %s\n", version)
	if commit != "" {
		s += fmt.Sprintf("commit: %s\n", commit)
	}
	if date != "" {
		s += fmt.Sprintf("built: %s\n", date)
	}
	return s
}

// Log levels for New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)
