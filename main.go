package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/catalog"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "symdiff",
		Short: "Symbolic differentiation of expression trees",
		Long: `symdiff builds expression trees over real numbers, evaluates them,
simplifies them and computes exact symbolic partial derivatives.`,
		Example: `  # List the built-in expressions
  symdiff list

  # Show an expression with its gradient
  symdiff show catenary

  # Check every derivative against finite differences
  symdiff sweep --points 32

  # Taylor polynomial of Exp(x) around 0
  symdiff taylor exp --order 8 --x 1`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd(), showCmd(), sweepCmd(), taylorCmd())

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a text slog handler on w at info, or debug level.
func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func listCmd() *cobra.Command {
	var set string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := catalog.InSet(set)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%-16s %-15s %-6s [%g, %g]  %s\n",
					e.Name, e.Set, strings.Join(e.Vars, ","), e.Lo, e.Hi, e.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&set, "set", "", "only list one set ("+strings.Join(catalog.Sets(), ", ")+")")
	return cmd
}
