// Command gulc is the CLI surface around the gulc core: a thin
// collaborator (spec.md §6) that loads flags/environment, builds the
// ast.File inputs, and reports the diag.List the core produces. The core
// itself never reads a flag or an environment variable directly.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gulc-lang/gulc"
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/diag"
	"github.com/gulc-lang/gulc/internal/log"
)

func main() {
	// Ignored error matches the teacher's own .env loading shape: a
	// missing .env is not a failure, just no overrides to apply.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "gulc",
		Short: "GULC semantic resolver front-end",
		Long:  "Runs the eight-pass semantic resolver over parsed source files.",
	}

	rootCmd.AddCommand(newCheckCmd(), newMangleDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newCheckCmd builds the `check` subcommand: positional source paths,
// `-o <objfile>`, a verbosity flag, and a target triple (spec.md §6's
// CLI surface, all passed through to the core unchanged). Since the
// lexer/parser is an explicit non-goal (spec.md §1), each positional path
// becomes an empty ast.File{Path} — a stand-in for the parser collaborator
// that would otherwise populate Declarations/Imports — so the command
// demonstrates the pipeline wiring without inventing a parser here.
func newCheckCmd() *cobra.Command {
	var (
		output  string
		verbose bool
		target  string
		stopAt  string
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Run the resolver pipeline over source files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]*ast.File, len(args))
			for i, path := range args {
				files[i] = &ast.File{Path: path}
			}

			opts := gulc.Options{
				Target:           target,
				WarningsAsErrors: false,
				StopAfterPass:    gulc.Pass(stopAt),
			}

			lc := log.New(cmd.Context()).Tag("cmd.check")
			if verbose {
				lc.Info().Logf("target=%s files=%d stop-after=%q", target, len(files), stopAt)
			}

			result, err := gulc.Run(files, opts)
			for _, d := range result.Diags.Entries() {
				line := lc.Warning()
				if d.Severity == diag.Fatal {
					line = lc.Error()
				}
				if d.HasAt {
					line = line.V("at", fmt.Sprintf("%s:%d:%d", d.File, d.At.Start.Line, d.At.Start.Column))
				}
				line.Log(d.Message)
			}
			if err != nil {
				return err
			}
			if output != "" && verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "no code generator wired; %s not written\n", output)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "object file path (passed through to a CodeGenerator collaborator)")
	flags.BoolVarP(&verbose, "verbose", "v", envDefault("GULC_VERBOSE", "") == "1", "verbose logging")
	flags.StringVar(&target, "target", envDefault("GULC_TARGET", ""), "target triple")
	flags.StringVar(&stopAt, "stop-after", "", "stop the pipeline after the named pass (prototype|basictype|circular|base|consttype|template|expr|mangle)")

	return cmd
}

// newMangleDemoCmd mangles a small built-in namespace.struct.method
// example and prints the Itanium-compatible names, demonstrating the
// mangle package directly (no parser or resolver pipeline needed).
func newMangleDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mangle-demo",
		Short: "Mangle a built-in example struct and print the resulting symbol names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, line := range mangleDemoLines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	return cmd
}
