// Package main provides the CLI entry point for confschema, a tool that
// compiles a commented properties source and a categorization tree into an
// enriched configuration schema document.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/confschema/confschema/assemble"
	"github.com/confschema/confschema/export"
	"github.com/confschema/confschema/log"
	"github.com/confschema/confschema/profile"
	"github.com/confschema/confschema/properties"
	"github.com/confschema/confschema/schema"
	"github.com/confschema/confschema/verify"
	"github.com/confschema/confschema/version"
)

var (
	// ErrReadInput indicates an input file could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates the output could not be written.
	ErrWriteOutput = errors.New("write output")
	// ErrVerification indicates the document failed verification.
	ErrVerification = errors.New("verification failed")
)

func main() {
	rootCmd := newRootCmd()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	var profiler *profile.Profiler

	rootCmd := &cobra.Command{
		Use:   "confschema",
		Short: "Compile configuration schema documents",
		Long: `confschema compiles a line-oriented properties source and an externally
authored categorization tree into an enriched configuration schema document,
verifies compiled documents, and exports them as JSON Schema.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			profiler = profileCfg.NewProfiler()

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newExportCmd())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		profileCfg.RegisterCompletions,
	} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	return rootCmd
}

func newCompileCmd() *cobra.Command {
	cfg := assemble.NewConfig()

	var (
		output string
		indent int
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "compile [flags] <properties> <categorization>",
		Short: "Compile a schema document from a properties source and a categorization tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			src, err := loadSource(args[0])
			if err != nil {
				return err
			}

			catData, err := readInput(args[1])
			if err != nil {
				return err
			}

			cat, err := schema.LoadCategorization(catData)
			if err != nil {
				return err
			}

			doc, diags := cfg.NewAssembler().Assemble(cat, src)
			for _, d := range diags {
				slog.Warn("default value not shaped",
					slog.String("key", d.Key),
					slog.String("raw", d.RawValue),
					slog.Any("error", d.Err))
			}

			if check {
				report := verify.Run(doc, src)
				if !report.OK() {
					renderReport(os.Stderr, report)

					return fmt.Errorf("%w: %d finding(s)", ErrVerification, len(report.Findings))
				}
			}

			out, err := marshalDocument(doc, format, indent)
			if err != nil {
				return err
			}

			return writeOutput(output, out)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output file path (- for stdout)")
	cmd.Flags().IntVar(&indent, "indent", 2,
		"JSON indentation spaces")
	cmd.Flags().StringVar(&format, "format", "json",
		"output format, one of: json, yaml")
	cmd.Flags().BoolVar(&check, "check", false,
		"verify the compiled document and fail on findings")

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	formatErr := cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	if formatErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", formatErr)
	}

	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [flags] <document> <properties>",
		Short: "Verify a compiled schema document against its properties source",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			src, err := loadSource(args[1])
			if err != nil {
				return err
			}

			report := verify.Run(doc, src)

			slog.Info("verification complete",
				slog.Int("configs", report.ConfigCount),
				slog.Int("comments", report.CommentCount),
				slog.Int("findings", len(report.Findings)))

			if !report.OK() {
				renderReport(cmd.OutOrStdout(), report)

				return fmt.Errorf("%w: %d finding(s)", ErrVerification, len(report.Findings))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")

			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	cfg := export.NewConfig()

	var (
		output string
		indent int
	)

	cmd := &cobra.Command{
		Use:   "export [flags] <document>",
		Short: "Export a compiled schema document as JSON Schema (Draft 7)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			exported := cfg.NewExporter().Export(doc)

			out, err := json.MarshalIndent(exported, "", strings.Repeat(" ", indent))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			out = append(out, '\n')

			return writeOutput(output, out)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output file path (- for stdout)")
	cmd.Flags().IntVar(&indent, "indent", 2,
		"JSON indentation spaces")

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

// loadSource reads and parses a properties source, logging any parse
// diagnostics.
func loadSource(path string) (*properties.Source, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	src := properties.Parse(data)
	for _, d := range src.Diagnostics() {
		slog.Warn("skipped source line",
			slog.Int("line", d.Line),
			slog.String("text", d.Text),
			slog.String("reason", d.Reason))
	}

	return src, nil
}

// loadDocument reads and parses a compiled schema document.
func loadDocument(path string) (*schema.Document, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	return schema.LoadDocument(data)
}

// marshalDocument renders doc in the requested output format.
func marshalDocument(doc *schema.Document, format string, indent int) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	switch format {
	case "json":
		return append(out, '\n'), nil

	case "yaml":
		y, err := yaml.JSONToYAML(out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return y, nil
	}

	return nil, fmt.Errorf("%w: unknown format %q", ErrWriteOutput, format)
}

// renderReport prints verification findings as a table.
func renderReport(w io.Writer, report *verify.Report) {
	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"Check", "Location", "Message"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Right:  tw.State(1),
					Top:    tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
	)

	for _, f := range report.Findings {
		err := table.Append([]string{string(f.Check), f.Location, f.Message})
		if err != nil {
			fmt.Fprintf(os.Stderr, "append row: %v\n", err)

			return
		}
	}

	err := table.Render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "render table: %v\n", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
