package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HenrykHaniewicz/base-converter/internal/history"
	"github.com/HenrykHaniewicz/base-converter/internal/radix"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	FromBase  int
	ToBase    int
	Precision int
	All       bool
	AllPos    bool
	Record    bool
	Database  string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <number>",
		Short: "Convert a number between bases",
		Long: `Convert a number from a source base to a target base.

The number may carry a fraction and, for positive source bases, a sign.
Digits above 9 use the letters A-Z (case-insensitive). Repeating fractional
expansions are detected and rendered with the cycle in parentheses.

Negative numbers need the flag terminator: basecv convert --to 16 -- -255

Example:
  basecv convert 42
  basecv convert --to 16 -- -255
  basecv convert FF.A8 --from 16 --to 10
  basecv convert 42 --all
  basecv convert 0.1 --to 3 --precision 20`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.FromBase, "from", 10, "source base (magnitude 2-36)")
	cmd.Flags().IntVar(&opts.ToBase, "to", 2, "target base (magnitude 2-36)")
	cmd.Flags().IntVar(&opts.Precision, "precision", 50, "maximum fractional digits")
	cmd.Flags().BoolVar(&opts.All, "all", false, "convert to every supported base (-36..-2, 2..36)")
	cmd.Flags().BoolVar(&opts.AllPos, "allpos", false, "convert to every positive base (2..36)")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "append the conversion to the history database")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to history database (required with --record)")

	return cmd
}

// ConversionReport is the result of a single conversion.
type ConversionReport struct {
	Input     string `json:"input"`
	FromBase  int    `json:"from_base"`
	ToBase    int    `json:"to_base"`
	Precision int    `json:"precision"`
	Output    string `json:"output"`
	Exact     bool   `json:"exact"`
}

// String renders the text output: the input echoed in its source base,
// then the converted result.
func (r *ConversionReport) String() string {
	return fmt.Sprintf("Number in base %d: %s\nNumber in base %d: %s",
		r.FromBase, r.Input, r.ToBase, r.Output)
}

// SweepReport is the result of an all-bases sweep.
type SweepReport struct {
	Input     string       `json:"input"`
	FromBase  int          `json:"from_base"`
	Precision int          `json:"precision"`
	Results   []SweepEntry `json:"results"`
}

// SweepEntry is one target base of a sweep.
type SweepEntry struct {
	Base   int    `json:"base"`
	Output string `json:"output"`
	Exact  bool   `json:"exact"`
}

// String renders the sweep as a table, one line per target base.
func (r *SweepReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original number in base %d: %s\n", r.FromBase, r.Input)
	b.WriteString(strings.Repeat("-", 40))
	b.WriteByte('\n')
	for _, e := range r.Results {
		fmt.Fprintf(&b, "Number in base %3d: %s\n", e.Base, e.Output)
	}
	b.WriteString(strings.Repeat("-", 40))
	return b.String()
}

func runConvert(opts *ConvertOptions, input string, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.All && opts.AllPos {
		return NewExitError(ExitCommandError, "--all and --allpos are mutually exclusive")
	}
	if opts.Record && opts.Database == "" {
		return NewExitError(ExitCommandError, "--record requires --db")
	}

	// Echo the input as parsed, not as typed: "ff.a8" prints as "FF.A8".
	numeral, err := radix.ParseNumeral(input, opts.FromBase)
	if err != nil {
		_ = f.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
	echo := numeral.String()

	if opts.All || opts.AllPos {
		return runSweep(opts, echo, f)
	}

	output, err := radix.ConvertNumeral(numeral, opts.ToBase, opts.Precision)
	if err != nil && !radix.IsPrecisionExceeded(err) {
		_ = f.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
	exact := err == nil
	if !exact {
		slog.Debug("fractional expansion truncated",
			"input", echo, "to_base", opts.ToBase, "precision", opts.Precision)
	}

	report := &ConversionReport{
		Input:     echo,
		FromBase:  opts.FromBase,
		ToBase:    opts.ToBase,
		Precision: opts.Precision,
		Output:    output,
		Exact:     exact,
	}
	if opts.Record {
		if err := recordConversion(cmd.Context(), opts.Database, report); err != nil {
			return WrapExitError(ExitCommandError, "failed to record conversion", err)
		}
	}
	return f.Success(report)
}

func runSweep(opts *ConvertOptions, echo string, f *OutputFormatter) error {
	results, err := radix.AllBases(echo, opts.FromBase, opts.Precision, opts.AllPos)
	if err != nil {
		_ = f.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	report := &SweepReport{Input: echo, FromBase: opts.FromBase, Precision: opts.Precision}
	for _, res := range results {
		report.Results = append(report.Results, SweepEntry{Base: res.Base, Output: res.Output, Exact: res.Exact})
	}
	return f.Success(report)
}

func recordConversion(ctx context.Context, dbPath string, report *ConversionReport) error {
	st, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing history database", "error", closeErr)
		}
	}()

	return st.Record(ctx, history.Conversion{
		Input:     report.Input,
		FromBase:  report.FromBase,
		ToBase:    report.ToBase,
		Precision: report.Precision,
		Output:    report.Output,
		Exact:     report.Exact,
	})
}
