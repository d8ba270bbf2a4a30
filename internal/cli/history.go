package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HenrykHaniewicz/base-converter/internal/history"
)

// HistoryOptions holds flags for the history subcommands.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command group.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect conversions recorded with convert --record",
	}
	cmd.AddCommand(newHistoryListCommand(rootOpts))
	cmd.AddCommand(newHistoryClearCommand(rootOpts))
	return cmd
}

func newHistoryListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List recent recorded conversions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(opts, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to history database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum entries to list")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func newHistoryClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "clear",
		Short:         "Delete all recorded conversions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(opts, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to history database (required)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

// HistoryReport is the list payload.
type HistoryReport struct {
	Entries []history.Conversion `json:"entries"`
}

// String renders one line per recorded conversion, newest first.
func (r *HistoryReport) String() string {
	if len(r.Entries) == 0 {
		return "no recorded conversions"
	}
	var b strings.Builder
	for i, e := range r.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s (base %d) -> %s (base %d)",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Input, e.FromBase, e.Output, e.ToBase)
	}
	return b.String()
}

func runHistoryList(opts *HistoryOptions, cmd *cobra.Command) error {
	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	st, err := history.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer st.Close()

	entries, err := st.Recent(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}
	return f.Success(&HistoryReport{Entries: entries})
}

func runHistoryClear(opts *HistoryOptions, cmd *cobra.Command) error {
	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	st, err := history.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer st.Close()

	removed, err := st.Clear(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to clear history", err)
	}
	return f.Success(&clearReport{Removed: removed})
}

type clearReport struct {
	Removed int64 `json:"removed"`
}

func (r *clearReport) String() string {
	return fmt.Sprintf("removed %d recorded conversions", r.Removed)
}
