package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(source ContainerSource) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect SmartCMD history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(source),
		newHistoryOpenCommand(source),
		newHistorySearchCommand(source),
	)

	return historyCmd
}

func newHistoryListCommand(source ContainerSource) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the history log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := source(cmd.Context())
			if err != nil {
				return err
			}
			if container.HistoryLog == nil {
				return errors.New(ErrHistoryLogUnavailable)
			}
			return listHistory(cmd.OutOrStdout(), container.HistoryLog, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Show only the last N entries (0 for all)")
	return cmd
}

func newHistoryOpenCommand(source ContainerSource) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the history log with the system viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := source(cmd.Context())
			if err != nil {
				return err
			}
			if container.HistoryLog == nil {
				return errors.New(ErrHistoryLogUnavailable)
			}
			return openHistory(cmd, container.HistoryLog)
		},
	}
}

func newHistorySearchCommand(source ContainerSource) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search indexed history for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := source(cmd.Context())
			if err != nil {
				return err
			}
			defer container.Close()
			index, err := container.HistoryIndex()
			if err != nil {
				return err
			}
			return searchHistory(cmd.OutOrStdout(), index, args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistorySearchLimit, "Limit search results")
	return cmd
}

func openHistory(cmd *cobra.Command, log ports.HistoryLog) error {
	err := log.Show(cmd.Context())
	if errors.Is(err, domain.ErrNoHistory) {
		fmt.Fprintln(cmd.OutOrStdout(), MsgNoHistory)
		return nil
	}
	return err
}

func listHistory(out io.Writer, log ports.HistoryLog, limit int) error {
	lines, err := log.Lines()
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(lines) == 0 {
		fmt.Fprintln(out, MsgNoHistory)
		return nil
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func searchHistory(out io.Writer, index ports.HistoryIndex, keyword string, limit int) error {
	entries, err := index.Search(keyword, limit)
	if err != nil {
		return fmt.Errorf("search history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoMatchingEntry)
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s | %s%s%s\n",
			entry.Timestamp.Local().Format(domain.TimestampFormat),
			entry.Query,
			domain.HistoryEntrySeparator,
			entry.Command)
	}
	return nil
}
