package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellarview/apod/internal/config"
	"github.com/stellarview/apod/internal/display"
	"github.com/stellarview/apod/internal/prompt"
	"github.com/stellarview/apod/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the local CSV history",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get().CacheFile()
		ds, err := store.Load(path)
		if err != nil {
			return err
		}

		first, last := ds.DateRange()

		if jsonOutput {
			return display.OutputJSON(outWriter, struct {
				Path  string `json:"path"`
				Rows  int    `json:"rows"`
				First string `json:"first_date,omitempty"`
				Last  string `json:"last_date,omitempty"`
			}{path, len(ds), first, last})
		}

		if quiet {
			out("%d\n", len(ds))
			return nil
		}

		out("Cache file: %s\n", path)
		out("Entries:    %d\n", len(ds))
		if len(ds) > 0 {
			out("Dates:      %s to %s\n", first, last)
		}
		return nil
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := store.Load(config.Get().CacheFile())
		if err != nil {
			return err
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, ds)
		}

		if len(ds) == 0 {
			outln("Cache is empty")
			return nil
		}

		if quiet {
			for _, e := range ds {
				out("%s\n", e.Date)
			}
			return nil
		}

		var rows [][]string
		for _, e := range ds {
			rows = append(rows, []string{e.Date, truncate(e.Title, 48), e.MediaType})
		}
		outln(display.NewTableWithOptions(
			[]string{"Date", "Title", "Media"},
			rows,
			display.TableOptions{Title: "Cached entries", NoColor: noColor, Width: display.TerminalWidth()},
		))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the CSV history",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get().CacheFile()

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
				Title:       "Delete the cached history?",
				Description: path,
			})
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		msg := "Cache cleared"
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("clearing cache: %w", err)
			}
			msg = "Cache was already empty"
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ActionResultJSON{Success: true, Message: msg})
		}
		out("✓ %s\n", msg)
		return nil
	},
}

// truncate shortens s to at most n runes, ending with an ellipsis. Counting
// runes keeps a multibyte title from being cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	cacheClearCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
