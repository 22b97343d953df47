package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stellarview/apod/internal/prompt"
)

// inceptionYear is the first year the feed has data for.
const inceptionYear = 1995

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a date interactively and fetch it",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := prompt.Default.Select(prompt.SelectConfig{
			Title:   "Year",
			Options: yearOptions(),
		})
		if err != nil {
			return err
		}

		month, err := prompt.Default.Select(prompt.SelectConfig{
			Title:   "Month",
			Options: monthOptions(),
		})
		if err != nil {
			return err
		}

		day, err := prompt.Default.Select(prompt.SelectConfig{
			Title:   "Day",
			Options: dayOptions(),
		})
		if err != nil {
			return err
		}

		// Impossible combinations (Feb 31) are not checked here: the
		// service rejects them and that surfaces as a normal fetch
		// failure.
		return fetchAndShow(cmd.Context(), year+"-"+month+"-"+day)
	},
}

func yearOptions() []prompt.SelectOption {
	current := time.Now().Year()
	opts := make([]prompt.SelectOption, 0, current-inceptionYear+1)
	for y := current; y >= inceptionYear; y-- {
		v := fmt.Sprintf("%d", y)
		opts = append(opts, prompt.SelectOption{Label: v, Value: v})
	}
	return opts
}

func monthOptions() []prompt.SelectOption {
	opts := make([]prompt.SelectOption, 0, 12)
	for m := 1; m <= 12; m++ {
		opts = append(opts, prompt.SelectOption{
			Label: monthNames[m-1],
			Value: fmt.Sprintf("%02d", m),
		})
	}
	return opts
}

func dayOptions() []prompt.SelectOption {
	opts := make([]prompt.SelectOption, 0, 31)
	for d := 1; d <= 31; d++ {
		v := fmt.Sprintf("%02d", d)
		opts = append(opts, prompt.SelectOption{Label: v, Value: v})
	}
	return opts
}
