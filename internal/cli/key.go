package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellarview/apod/internal/config"
	"github.com/stellarview/apod/internal/display"
	"github.com/stellarview/apod/internal/prompt"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the NASA API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, source := config.FindAPIKey()

		if jsonOutput {
			return display.OutputJSON(outWriter, struct {
				Configured bool   `json:"configured"`
				Source     string `json:"source"`
				Path       string `json:"path,omitempty"`
			}{source != config.KeySourceDemo, source, keyPathFor(source)})
		}

		switch source {
		case config.KeySourceEnv:
			out("✓ API key configured (%s environment variable)\n", config.EnvAPIKey)
		case config.KeySourceFile:
			out("✓ API key configured\n")
			out("  Location: %s\n", config.APIKeyPath())
		default:
			out("✗ No API key configured — using %s (heavily rate-limited)\n", config.DemoKey)
			out("\nGet a free key at https://api.nasa.gov, then run 'apod key set'\n")
		}
		return nil
	},
}

func keyPathFor(source string) string {
	if source == config.KeySourceFile {
		return config.APIKeyPath()
	}
	return ""
}

var keySetCmd = &cobra.Command{
	Use:   "set [value]",
	Short: "Save an API key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value string
		if len(args) > 0 {
			value = args[0]
		} else {
			var err error
			value, err = prompt.Default.Input(prompt.InputConfig{
				Title:       "NASA API key",
				Placeholder: "paste key here",
				Validate:    prompt.ValidateNotEmpty,
			})
			if err != nil {
				return err
			}
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("API key cannot be empty")
		}

		if err := config.SaveAPIKey(value); err != nil {
			return err
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ActionResultJSON{Success: true, Message: "API key saved"})
		}
		out("✓ API key saved to %s\n", config.APIKeyPath())
		return nil
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the saved API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
				Title: "Delete the saved API key?",
			})
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if config.DeleteAPIKey() {
			out("✓ API key deleted\n")
		} else {
			out("No saved API key found\n")
		}
		return nil
	},
}

func init() {
	keyDeleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyDeleteCmd)
}
