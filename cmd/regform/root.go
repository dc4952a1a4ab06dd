package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the regform CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regform",
		Short: "Reactive registration form",
		Long: `regform serves a registration form whose field validation runs as a
reactive pipeline: inputs are debounced, validated per field, the password
confirmation is cross-checked, and the submit control is gated on all three.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewTUICmd())

	return cmd
}
