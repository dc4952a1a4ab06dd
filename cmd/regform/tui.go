package main

import (
	"errors"

	"github.com/spf13/cobra"

	regform "github.com/goliatone/go-regform"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
)

// NewTUICmd creates the tui subcommand.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the registration form as terminal prompts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow, err := regform.NewFlow(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := flow.Run(cmd.Context()); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					return nil
				}
				return err
			}
			return nil
		},
	}
}
