package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/theimaginaryfoundation/diary-lens/analysis"
	"github.com/theimaginaryfoundation/diary-lens/analysis/fileutils"
)

func newSchemaCommand() *cobra.Command {
	var modeFlag string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the report requested for a mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := analysis.ParseMode(modeFlag)
			if err != nil {
				return usageError(err)
			}
			_, schema := analysis.ResponseSchema(mode)
			return fileutils.WriteJSON(cmd.OutOrStdout(), schema)
		},
	}
	cmd.Flags().StringVar(&modeFlag, "mode", "cbt", "Analysis mode: cbt or mbt")
	return cmd
}

func newEligibilityCommand(d deps) *cobra.Command {
	var lastFlag string
	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Report whether a new analysis may run given the last analysis date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var last *time.Time
			if lastFlag != "" {
				t, err := analysis.ParseTimestamp(lastFlag)
				if err != nil {
					return usageError(err)
				}
				last = &t
			}
			return fileutils.WriteJSON(cmd.OutOrStdout(), analysis.CheckEligibility(last, d.now()))
		},
	}
	cmd.Flags().StringVar(&lastFlag, "last", "", "Date of the previous analysis (RFC 3339 or YYYY-MM-DD); empty if none")
	return cmd
}
