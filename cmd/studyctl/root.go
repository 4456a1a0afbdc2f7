package main

import (
	"encoding/json"
	"fmt"

	"neurostudy-be/internal/entity"

	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "studyctl",
		Short:         "Drive the study assistant from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.dbFlag, "db", "", "Database connection string (overrides DB_CONNECTION_STRING)")

	rootCmd.AddCommand(newSubjectsCommand())
	rootCmd.AddCommand(newUploadCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newChatCommand(ctx))
	rootCmd.AddCommand(newStudyCommand(ctx))
	rootCmd.AddCommand(newPromptCommand(ctx))
	rootCmd.AddCommand(newEventsCommand(ctx))

	return rootCmd
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func subjectFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "subject", "s", "", fmt.Sprintf("Subject, one of %v", entity.Subjects()))
	_ = cmd.MarkFlagRequired("subject")
}

func newSubjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List the study subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd, entity.Subjects())
		},
	}
}
