package main

import (
	"fmt"
	"os"
	"path/filepath"

	"neurostudy-be/internal/constant"
	"neurostudy-be/internal/dto"

	"github.com/spf13/cobra"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Index plain-text files for a subject",
		Long:  "Index plain-text files for a subject. Several files are stored in one transaction.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := ctx.ensureContainer()
			if err != nil {
				return err
			}

			docs := make([]dto.UploadDocumentRequest, 0, len(args))
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				docs = append(docs, dto.UploadDocumentRequest{
					Subject:  subject,
					Filename: filepath.Base(path),
					Content:  string(content),
					Metadata: map[string]interface{}{"source": "studyctl", "bytes": len(content)},
				})
			}

			res, err := container.DocumentService.UploadBatch(cmd.Context(), &dto.UploadBatchRequest{Documents: docs})
			if err != nil {
				return err
			}
			for _, d := range docs {
				fmt.Fprintf(cmd.ErrOrStderr(), constant.UploadSuccessMessage+"\n", d.Filename, subject)
			}
			return writeJSON(cmd, res)
		},
	}

	subjectFlag(cmd, &subject)
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find documents whose filename or content contains QUERY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := ctx.ensureContainer()
			if err != nil {
				return err
			}

			res, err := container.DocumentService.Search(cmd.Context(), subject, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}

	subjectFlag(cmd, &subject)
	return cmd
}
