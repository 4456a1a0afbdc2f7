package main

import (
	"fmt"
	"strings"

	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/entity"
	"neurostudy-be/pkg/rag/prompt"

	"github.com/spf13/cobra"
)

func newChatCommand(ctx *commandContext) *cobra.Command {
	var (
		subject   string
		focus     int
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "chat QUESTION...",
		Short: "Ask a question grounded in a subject's documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := ctx.ensureContainer()
			if err != nil {
				return err
			}

			res, err := container.ChatService.Chat(cmd.Context(), &dto.ChatRequest{
				Message:    strings.Join(args, " "),
				Subject:    subject,
				FocusLevel: &focus,
				SessionId:  sessionID,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}

	subjectFlag(cmd, &subject)
	cmd.Flags().IntVarP(&focus, "focus", "f", prompt.DefaultFocusLevel, "Focus level 0-100 (<40 simplified, >70 technical)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Existing chat session id")
	return cmd
}

func newStudyCommand(ctx *commandContext) *cobra.Command {
	var (
		subject string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Generate 5 multiple-choice and 3 short-answer questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := ctx.ensureContainer()
			if err != nil {
				return err
			}

			req := &dto.StudyRequest{Subject: subject}
			if cmd.Flags().Changed("strict") {
				req.Strict = &strict
			}

			res, err := container.StudyService.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}

	subjectFlag(cmd, &subject)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of returning an empty session on malformed output")
	return cmd
}

// newPromptCommand prints the exact prompt a chat or study request would send.
func newPromptCommand(ctx *commandContext) *cobra.Command {
	var (
		subject string
		focus   int
	)

	cmd := &cobra.Command{
		Use:       "prompt chat|quiz [QUESTION...]",
		Short:     "Print the prompt that would be sent to the model",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"chat", "quiz"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := entity.ParseSubject(subject)
			if err != nil {
				return err
			}
			container, err := ctx.ensureContainer()
			if err != nil {
				return err
			}

			var text string
			switch args[0] {
			case "chat":
				corpusText, _, err := container.Assembler.AssembleChat(cmd.Context(), parsed)
				if err != nil {
					return err
				}
				text = prompt.BuildChat(parsed, corpusText, strings.Join(args[1:], " "), focus)
			case "quiz":
				corpusText, _, err := container.Assembler.AssembleQuiz(cmd.Context(), parsed)
				if err != nil {
					return err
				}
				text = prompt.BuildQuiz(parsed, corpusText)
			default:
				return fmt.Errorf("unknown prompt kind %q, want chat or quiz", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	subjectFlag(cmd, &subject)
	cmd.Flags().IntVarP(&focus, "focus", "f", prompt.DefaultFocusLevel, "Focus level 0-100")
	return cmd
}
