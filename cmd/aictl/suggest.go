package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/bootstrap"
)

const noSuggestion = "No suggestion: the active provider could not be reached"

func (c *cli) estimateCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "estimate [title]",
		Short: "Estimate how long a task takes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				out, err := s.UseCase.EstimateDuration(cmd.Context(), assistant.EstimateInput{Title: title, Notes: notes})
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if !out.Suggested {
					fmt.Fprintln(w, noSuggestion)
					return nil
				}
				fmt.Fprintf(w, "%d minutes (confidence: %s)\n", out.Minutes, out.Confidence)
				if out.Reasoning != "" {
					fmt.Fprintln(w, out.Reasoning)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Task notes")
	return cmd
}

func (c *cli) analyzeCmd() *cobra.Command {
	var (
		notes  string
		taskID string
	)

	cmd := &cobra.Command{
		Use:   "analyze [title]",
		Short: "Run a full analysis of a task",
		Long:  "Analyzes an inline task, or a stored one with --task.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if taskID == "" && len(args) == 0 {
				return fmt.Errorf("a title or --task is required")
			}
			in := assistant.AnalyzeInput{
				TaskID: taskID,
				Task:   assistant.TaskInput{Title: strings.Join(args, " "), Notes: notes},
			}
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				out, err := s.UseCase.Analyze(cmd.Context(), in)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if !out.Suggested {
					fmt.Fprintln(w, noSuggestion)
					return nil
				}
				a := out.Analysis
				category := string(a.Category)
				if a.CustomCategoryName != "" {
					category = a.CustomCategoryName
				}
				fmt.Fprintf(w, "Priority:    %s\n", a.SuggestedPriority)
				fmt.Fprintf(w, "Category:    %s\n", category)
				fmt.Fprintf(w, "Duration:    %d minutes\n", a.EstimatedMinutes)
				fmt.Fprintf(w, "Time of day: %s\n", a.BestTimeOfDay)
				if a.RefinedTitle != "" {
					fmt.Fprintf(w, "Title:       %s\n", a.RefinedTitle)
				}
				for _, st := range a.Subtasks {
					fmt.Fprintf(w, "  - %s\n", st)
				}
				for _, tip := range a.Tips {
					fmt.Fprintf(w, "Tip: %s\n", tip)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Task notes")
	cmd.Flags().StringVar(&taskID, "task", "", "Stored task id")
	return cmd
}
