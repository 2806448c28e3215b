package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "duplicate suggestion commands",
}

func init() {
	rootCmd.AddCommand(dedupCmd)
	dedupCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	dedupCmd.AddCommand(scanCmd())
	dedupCmd.AddCommand(listSuggestionsCmd())
	dedupCmd.AddCommand(flagNotDuplicateCmd())
	dedupCmd.AddCommand(deleteSuggestionCmd())
}

func scanCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "scan",
		Short: "scan the document index for duplicate candidates",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			started, err := e.dedup.StartScan(context.Background())
			if err != nil {
				logrus.Errorf("scan failed: %v", err)
				return
			}
			if !started {
				color.Yellow("a scan is already running")
				return
			}
			color.Green("scan finished")
		},
	}

	return command
}

func listSuggestionsCmd() *cobra.Command {
	var page int
	var size int

	command := &cobra.Command{
		Use:   "list",
		Short: "list open duplicate suggestions",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			views, total, err := e.dedup.Suggestions(context.Background(), page, size)
			if err != nil {
				logrus.Errorf("listing suggestions: %v", err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Suggestion", "Left", "Right"})
			for _, view := range views {
				table.Append([]string{view.ID, entryLabel(view.LeftID, view.Left), entryLabel(view.RightID, view.Right)})
			}
			table.Render()

			fmt.Printf("page %d, %d open suggestions in total\n", page, total)
		},
	}

	command.Flags().IntVarP(&page, "page", "p", 0, "page number")
	command.Flags().IntVarP(&size, "size", "n", 10, "page size")

	return command
}

func flagNotDuplicateCmd() *cobra.Command {
	var suggestionID string

	command := &cobra.Command{
		Use:   "flag",
		Short: "flag a suggestion as not a duplicate, blacklisting the pair",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			if err := e.dedup.FlagNotDuplicate(context.Background(), suggestionID); err != nil {
				logrus.Errorf("flagging suggestion: %v", err)
				return
			}
			color.Green("pair blacklisted")
		},
	}

	command.Flags().StringVarP(&suggestionID, "suggestion-id", "s", "", "suggestion id")
	_ = command.MarkFlagRequired("suggestion-id")

	return command
}

func deleteSuggestionCmd() *cobra.Command {
	var suggestionID string

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a suggestion without blacklisting the pair",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			if err := e.dedup.DeleteSuggestion(context.Background(), suggestionID); err != nil {
				logrus.Errorf("deleting suggestion: %v", err)
				return
			}
			color.Green("suggestion deleted")
		},
	}

	command.Flags().StringVarP(&suggestionID, "suggestion-id", "s", "", "suggestion id")
	_ = command.MarkFlagRequired("suggestion-id")

	return command
}

func entryLabel(id string, entry *index.DocumentEntry) string {
	if entry == nil {
		return id
	}

	return fmt.Sprintf("%s (%d)", entry.Title, entry.Year)
}
