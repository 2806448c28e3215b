package cmd

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/service"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "reference switch commands",
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	mergeCmd.AddCommand(mergeJournalCmd())
	mergeCmd.AddCommand(mergeProceedingsCmd())
	mergeCmd.AddCommand(mergeConferenceCmd())
	mergeCmd.AddCommand(mergePersonCmd())
	mergeCmd.AddCommand(mergeOrgUnitCmd())
}

func mergeJournalCmd() *cobra.Command {
	var sourceID, targetID, publicationID string
	var all bool

	command := &cobra.Command{
		Use:   "journal",
		Short: "switch publications to another journal",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			ctx := context.Background()

			var err error
			if all {
				err = e.merge.SwitchAllPublicationsToOtherJournal(ctx, sourceID, targetID)
			} else {
				err = e.merge.SwitchJournalPublicationToOtherJournal(ctx, targetID, publicationID)
			}
			report(err)
		},
	}

	command.Flags().StringVarP(&sourceID, "source-id", "s", "", "source journal id")
	command.Flags().StringVarP(&targetID, "target-id", "t", "", "target journal id")
	command.Flags().StringVarP(&publicationID, "publication-id", "d", "", "publication id for a single switch")
	command.Flags().BoolVar(&all, "all", false, "switch every publication of the source journal")
	_ = command.MarkFlagRequired("target-id")

	return command
}

func mergeProceedingsCmd() *cobra.Command {
	var sourceID, targetID, publicationID string
	var all bool

	command := &cobra.Command{
		Use:   "proceedings",
		Short: "switch publications to another proceedings",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			ctx := context.Background()

			var err error
			if all {
				err = e.merge.SwitchAllPublicationsToOtherProceedings(ctx, sourceID, targetID)
			} else {
				err = e.merge.SwitchPublicationToOtherProceedings(ctx, targetID, publicationID)
			}
			report(err)
		},
	}

	command.Flags().StringVarP(&sourceID, "source-id", "s", "", "source proceedings id")
	command.Flags().StringVarP(&targetID, "target-id", "t", "", "target proceedings id")
	command.Flags().StringVarP(&publicationID, "publication-id", "d", "", "publication id for a single switch")
	command.Flags().BoolVar(&all, "all", false, "switch every publication of the source proceedings")
	_ = command.MarkFlagRequired("target-id")

	return command
}

func mergeConferenceCmd() *cobra.Command {
	var sourceID, targetID, proceedingsID string
	var all bool

	command := &cobra.Command{
		Use:   "conference",
		Short: "switch proceedings to another conference",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			ctx := context.Background()

			var err error
			if all {
				err = e.merge.SwitchAllProceedingsToOtherConference(ctx, sourceID, targetID)
			} else {
				err = e.merge.SwitchProceedingsToOtherConference(ctx, targetID, proceedingsID)
			}
			report(err)
		},
	}

	command.Flags().StringVarP(&sourceID, "source-id", "s", "", "source conference id")
	command.Flags().StringVarP(&targetID, "target-id", "t", "", "target conference id")
	command.Flags().StringVarP(&proceedingsID, "proceedings-id", "d", "", "proceedings id for a single switch")
	command.Flags().BoolVar(&all, "all", false, "switch every proceedings of the source conference")
	_ = command.MarkFlagRequired("target-id")

	return command
}

func mergePersonCmd() *cobra.Command {
	var sourceID, targetID, publicationID string
	var all bool

	command := &cobra.Command{
		Use:   "person",
		Short: "switch contributions to another person",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			ctx := context.Background()

			var err error
			if all {
				err = e.merge.SwitchAllPublicationsToOtherPerson(ctx, sourceID, targetID)
			} else {
				err = e.merge.SwitchPublicationToOtherPerson(ctx, sourceID, targetID, publicationID)
			}
			report(err)
		},
	}

	command.Flags().StringVarP(&sourceID, "source-id", "s", "", "source person id")
	command.Flags().StringVarP(&targetID, "target-id", "t", "", "target person id")
	command.Flags().StringVarP(&publicationID, "publication-id", "d", "", "publication id for a single switch")
	command.Flags().BoolVar(&all, "all", false, "switch every publication of the source person")
	_ = command.MarkFlagRequired("source-id")
	_ = command.MarkFlagRequired("target-id")

	return command
}

func mergeOrgUnitCmd() *cobra.Command {
	var sourceID, targetID, personID string
	var all bool

	command := &cobra.Command{
		Use:   "org-unit",
		Short: "switch employments to another organisation unit",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			ctx := context.Background()

			var err error
			if all {
				err = e.merge.SwitchAllPersonsToOtherOrganisationUnit(ctx, sourceID, targetID)
			} else {
				err = e.merge.SwitchPersonToOtherOrganisationUnit(ctx, sourceID, targetID, personID)
			}
			report(err)
		},
	}

	command.Flags().StringVarP(&sourceID, "source-id", "s", "", "source organisation unit id")
	command.Flags().StringVarP(&targetID, "target-id", "t", "", "target organisation unit id")
	command.Flags().StringVarP(&personID, "person-id", "d", "", "person id for a single switch")
	command.Flags().BoolVar(&all, "all", false, "switch every person employed at the source unit")
	_ = command.MarkFlagRequired("source-id")
	_ = command.MarkFlagRequired("target-id")

	return command
}

func report(err error) {
	if err == nil {
		color.Green("done")
		return
	}

	var bulkErr *service.BulkError
	if errors.As(err, &bulkErr) {
		color.Yellow("finished with failures: %v", bulkErr)
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		color.Red("not found: %v", err)
		return
	}

	logrus.Errorf("merge failed: %v", err)
}
