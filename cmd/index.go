package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "search index commands",
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	indexCmd.AddCommand(rebuildIndexCmd())
}

func rebuildIndexCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "rebuild",
		Short: "re-derive the whole search projection from the database",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(false)
			if err := e.reindex.RebuildAll(context.Background()); err != nil {
				logrus.Errorf("reindex failed: %v", err)
				return
			}
			color.Green("index rebuilt")
		},
	}

	return command
}
