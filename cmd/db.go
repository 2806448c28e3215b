package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/config"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Run: func(cmd *cobra.Command, args []string) {
			db := config.GetDb(config.LoadConfig())
			if err := model.Migrate(db); err != nil {
				panic(err)
			}
			if err := index.Migrate(db); err != nil {
				panic(err)
			}
		},
	}

	return command
}
