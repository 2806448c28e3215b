package cmd

import (
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/jobs"
)

func init() {
	rootCmd.AddCommand(runCmd())
}

func runCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "run",
		Short: "run the background scheduler (duplicate scan, reindex sweep)",
		Run: func(cmd *cobra.Command, args []string) {
			e := newEnv(true)

			scheduler := jobs.NewScheduler([]jobs.Task{
				jobs.NewDuplicateScanTask(e.cnf.ScanSchedule, e.dedup),
				jobs.NewReindexTask(e.cnf.ReindexSchedule, e.reindex),
			})
			scheduler.Start()
			defer scheduler.Stop()

			logrus.Infof("scheduler started, scan %s, reindex %s", e.cnf.ScanSchedule, e.cnf.ReindexSchedule)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, unix.SIGTERM)
			<-quit

			logrus.Info("shutting down")
		},
	}

	return command
}
