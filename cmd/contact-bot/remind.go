package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/contact-bot/internal/daemon"
	"github.com/username/contact-bot/internal/greeting"
	"github.com/username/contact-bot/pkg/dateutil"
	"go.uber.org/zap"
)

func remindCmd() *cobra.Command {
	var asDaemon bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Check upcoming birthdays once, or keep checking daily",
		Long:  "Report contacts to congratulate in the upcoming window. With --daemon the check runs every day at the configured daemon.daily_time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}

			planner := greeting.NewPlanner(cfg.Greetings.WindowDays, logger)

			if asDaemon {
				hour, minute := cfg.Daemon.GetDailyTime()
				logger.Info("Starting reminder daemon",
					zap.Int("hour", hour),
					zap.Int("minute", minute),
					zap.Bool("system_tray", cfg.Daemon.SystemTray))

				d := daemon.NewDaemon(store, planner, hour, minute, cfg.Daemon.SystemTray, logger)
				return d.Start()
			}

			book, err := store.Load()
			if err != nil {
				return err
			}

			upcoming := planner.Upcoming(book, dateutil.Today())
			if len(upcoming) == 0 {
				fmt.Println("No upcoming birthdays in the next week.")
				return nil
			}

			fmt.Println("Upcoming birthdays:")
			fmt.Println(daemon.FormatGreetings(upcoming))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asDaemon, "daemon", false, "Run as a daemon with a daily scheduled check")

	return cmd
}
