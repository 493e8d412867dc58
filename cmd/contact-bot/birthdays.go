package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/contact-bot/internal/addressbook"
	"github.com/username/contact-bot/internal/greeting"
	"github.com/username/contact-bot/pkg/dateutil"
	"go.uber.org/zap"
)

func addBirthdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-birthday NAME DD.MM.YYYY",
		Short: "Set a contact's birthday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, birthday := args[0], args[1]

			return withBook(func(book *addressbook.AddressBook) error {
				record := book.Find(name)
				if record == nil {
					return errors.New(userMessage(addressbook.ErrContactNotFound))
				}

				if err := record.SetBirthday(birthday); err != nil {
					return errors.New(userMessage(err))
				}

				logger.Info("Birthday set",
					zap.String("name", name),
					zap.String("birthday", birthday))
				fmt.Println("Birthday added.")
				return nil
			})
		},
	}
}

func showBirthdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-birthday NAME",
		Short: "Show a contact's birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			store, _, err := openStore()
			if err != nil {
				return err
			}
			book, err := store.Load()
			if err != nil {
				return err
			}

			record := book.Find(name)
			if record == nil {
				return errors.New(userMessage(addressbook.ErrContactNotFound))
			}

			if record.Birthday == nil {
				fmt.Println("Birthday not set for this contact.")
				return nil
			}

			fmt.Println(record.Birthday)
			return nil
		},
	}
}

func birthdaysCmd() *cobra.Command {
	var onStr string
	var days int

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show whom to congratulate in the upcoming week",
		Long:  "List contacts with birthdays in the upcoming window, with weekend birthdays shifted to the following Monday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			book, err := store.Load()
			if err != nil {
				return err
			}

			today := dateutil.Today()
			if onStr != "" {
				parsed, err := time.Parse(addressbook.BirthdayFormat, onStr)
				if err != nil {
					return fmt.Errorf("invalid --on date, use DD.MM.YYYY: %w", err)
				}
				today = parsed
			}

			windowDays := cfg.Greetings.WindowDays
			if cmd.Flags().Changed("days") {
				windowDays = days
			}

			planner := greeting.NewPlanner(windowDays, logger)
			upcoming := planner.Upcoming(book, today)

			if len(upcoming) == 0 {
				fmt.Println("No upcoming birthdays in the next week.")
				return nil
			}

			fmt.Println("Upcoming birthdays:")
			for _, g := range upcoming {
				fmt.Printf("%s: %s\n", g.Name, g.CongratulationDate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&onStr, "on", "", "Reference date (DD.MM.YYYY, default: today)")
	cmd.Flags().IntVar(&days, "days", greeting.DefaultWindowDays, "Window size in days")

	return cmd
}
