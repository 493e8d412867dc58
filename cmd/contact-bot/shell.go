package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/contact-bot/internal/addressbook"
	"github.com/username/contact-bot/internal/greeting"
	"github.com/username/contact-bot/pkg/dateutil"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive assistant session",
		Long:  "Run an interactive read-eval loop over the address book. The book is saved when the session ends.",
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

			fmt.Println("Welcome to the assistant bot!")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("Enter a command: ")
				if !scanner.Scan() {
					fmt.Println("\nGood bye!")
					break
				}

				command, cmdArgs := parseInput(scanner.Text())
				if command == "" {
					continue
				}

				if command == "close" || command == "exit" {
					fmt.Println("Good bye!")
					break
				}

				fmt.Println(dispatch(command, cmdArgs, book, cfg.Greetings.WindowDays))
			}

			return store.Save(book)
		},
	}
}

// parseInput splits a raw input line into a lowercase command and its arguments
func parseInput(line string) (string, []string) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// dispatch executes one shell command against the in-memory book and
// returns the line to print. Domain errors are rendered through
// userMessage; the loop itself never fails.
func dispatch(command string, args []string, book *addressbook.AddressBook, windowDays int) string {
	switch command {
	case "hello":
		return "How can I help you?"

	case "add":
		if len(args) < 2 {
			return "Error: Please provide name and phone number. Usage: add [name] [phone]"
		}
		name, phone := args[0], args[1]
		record := book.Find(name)
		message := "Contact updated."
		if record == nil {
			record = addressbook.NewRecord(name)
			book.AddRecord(record)
			message = "Contact added."
		}
		if err := record.AddPhone(phone); err != nil {
			return "Error: " + userMessage(err)
		}
		return message

	case "change":
		if len(args) < 3 {
			return "Error: Please provide name, old phone and new phone. Usage: change [name] [old_phone] [new_phone]"
		}
		record := book.Find(args[0])
		if record == nil {
			return "Error: " + userMessage(addressbook.ErrContactNotFound)
		}
		if err := record.EditPhone(args[1], args[2]); err != nil {
			return "Error: " + userMessage(err)
		}
		return "Contact updated."

	case "phone":
		if len(args) < 1 {
			return "Error: Please provide contact name. Usage: phone [name]"
		}
		record := book.Find(args[0])
		if record == nil {
			return "Error: " + userMessage(addressbook.ErrContactNotFound)
		}
		if len(record.Phones) == 0 {
			return fmt.Sprintf("No phones saved for %s.", args[0])
		}
		return joinPhones(record)

	case "all":
		if book.Len() == 0 {
			return "No contacts saved."
		}
		lines := []string{}
		for _, record := range book.List() {
			lines = append(lines, record.String())
		}
		return strings.Join(lines, "\n")

	case "delete":
		if len(args) < 1 {
			return "Error: Please provide contact name. Usage: delete [name]"
		}
		book.Delete(args[0])
		return "Contact deleted."

	case "add-birthday":
		if len(args) < 2 {
			return "Error: Please provide name and birthday. Usage: add-birthday [name] [DD.MM.YYYY]"
		}
		record := book.Find(args[0])
		if record == nil {
			return "Error: " + userMessage(addressbook.ErrContactNotFound)
		}
		if err := record.SetBirthday(args[1]); err != nil {
			return "Error: " + userMessage(err)
		}
		return "Birthday added."

	case "show-birthday":
		if len(args) < 1 {
			return "Error: Please provide contact name. Usage: show-birthday [name]"
		}
		record := book.Find(args[0])
		if record == nil {
			return "Error: " + userMessage(addressbook.ErrContactNotFound)
		}
		if record.Birthday == nil {
			return "Birthday not set for this contact."
		}
		return record.Birthday.String()

	case "birthdays":
		planner := greeting.NewPlanner(windowDays, logger)
		upcoming := planner.Upcoming(book, dateutil.Today())
		if len(upcoming) == 0 {
			return "No upcoming birthdays in the next week."
		}
		lines := []string{"Upcoming birthdays:"}
		for _, g := range upcoming {
			lines = append(lines, fmt.Sprintf("%s: %s", g.Name, g.CongratulationDate))
		}
		return strings.Join(lines, "\n")

	default:
		return "Invalid command."
	}
}
