package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/contact-bot/internal/addressbook"
	"go.uber.org/zap"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME PHONE",
		Short: "Add a contact, or add a phone to an existing contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, phone := args[0], args[1]

			return withBook(func(book *addressbook.AddressBook) error {
				record := book.Find(name)
				message := "Contact updated."
				if record == nil {
					record = addressbook.NewRecord(name)
					book.AddRecord(record)
					message = "Contact added."
				}

				if err := record.AddPhone(phone); err != nil {
					return errors.New(userMessage(err))
				}

				logger.Info("Phone added",
					zap.String("name", name),
					zap.String("phone", phone))
				fmt.Println(message)
				return nil
			})
		},
	}
}

func changeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change NAME OLD_PHONE NEW_PHONE",
		Short: "Replace a contact's phone number",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, oldPhone, newPhone := args[0], args[1], args[2]

			return withBook(func(book *addressbook.AddressBook) error {
				record := book.Find(name)
				if record == nil {
					return errors.New(userMessage(addressbook.ErrContactNotFound))
				}

				if err := record.EditPhone(oldPhone, newPhone); err != nil {
					return errors.New(userMessage(err))
				}

				logger.Info("Phone changed",
					zap.String("name", name),
					zap.String("old_phone", oldPhone),
					zap.String("new_phone", newPhone))
				fmt.Println("Contact updated.")
				return nil
			})
		},
	}
}

func phoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone NAME",
		Short: "Show a contact's phone numbers",
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

			if len(record.Phones) == 0 {
				fmt.Printf("No phones saved for %s.\n", name)
				return nil
			}

			fmt.Println(joinPhones(record))
			return nil
		},
	}
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every contact in the book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			book, err := store.Load()
			if err != nil {
				return err
			}

			if book.Len() == 0 {
				fmt.Println("No contacts saved.")
				return nil
			}

			for _, record := range book.List() {
				fmt.Println(record)
			}
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a contact from the book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return withBook(func(book *addressbook.AddressBook) error {
				// Deleting a missing contact is a no-op, same as the book itself
				book.Delete(name)

				logger.Info("Contact deleted", zap.String("name", name))
				fmt.Println("Contact deleted.")
				return nil
			})
		},
	}
}

func removePhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-phone NAME PHONE",
		Short: "Remove a phone number from a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, phone := args[0], args[1]

			return withBook(func(book *addressbook.AddressBook) error {
				record := book.Find(name)
				if record == nil {
					return errors.New(userMessage(addressbook.ErrContactNotFound))
				}

				record.RemovePhone(phone)

				logger.Info("Phone removed",
					zap.String("name", name),
					zap.String("phone", phone))
				fmt.Println("Contact updated.")
				return nil
			})
		},
	}
}

func joinPhones(record *addressbook.Record) string {
	out := ""
	for i, p := range record.Phones {
		if i > 0 {
			out += "; "
		}
		out += p.String()
	}
	return out
}
