package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/username/contact-bot/internal/addressbook"
	"go.uber.org/zap"
)

// Store persists the whole address book to a single JSON file. The book is
// written wholesale on every save; there are no partial updates and no
// schema versioning.
type Store struct {
	filePath string
	logger   *zap.Logger
}

// NewStore creates a store backed by the given file path
func NewStore(filePath string, logger *zap.Logger) *Store {
	return &Store{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads the address book from file. A missing file is not an error:
// the tool starts with an empty book and the file is created on first save.
func (s *Store) Load() (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("Address book file not found, starting empty",
				zap.String("path", s.filePath))
			return addressbook.New(), nil
		}
		return nil, fmt.Errorf("failed to read address book file: %w", err)
	}

	var book addressbook.AddressBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse address book file: %w", err)
	}

	if book.Records == nil {
		book.Records = make(map[string]*addressbook.Record)
	}

	s.logger.Info("Address book loaded",
		zap.String("path", s.filePath),
		zap.Int("records", book.Len()))

	return &book, nil
}

// Save writes the address book to file, creating parent directories as needed
func (s *Store) Save(book *addressbook.AddressBook) error {
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create address book directory: %w", err)
		}
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write address book file: %w", err)
	}

	s.logger.Info("Address book saved",
		zap.String("path", s.filePath),
		zap.Int("records", book.Len()))

	return nil
}
