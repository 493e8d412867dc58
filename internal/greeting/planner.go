package greeting

import (
	"time"

	"github.com/username/contact-bot/internal/addressbook"
	"github.com/username/contact-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultWindowDays is the horizon of the upcoming-birthday report
const DefaultWindowDays = 7

// Greeting is one planned congratulation: the contact's name and the date
// the greeting should be sent, formatted DD.MM.YYYY. The congratulation
// date may be later than the actual birthday when the birthday falls on a
// weekend.
type Greeting struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}

// Planner computes upcoming-birthday reports over an address book
type Planner struct {
	windowDays int
	logger     *zap.Logger
}

// NewPlanner creates a planner with the given window in days.
// A negative window falls back to DefaultWindowDays; zero is a valid
// "today only" window.
func NewPlanner(windowDays int, logger *zap.Logger) *Planner {
	if windowDays < 0 {
		windowDays = DefaultWindowDays
	}
	return &Planner{
		windowDays: windowDays,
		logger:     logger,
	}
}

// Upcoming returns the greetings to send within the window starting at
// today (inclusive on both ends: 0 days means the birthday is today).
// Records without a birthday are skipped. Results follow the book's
// sorted name order. Pure with respect to the book: nothing is mutated.
func (p *Planner) Upcoming(book *addressbook.AddressBook, today time.Time) []Greeting {
	today = dateutil.StartOfDay(today)
	greetings := []Greeting{}

	for _, record := range book.List() {
		if record.Birthday == nil {
			continue
		}

		occurrence := nextOccurrence(*record.Birthday, today)
		daysUntil := dateutil.DaysBetween(today, occurrence)

		if daysUntil < 0 || daysUntil > p.windowDays {
			continue
		}

		congratulation := dateutil.NextBusinessDay(occurrence)

		p.logger.Debug("Birthday in window",
			zap.String("name", record.Name),
			zap.String("birthday", record.Birthday.String()),
			zap.Int("days_until", daysUntil),
			zap.Time("congratulation_date", congratulation))

		greetings = append(greetings, Greeting{
			Name:               record.Name,
			CongratulationDate: congratulation.Format(addressbook.BirthdayFormat),
		})
	}

	p.logger.Info("Upcoming birthdays computed",
		zap.Time("today", today),
		zap.Int("window_days", p.windowDays),
		zap.Int("count", len(greetings)))

	return greetings
}

// nextOccurrence returns the birthday's next occurrence on or after today.
// The occurrence this year is tried first; if it has already passed, the
// occurrence in the following year is used. At most one year is added.
//
// A birthday of Feb 29 evaluated in a non-leap year normalizes to Mar 1
// through time.Date, so leap-day contacts are greeted on March 1 in
// non-leap years.
func nextOccurrence(birthday addressbook.BirthdayDate, today time.Time) time.Time {
	occurrence := time.Date(today.Year(), birthday.Month(), birthday.Day(),
		0, 0, 0, 0, today.Location())

	if occurrence.Before(today) {
		occurrence = time.Date(today.Year()+1, birthday.Month(), birthday.Day(),
			0, 0, 0, 0, today.Location())
	}

	return occurrence
}
