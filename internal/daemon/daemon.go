package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/username/contact-bot/internal/greeting"
	"github.com/username/contact-bot/internal/storage"
	"github.com/username/contact-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// Daemon runs the upcoming-birthday check once per day at a configured
// local time and reports the result through the log and, on Windows, a
// system tray notification.
type Daemon struct {
	store       *storage.Store
	planner     *greeting.Planner
	dailyHour   int  // Hour to run the daily check (0-23)
	dailyMinute int  // Minute to run the daily check (0-59)
	systemTray  bool // Show system tray icon
	logger      *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	trayApp     *TrayApp
	lastRunDate string     // Track last run date to avoid duplicate checks
	mu          sync.Mutex // Protect against concurrent runs
}

// NewDaemon creates a daemon that checks birthdays daily at the given time
func NewDaemon(store *storage.Store, planner *greeting.Planner, dailyHour, dailyMinute int, systemTray bool, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		store:       store,
		planner:     planner,
		dailyHour:   dailyHour,
		dailyMinute: dailyMinute,
		systemTray:  systemTray,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start starts the daemon
func (d *Daemon) Start() error {
	// Initialize system tray if enabled (Windows only)
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			// Fall back to console mode
			d.runScheduledLoop()
			return nil
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	d.runScheduledLoop()
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// runScheduledLoop runs the daily check loop (called from tray or standalone)
func (d *Daemon) runScheduledLoop() {
	d.logger.Info("Reminder daemon started",
		zap.Int("daily_hour", d.dailyHour),
		zap.Int("daily_minute", d.dailyMinute))

	// If the scheduled time already passed today, run immediately
	now := time.Now()
	scheduledToday := time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, now.Location())

	if now.After(scheduledToday) {
		d.logger.Info("Scheduled time already passed today, checking now",
			zap.Time("scheduled_time", scheduledToday))
		d.runOnce()
	}

	nextRun := d.calculateNextRun()
	d.logger.Info("Next check scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", time.Until(nextRun)))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Check every minute if it's time to run
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return

		case now := <-ticker.C:
			if now.Hour() != d.dailyHour || now.Minute() != d.dailyMinute {
				continue
			}

			d.runOnce()

			nextRun = d.calculateNextRun()
			d.logger.Info("Next check scheduled",
				zap.Time("next_run", nextRun),
				zap.Duration("wait_duration", time.Until(nextRun)))
		}
	}
}

// runOnce loads the book and reports upcoming birthdays for today.
// Guarded against concurrent and duplicate same-day runs.
func (d *Daemon) runOnce() {
	d.mu.Lock()
	defer d.mu.Unlock()

	today := dateutil.Today()
	todayStr := today.Format("2006-01-02")
	if d.lastRunDate == todayStr {
		d.logger.Debug("Already checked today, skipping")
		return
	}

	greetings, err := d.check(today)
	if err != nil {
		d.logger.Error("Birthday check failed", zap.Error(err))
		if d.trayApp != nil {
			d.trayApp.ShowNotification("Birthday Check Failed", fmt.Sprintf("Error: %v", err))
		}
		return
	}

	d.lastRunDate = todayStr

	if len(greetings) == 0 {
		d.logger.Info("No upcoming birthdays", zap.Time("today", today))
		return
	}

	if d.trayApp != nil {
		d.trayApp.ShowNotification("Upcoming Birthdays", FormatGreetings(greetings))
	}
}

// check computes the upcoming greetings for the given date
func (d *Daemon) check(today time.Time) ([]greeting.Greeting, error) {
	book, err := d.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	return d.planner.Upcoming(book, today), nil
}

// CheckNow triggers an immediate check (called from the tray menu).
// Unlike the scheduled run it always reports, even if a check already
// happened today.
func (d *Daemon) CheckNow() {
	d.logger.Info("Manual check triggered")

	greetings, err := d.check(dateutil.Today())
	if err != nil {
		d.logger.Error("Manual check failed", zap.Error(err))
		if d.trayApp != nil {
			d.trayApp.ShowNotification("Birthday Check Failed", fmt.Sprintf("Error: %v", err))
		}
		return
	}

	message := "No upcoming birthdays in the next week."
	if len(greetings) > 0 {
		message = FormatGreetings(greetings)
	}

	d.logger.Info("Manual check completed", zap.Int("upcoming", len(greetings)))
	if d.trayApp != nil {
		d.trayApp.ShowNotification("Upcoming Birthdays", message)
	}
}

// calculateNextRun calculates the next scheduled run time (local time)
func (d *Daemon) calculateNextRun() time.Time {
	now := time.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, now.Location())

	// If target time already passed today, schedule for tomorrow
	if now.After(today) || now.Equal(today) {
		return today.AddDate(0, 0, 1)
	}

	return today
}

// FormatGreetings renders greetings one per line as "Name: DD.MM.YYYY"
func FormatGreetings(greetings []greeting.Greeting) string {
	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf("%s: %s", g.Name, g.CongratulationDate)
	}
	return strings.Join(lines, "\n")
}
