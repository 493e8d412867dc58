// +build windows

package daemon

import (
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// TrayApp represents system tray application
type TrayApp struct {
	daemon *Daemon
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetTitle("CB")
	systray.SetTooltip("Contact Bot Birthday Reminders")

	// Add menu items
	mCheckNow := systray.AddMenuItem("Check Now", "Check upcoming birthdays immediately")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	// Start daemon logic in background
	go t.daemon.runScheduledLoop()

	// Handle menu item clicks
	go func() {
		for {
			select {
			case <-mCheckNow.ClickedCh:
				t.logger.Info("Check Now clicked from tray")
				go t.daemon.CheckNow()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	close(t.quit)
}

// ShowNotification shows a message box with the notification (Windows only)
func (t *TrayApp) ShowNotification(title, message string) {
	t.logger.Info("Notification", zap.String("title", title), zap.String("message", message))
	showMessageBox(title, message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
