// Package macro asks another running application to execute a named macro
// by delivering a short textual payload to its top-level window.
package macro

import (
	"time"

	"github.com/blaubaer/host-remote/pkg/common"
)

const (
	// DefaultWindowTitle is the exact title of the top-level window the
	// Translator application registers for receiving macro requests.
	DefaultWindowTitle = "Translator CopyData Target"

	// DefaultSendTimeout bounds how long a delivery may block before it is
	// given up.
	DefaultSendTimeout = 5 * time.Second

	// copyDataID identifies the payload towards the receiving application.
	copyDataID = 24

	payloadPrefix = "Macro: "
)

// windowMessenger is the windowing surface of the operating system the
// Trigger delivers through.
type windowMessenger interface {
	findWindow(title string) (window uintptr, found bool, err error)
	sendCopyData(window uintptr, id uintptr, payload []byte, timeout time.Duration) (delivered bool, code common.Hresult, err error)
}

// Trigger locates a running application by the exact title of its top-level
// window and asks it to execute macros.
type Trigger struct {
	// WindowTitle is the exact title to look for. Empty means
	// DefaultWindowTitle.
	WindowTitle string

	// Timeout bounds each delivery. Zero means DefaultSendTimeout.
	Timeout time.Duration

	messenger windowMessenger
}

// Exec delivers the request to execute the macro with the given name. The
// target window is looked up freshly on every call; if it is absent the
// call fails with ErrTargetNotRunning without waiting or retrying.
func (this *Trigger) Exec(name string) error {
	window, found, err := this.findTarget()
	if err != nil {
		return err
	}
	if !found {
		return ErrTargetNotRunning
	}

	payload := []byte(payloadPrefix + name)
	delivered, code, err := this.getMessenger().sendCopyData(window, copyDataID, payload, this.timeout())
	if err != nil {
		return err
	}

	// A send that reports non-delivery without leaving a real error code
	// behind cannot be told apart from success; it is treated as delivered.
	if !delivered && code.Failed() {
		return &DeliveryError{Code: code}
	}

	return nil
}

// TargetPresent reports whether the target window currently exists.
func (this *Trigger) TargetPresent() (bool, error) {
	_, found, err := this.findTarget()
	return found, err
}

func (this *Trigger) findTarget() (uintptr, bool, error) {
	return this.getMessenger().findWindow(this.windowTitle())
}

func (this *Trigger) windowTitle() string {
	if v := this.WindowTitle; v != "" {
		return v
	}
	return DefaultWindowTitle
}

func (this *Trigger) timeout() time.Duration {
	if v := this.Timeout; v > 0 {
		return v
	}
	return DefaultSendTimeout
}

func (this *Trigger) getMessenger() windowMessenger {
	if v := this.messenger; v != nil {
		return v
	}
	return defaultMessenger
}
