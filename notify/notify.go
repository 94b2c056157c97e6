package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Kind tells a success popup from an error popup.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notification is a transient message shown after an operation completes.
type Notification struct {
	Message string
	Kind    Kind
}

func NewSuccess(message string) Notification {
	return Notification{Message: message, Kind: Success}
}

func NewError(message string) Notification {
	return Notification{Message: message, Kind: Error}
}

// Popup holds at most one visible notification. A new one replaces the old.
type Popup struct {
	mu      sync.Mutex
	current *Notification
}

// Show makes n the visible notification.
func (p *Popup) Show(n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = &n
}

// Current returns the visible notification, if any.
func (p *Popup) Current() (Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return Notification{}, false
	}
	return *p.current, true
}

// Dismiss hides the visible notification.
func (p *Popup) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
}

// Print writes n as a single line, e.g. "[ERROR] Room not available".
func Print(w io.Writer, n Notification) error {
	_, err := fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(string(n.Kind)), n.Message)
	return err
}
