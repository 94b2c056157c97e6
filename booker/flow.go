package booker

import (
	"context"
	"errors"
	"sync"
	"time"

	"room-booker/notify"
)

const msgBooked = "Room booked successfully!"

// State is where a Flow is in Idle → Validating → {Rejected | Submitting} → {Succeeded | Failed} → Idle.
type State interface {
	isState()
}

type Idle struct{}

// Validating holds the draft being checked.
type Validating struct {
	Draft Draft
}

// Rejected means the draft broke a rule and nothing was sent.
type Rejected struct {
	Err *ValidationError
}

// Submitting holds the request in flight.
type Submitting struct {
	Request BookingRequest
}

type Succeeded struct{}

// Failed holds a *RejectedError or a transport error.
type Failed struct {
	Err error
}

func (Idle) isState()       {}
func (Validating) isState() {}
func (Rejected) isState()   {}
func (Submitting) isState() {}
func (Succeeded) isState()  {}
func (Failed) isState()     {}

func isTerminal(s State) bool {
	switch s.(type) {
	case Rejected, Succeeded, Failed:
		return true
	}
	return false
}

// Submitter is the write side of the hotel API. *Client implements it.
type Submitter interface {
	CreateBooking(ctx context.Context, hotelID, roomID string, req BookingRequest) error
}

type Option func(*Flow)

// WithClock replaces time.Now for the future-date rule.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

// WithLocation sets the location calendar dates are read in.
func WithLocation(loc *time.Location) Option {
	return func(f *Flow) { f.loc = loc }
}

// WithTransitionHook registers fn to observe every state change. fn runs with
// the flow locked and must not call back into it.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(f *Flow) { f.onTransition = fn }
}

// Flow is the booking form of one hotel page: a selected room, its draft and
// the submission state. Outcomes are shown on the popup.
type Flow struct {
	hotelID      string
	userID       string
	submitter    Submitter
	popup        *notify.Popup
	now          func() time.Time
	loc          *time.Location
	validate     func(d Draft, now time.Time, loc *time.Location) error
	onTransition func(from, to State)

	mu       sync.Mutex
	selected string
	draft    Draft
	state    State
}

// NewFlow returns a Flow booking rooms of hotelID for userID.
func NewFlow(hotelID, userID string, submitter Submitter, popup *notify.Popup, opts ...Option) *Flow {
	f := &Flow{
		hotelID:   hotelID,
		userID:    userID,
		submitter: submitter,
		popup:     popup,
		now:       time.Now,
		loc:       time.Local,
		validate:  Validate,
		state:     Idle{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) setLocked(to State) {
	from := f.state
	f.state = to
	if f.onTransition != nil {
		f.onTransition(from, to)
	}
}

func (f *Flow) resetLocked() {
	if isTerminal(f.state) {
		f.setLocked(Idle{})
	}
}

// State returns the current submission state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Select opens the booking form for roomID.
func (f *Flow) Select(roomID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
	f.selected = roomID
}

// Selected returns the room the form is open for.
func (f *Flow) Selected() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected, f.selected != ""
}

// Cancel closes the form and discards the draft.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
	f.selected = ""
	f.draft = Draft{}
}

func (f *Flow) SetDraft(d Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Dismiss closes the popup and returns a finished flow to Idle.
func (f *Flow) Dismiss() {
	f.popup.Dismiss()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// Submit validates the draft and, if it passes, books the selected room.
// Every outcome is shown on the popup and returned. The error is only set
// when Submit could not start: no room selected or a submit already in flight.
func (f *Flow) Submit(ctx context.Context) (notify.Notification, error) {
	f.mu.Lock()
	if f.selected == "" {
		f.mu.Unlock()
		return notify.Notification{}, ErrNoRoomSelected
	}
	if _, busy := f.state.(Submitting); busy {
		f.mu.Unlock()
		return notify.Notification{}, ErrSubmitInProgress
	}
	f.resetLocked()

	draft, roomID := f.draft, f.selected
	f.setLocked(Validating{Draft: draft})
	if err := f.validate(draft, f.now(), f.loc); err != nil {
		verr := asValidationError(err)
		f.setLocked(Rejected{Err: verr})
		// The message is computed once and shared by the state and the popup.
		n := notify.NewError(verr.Message)
		f.popup.Show(n)
		f.mu.Unlock()
		return n, nil
	}

	req := newBookingRequest(draft, f.userID)
	f.setLocked(Submitting{Request: req})
	f.mu.Unlock()

	err := f.submitter.CreateBooking(ctx, f.hotelID, roomID, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	var n notify.Notification
	if err != nil {
		f.setLocked(Failed{Err: err})
		n = notify.NewError(failureMessage(err))
	} else {
		f.setLocked(Succeeded{})
		n = notify.NewSuccess(msgBooked)
		// The user may have picked another room meanwhile, leave that one open.
		if f.selected == roomID {
			f.selected = ""
			f.draft = Draft{}
		}
	}
	f.popup.Show(n)
	return n, nil
}

// asValidationError keeps a rule failure as is and wraps anything else as an
// unnamed rule, so Rejected always carries a message.
func asValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) && verr != nil {
		return verr
	}
	return &ValidationError{Message: err.Error()}
}

func failureMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Error()
	}
	return "Error booking room: " + err.Error()
}
