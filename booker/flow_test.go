package booker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"room-booker/notify"
)

// fakeSubmitter returns err for every call. When gate is set, each call
// signals entered and then waits for gate before returning.
type fakeSubmitter struct {
	calls   int
	err     error
	entered chan struct{}
	gate    chan struct{}
}

func (s *fakeSubmitter) CreateBooking(ctx context.Context, hotelID, roomID string, req BookingRequest) error {
	s.calls++
	if s.gate != nil {
		s.entered <- struct{}{}
		<-s.gate
	}
	return s.err
}

func newTestFlow(s Submitter, popup *notify.Popup, transitions *[]string) *Flow {
	opts := []Option{
		WithClock(func() time.Time { return testNow }),
		WithLocation(time.UTC),
	}
	if transitions != nil {
		opts = append(opts, WithTransitionHook(func(from, to State) {
			*transitions = append(*transitions, fmt.Sprintf("%T->%T", from, to))
		}))
	}
	return NewFlow("h1", "u-1", s, popup, opts...)
}

var validDraft = Draft{StartDate: "2099-01-01", EndDate: "2099-01-03"}

func TestFlowSubmitSuccess(t *testing.T) {
	api, srv := newBookingServer(t, http.StatusCreated, `{}`)
	popup := &notify.Popup{}
	var transitions []string
	flow := newTestFlow(NewClient(srv.URL, 0), popup, &transitions)

	flow.Select("r1")
	flow.SetDraft(validDraft)
	n, err := flow.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, notify.Notification{Kind: notify.Success, Message: "Room booked successfully!"}, n)
	shown, ok := popup.Current()
	assert.True(t, ok)
	assert.Equal(t, n, shown)

	_, selected := flow.Selected()
	assert.False(t, selected, "the form closes on success")
	assert.Equal(t, Draft{}, flow.Draft())
	assert.Equal(t, Succeeded{}, flow.State())

	requests, paths := api.snapshot()
	assert.Equal(t, []BookingRequest{{StartDate: "2099-01-01", EndDate: "2099-01-03", UserID: "u-1"}}, requests)
	assert.Equal(t, []string{"h1/r1"}, paths)

	assert.Equal(t, []string{
		"booker.Idle->booker.Validating",
		"booker.Validating->booker.Submitting",
		"booker.Submitting->booker.Succeeded",
	}, transitions)

	flow.Dismiss()
	_, ok = popup.Current()
	assert.False(t, ok)
	assert.Equal(t, Idle{}, flow.State())
}

func TestFlowSubmitRejectedByServer(t *testing.T) {
	_, srv := newBookingServer(t, http.StatusBadRequest, `{"message":"Room not available"}`)
	popup := &notify.Popup{}
	flow := newTestFlow(NewClient(srv.URL, 0), popup, nil)

	flow.Select("r1")
	flow.SetDraft(validDraft)
	n, err := flow.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, notify.Notification{Kind: notify.Error, Message: "Room not available"}, n)

	room, selected := flow.Selected()
	assert.True(t, selected, "the form stays open for another try")
	assert.Equal(t, "r1", room)
	assert.Equal(t, validDraft, flow.Draft())

	failed, ok := flow.State().(Failed)
	if assert.True(t, ok) {
		var rejected *RejectedError
		assert.True(t, errors.As(failed.Err, &rejected))
	}
}

func TestFlowValidationIssuesNoRequest(t *testing.T) {
	testCases := []struct {
		name      string
		draft     Draft
		expectMsg string
	}{
		{
			name:      "empty start",
			draft:     Draft{StartDate: "", EndDate: "2099-01-03"},
			expectMsg: "Invalid date: Start date and end date are required.",
		},
		{
			name:      "past start",
			draft:     Draft{StartDate: "2020-01-01", EndDate: "2099-01-03"},
			expectMsg: "Invalid date: Start date and end date must be in the future.",
		},
		{
			name:      "end before start",
			draft:     Draft{StartDate: "2099-01-03", EndDate: "2099-01-01"},
			expectMsg: "Invalid date: End date must be after the start date.",
		},
		{
			name:      "not a date",
			draft:     Draft{StartDate: "2099-13-45", EndDate: "2099-01-03"},
			expectMsg: "Invalid date: Start date and end date must be valid dates.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api, srv := newBookingServer(t, http.StatusCreated, `{}`)
			popup := &notify.Popup{}
			var transitions []string
			flow := newTestFlow(NewClient(srv.URL, 0), popup, &transitions)

			flow.Select("r1")
			flow.SetDraft(tc.draft)
			n, err := flow.Submit(context.Background())

			assert.NoError(t, err)
			// the first failure already carries its message
			assert.Equal(t, notify.Notification{Kind: notify.Error, Message: tc.expectMsg}, n)
			assert.Equal(t, 0, api.count())

			rejected, ok := flow.State().(Rejected)
			if assert.True(t, ok) {
				assert.Equal(t, tc.expectMsg, rejected.Err.Message)
			}
			assert.Equal(t, []string{
				"booker.Idle->booker.Validating",
				"booker.Validating->booker.Rejected",
			}, transitions)

			_, selected := flow.Selected()
			assert.True(t, selected)
		})
	}
}

func TestFlowRejectsPlainValidatorError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		expectErr *ValidationError
	}{
		{
			name:      "plain error",
			err:       errors.New("calendar unavailable"),
			expectErr: &ValidationError{Message: "calendar unavailable"},
		},
		{
			name:      "wrapped rule failure",
			err:       fmt.Errorf("draft: %w", &ValidationError{Rule: RuleOrder, Message: msgOrder}),
			expectErr: &ValidationError{Rule: RuleOrder, Message: msgOrder},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeSubmitter{}
			popup := &notify.Popup{}
			flow := newTestFlow(s, popup, nil)
			flow.validate = func(Draft, time.Time, *time.Location) error { return tc.err }

			flow.Select("r1")
			flow.SetDraft(validDraft)
			n, err := flow.Submit(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, notify.NewError(tc.expectErr.Message), n)
			assert.Equal(t, Rejected{Err: tc.expectErr}, flow.State())
			assert.Equal(t, 0, s.calls)
		})
	}
}

func TestFlowSameDayProceeds(t *testing.T) {
	api, srv := newBookingServer(t, http.StatusCreated, `{}`)
	flow := newTestFlow(NewClient(srv.URL, 0), &notify.Popup{}, nil)

	flow.Select("r1")
	flow.SetDraft(Draft{StartDate: "2099-01-01", EndDate: "2099-01-01"})
	n, err := flow.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, notify.Success, n.Kind)
	assert.Equal(t, 1, api.count())
}

func TestFlowTransportError(t *testing.T) {
	s := &fakeSubmitter{err: &TransportError{Err: errors.New("connection refused")}}
	flow := newTestFlow(s, &notify.Popup{}, nil)

	flow.Select("r1")
	flow.SetDraft(validDraft)
	n, err := flow.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, notify.Notification{Kind: notify.Error, Message: "Error booking room: connection refused"}, n)
	_, selected := flow.Selected()
	assert.True(t, selected)
}

func TestFlowRepeatedFailuresNotifyEachTime(t *testing.T) {
	api, srv := newBookingServer(t, http.StatusBadRequest, `{"message":"Room not available"}`)
	var transitions []string
	flow := newTestFlow(NewClient(srv.URL, 0), &notify.Popup{}, &transitions)

	flow.Select("r1")
	flow.SetDraft(validDraft)
	first, err := flow.Submit(context.Background())
	assert.NoError(t, err)
	second, err := flow.Submit(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, api.count())
	assert.Equal(t, []string{
		"booker.Idle->booker.Validating",
		"booker.Validating->booker.Submitting",
		"booker.Submitting->booker.Failed",
		"booker.Failed->booker.Idle",
		"booker.Idle->booker.Validating",
		"booker.Validating->booker.Submitting",
		"booker.Submitting->booker.Failed",
	}, transitions)
}

func TestFlowNoRoomSelected(t *testing.T) {
	s := &fakeSubmitter{}
	flow := newTestFlow(s, &notify.Popup{}, nil)
	flow.SetDraft(validDraft)

	_, err := flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoRoomSelected)
	assert.Equal(t, 0, s.calls)
}

func TestFlowCancelDiscardsDraft(t *testing.T) {
	s := &fakeSubmitter{}
	flow := newTestFlow(s, &notify.Popup{}, nil)

	flow.Select("r1")
	flow.SetDraft(validDraft)
	flow.Cancel()

	_, selected := flow.Selected()
	assert.False(t, selected)
	assert.Equal(t, Draft{}, flow.Draft())

	_, err := flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoRoomSelected)
	assert.Equal(t, 0, s.calls)
}

func TestFlowSubmitInProgress(t *testing.T) {
	s := &fakeSubmitter{entered: make(chan struct{}), gate: make(chan struct{})}
	flow := newTestFlow(s, &notify.Popup{}, nil)
	flow.Select("r1")
	flow.SetDraft(validDraft)

	done := make(chan notify.Notification)
	go func() {
		n, _ := flow.Submit(context.Background())
		done <- n
	}()
	<-s.entered

	_, err := flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	// picking another room while the first request is in flight keeps it open
	flow.Select("r2")
	close(s.gate)
	n := <-done

	assert.Equal(t, notify.Success, n.Kind)
	room, selected := flow.Selected()
	assert.True(t, selected)
	assert.Equal(t, "r2", room)
	assert.Equal(t, 1, s.calls)
}
