package catalog

import (
	"context"
	"sync"
)

// State is the catalog view state: Pending, Loaded or Failed.
type State interface {
	isState()
}

// Pending means rooms are loading, or no hotel has been requested yet.
type Pending struct{}

// Loaded carries the rooms to render.
type Loaded struct {
	Rooms []Room
}

// Failed replaces the catalog with an error view.
type Failed struct {
	Err error
}

func (Pending) isState() {}
func (Loaded) isState()  {}
func (Failed) isState()  {}

// Fetcher is the read side of the hotel API.
type Fetcher interface {
	FetchRooms(ctx context.Context, hotelID string) ([]Room, error)
}

// Loader fetches a hotel's rooms once per distinct hotel id.
type Loader struct {
	fetcher Fetcher

	mu      sync.Mutex
	hotelID string
	state   State
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher, state: Pending{}}
}

// State returns the current view state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Load fetches the rooms for hotelID and returns the resulting state.
// An empty id, or the id of the previous load, issues no request.
// If a newer Load starts while this one is in flight, this result is dropped.
func (l *Loader) Load(ctx context.Context, hotelID string) State {
	l.mu.Lock()
	if hotelID == "" || hotelID == l.hotelID {
		state := l.state
		l.mu.Unlock()
		return state
	}
	l.hotelID = hotelID
	l.state = Pending{}
	l.mu.Unlock()

	rooms, err := l.fetcher.FetchRooms(ctx, hotelID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.hotelID != hotelID {
		return l.state
	}
	if err != nil {
		l.state = Failed{Err: err}
	} else {
		l.state = Loaded{Rooms: rooms}
	}
	return l.state
}
