package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"room-booker/booker"
	"room-booker/catalog"
)

type booking struct {
	ID     string
	UserID string
	Start  time.Time
	End    time.Time
}

// overlaps treats stays as half-open, so checking in on another guest's
// checkout day is fine.
func (b booking) overlaps(start, end time.Time) bool {
	return start.Before(b.End) && b.Start.Before(end)
}

// server is an in-memory stand-in for the hotel API.
type server struct {
	report *catalog.Report

	mu       sync.Mutex
	bookings map[string][]booking
}

func newServer(report *catalog.Report) *server {
	return &server{
		report:   report,
		bookings: make(map[string][]booking),
	}
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/getHotels/{hotelId}/rooms", s.listRooms).Methods(http.MethodGet)
	r.HandleFunc("/api/getHotels/{hotelId}/rooms/{roomId}/bookings", s.createBooking).Methods(http.MethodPost)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// findRoom matches the {roomId} path segment against room ids only.
func findRoom(rooms []catalog.Room, roomID string) (catalog.Room, bool) {
	for _, room := range rooms {
		if string(room.ID) == roomID {
			return room, true
		}
	}
	return catalog.Room{}, false
}

func (s *server) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, ok := s.report.Rooms(mux.Vars(r)["hotelId"])
	if !ok {
		writeMessage(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if rooms == nil {
		rooms = []catalog.Room{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (s *server) createBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, roomID := vars["hotelId"], vars["roomId"]

	rooms, ok := s.report.Rooms(hotelID)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Hotel not found")
		return
	}
	room, ok := findRoom(rooms, roomID)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Room not found")
		return
	}

	var req booker.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StartDate == "" || req.EndDate == "" || req.UserID == "" {
		writeMessage(w, http.StatusBadRequest, "startDate, endDate and userId are required")
		return
	}
	start, okStart := booker.ParseDate(req.StartDate, time.Local)
	end, okEnd := booker.ParseDate(req.EndDate, time.Local)
	if !okStart || !okEnd {
		writeMessage(w, http.StatusBadRequest, "Invalid date format")
		return
	}
	if end.Before(start) {
		writeMessage(w, http.StatusBadRequest, "End date must be after the start date")
		return
	}
	// a same-day stay still occupies the room for that day
	if end.Equal(start) {
		end = start.Add(24 * time.Hour)
	}

	key := hotelID + "/" + string(room.ID)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings[key] {
		if b.overlaps(start, end) {
			writeMessage(w, http.StatusBadRequest, "Room not available")
			return
		}
	}
	b := booking{ID: uuid.NewString(), UserID: req.UserID, Start: start, End: end}
	s.bookings[key] = append(s.bookings[key], b)

	writeJSON(w, http.StatusCreated, map[string]string{"id": b.ID, "message": "Booking created"})
}
