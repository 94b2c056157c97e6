package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"

	"room-booker/catalog"
)

// Serves the rooms and bookings endpoints from a room_report.yml fixture so
// the client can be exercised without the real backend.
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	fixture := flag.String("fixture", "room_report.yml", "room report to serve")
	flag.Parse()

	if port := os.Getenv("PORT"); port != "" {
		*addr = ":" + port
	}

	file, err := os.Open(*fixture)
	if err != nil {
		log.Fatalf("Failed to open fixture '%s': %v", *fixture, err)
	}
	report, err := catalog.ReadReport(file)
	file.Close()
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}
	log.Printf("Fixture loaded: %d hotel(s).", len(report.Hotels))

	handler := handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, newServer(report).routes()))
	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Mock hotel API running on %s", *addr)
	log.Fatal(srv.ListenAndServe())
}
