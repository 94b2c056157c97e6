package main

import (
	"context"
	"log"
	"os"
	"time"

	"room-booker/booker"
	"room-booker/catalog"
	"room-booker/config"
	"room-booker/notify"
	"room-booker/user"
)

func main() {
	log.Println("--- Starting Fast-Test ---")

	// 1. Load Config
	log.Println("Loading configuration...")
	cfg, err := config.Load("booker_config.yml")
	if err != nil {
		log.Fatalf("Failed to load booker_config.yml: %v", err)
	}
	currentUser, err := user.FromConfig(cfg.User)
	if err != nil {
		log.Fatalf("Failed to resolve current user: %v", err)
	}
	if cfg.HotelID == "" {
		log.Fatal("hotel_id is not set in booker_config.yml. Test cannot proceed.")
	}
	log.Println("Configuration loaded successfully.")

	ctx := context.Background()

	// 2. Catalog
	log.Println("\n--- Testing Catalog ---")
	loader := catalog.NewLoader(catalog.NewClient(cfg.API.BaseURL, cfg.API.Timeout()))
	state := loader.Load(ctx, cfg.HotelID)
	loaded, ok := state.(catalog.Loaded)
	if !ok {
		if failed, isFailed := state.(catalog.Failed); isFailed {
			log.Fatalf("Catalog load failed: %v", failed.Err)
		}
		log.Fatalf("Unexpected catalog state %T", state)
	}
	_ = catalog.Render(os.Stdout, loaded.Rooms)
	if len(loaded.Rooms) == 0 {
		log.Println("Hotel has no rooms. Test cannot proceed.")
		return
	}

	// 3. Booking
	log.Println("\n--- Testing Booking ---")
	room := loaded.Rooms[0]
	// Two nights starting two days from now.
	start := time.Now().AddDate(0, 0, 2)
	draft := booker.Draft{
		StartDate: start.Format("2006-01-02"),
		EndDate:   start.AddDate(0, 0, 2).Format("2006-01-02"),
	}
	log.Printf("Attempting to book room '%s' (%s) from %s to %s as %s",
		room.Title, room.ID, draft.StartDate, draft.EndDate, currentUser.UID)

	flow := booker.NewFlow(cfg.HotelID, currentUser.UID,
		booker.NewClient(cfg.API.BaseURL, cfg.API.Timeout()), &notify.Popup{})
	flow.Select(string(room.ID))
	flow.SetDraft(draft)

	n, err := flow.Submit(ctx)
	if err != nil {
		log.Fatalf("Booking could not be submitted: %v", err)
	}
	log.Println("Received a notification from the booking flow:")
	log.Printf("  KIND: %s", n.Kind)
	log.Printf("  MESSAGE: %s", n.Message)
	log.Printf("  STATE: %T", flow.State())

	log.Println("\n--- Fast-Test Finished ---")
}
