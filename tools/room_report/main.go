package main

import (
	"context"
	"flag"
	"log"
	"os"

	"room-booker/catalog"
	"room-booker/config"
)

const reportFile = "room_report.yml"

// Fetches the catalogs of the hotels given as arguments (the configured hotel
// by default) and writes them to room_report.yml, the fixture format the mock
// API reads.
func main() {
	configPath := flag.String("config", "booker_config.yml", "path to the YAML config")
	outPath := flag.String("out", reportFile, "report file to write")
	flag.Parse()

	log.Println("Starting room report generator...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *configPath, err)
	}

	hotelIDs := flag.Args()
	if len(hotelIDs) == 0 && cfg.HotelID != "" {
		hotelIDs = []string{cfg.HotelID}
	}
	if len(hotelIDs) == 0 {
		log.Fatal("No hotel ids given and no hotel_id in config.")
	}

	client := catalog.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	ctx := context.Background()

	var report catalog.Report
	for _, hotelID := range hotelIDs {
		rooms, err := client.FetchRooms(ctx, hotelID)
		if err != nil {
			log.Printf("Skipping hotel '%s': %v", hotelID, err)
			continue
		}
		log.Printf("Hotel '%s': %d room(s).", hotelID, len(rooms))
		report.Hotels = append(report.Hotels, catalog.HotelRooms{HotelID: hotelID, Rooms: rooms})
	}
	if len(report.Hotels) == 0 {
		log.Fatal("Extraction failed: no catalog could be loaded.")
	}

	log.Printf("Generating report file: %s...", *outPath)
	file, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create report: %v", err)
	}
	defer file.Close()

	if err := catalog.WriteReport(file, report); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	log.Printf("Report generated successfully! Please check %s.", *outPath)
}
