package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"room-booker/booker"
	"room-booker/catalog"
	"room-booker/config"
	"room-booker/notify"
	"room-booker/user"
)

const configFile = "booker_config.yml"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run is the whole CLI session. It returns the process exit code so deferred
// cleanup always happens before main exits.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("room-booker", flag.ContinueOnError)
	configPath := fs.String("config", configFile, "path to the YAML config")
	hotelFlag := fs.String("hotel", "", "hotel id, overrides hotel_id from the config")
	roomFlag := fs.String("room", "", "id or title of the room to book")
	startFlag := fs.String("start", "", "start date, YYYY-MM-DD")
	endFlag := fs.String("end", "", "end date, YYYY-MM-DD")
	listOnly := fs.Bool("list", false, "only list the rooms")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.Println("Starting Room Booker...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- 1. Load Config & User ---
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load %s: %v", *configPath, err)
		return 1
	}
	currentUser, err := user.FromConfig(cfg.User)
	if err != nil {
		log.Printf("Failed to resolve current user: %v", err)
		return 1
	}
	log.Printf("Config loaded. Booking as %s.", currentUser.DisplayName())

	hotelID := cfg.HotelID
	if *hotelFlag != "" {
		hotelID = *hotelFlag
	}
	if hotelID == "" {
		log.Println("No hotel selected, nothing to load. Set hotel_id or pass -hotel.")
		return 0
	}

	// --- 2. Load Catalog ---
	log.Printf("Loading rooms for hotel %s...", hotelID)
	loader := catalog.NewLoader(catalog.NewClient(cfg.API.BaseURL, cfg.API.Timeout()))

	var rooms []catalog.Room
	switch state := loader.Load(ctx, hotelID).(type) {
	case catalog.Loaded:
		rooms = state.Rooms
	case catalog.Failed:
		_ = catalog.RenderError(stdout, state.Err)
		return 1
	default:
		log.Printf("Unexpected catalog state %T", state)
		return 1
	}
	if err := catalog.Render(stdout, rooms); err != nil {
		log.Printf("Failed to render rooms: %v", err)
		return 1
	}
	if *listOnly || len(rooms) == 0 {
		return 0
	}

	// --- 3. Select Room ---
	in := bufio.NewReader(stdin)
	roomKey := *roomFlag
	if roomKey == "" {
		if roomKey, err = prompt(in, "Room to book (id or title): "); err != nil {
			log.Printf("No room chosen: %v", err)
			return 1
		}
	}
	room, err := catalog.Find(rooms, roomKey)
	if err != nil {
		log.Printf("Cannot select room: %v", err)
		return 1
	}
	log.Printf("Selected room '%s' (%s).", room.Title, room.ID)

	popup := &notify.Popup{}
	flow := booker.NewFlow(hotelID, currentUser.UID,
		booker.NewClient(cfg.API.BaseURL, cfg.API.Timeout()), popup,
		booker.WithTransitionHook(func(from, to booker.State) {
			log.Printf("Booking state: %T -> %T", from, to)
		}))
	flow.Select(string(room.ID))

	// --- 4. Booking Form ---
	draft := booker.Draft{StartDate: *startFlag, EndDate: *endFlag}
	askDates := draft.StartDate == "" && draft.EndDate == ""
	for {
		if askDates {
			if draft, err = promptDraft(in, draft); err != nil {
				flow.Cancel()
				log.Printf("Booking cancelled: %v", err)
				return 1
			}
		}
		flow.SetDraft(draft)

		n, err := flow.Submit(ctx)
		if err != nil {
			log.Printf("Could not submit booking: %v", err)
			return 1
		}
		_ = notify.Print(stdout, n)
		if n.Kind == notify.Success {
			return 0
		}

		// The form stays open after a failure, the user decides whether to resend.
		if !confirm(in, "Try again? [y/N]: ") {
			flow.Cancel()
			log.Println("Booking cancelled.")
			return 1
		}
		flow.Dismiss()
		askDates = true
	}
}
