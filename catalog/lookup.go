package catalog

import (
	"fmt"
	"strings"
)

// Find resolves key to a room, first by id and then by title (case-insensitive).
func Find(rooms []Room, key string) (Room, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Room{}, fmt.Errorf("room key is empty")
	}

	for _, room := range rooms {
		if string(room.ID) == key {
			return room, nil
		}
	}
	for _, room := range rooms {
		if strings.EqualFold(room.Title, key) {
			return room, nil
		}
	}

	return Room{}, fmt.Errorf("room '%s' not found in catalog", key)
}
