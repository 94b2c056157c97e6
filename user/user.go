package user

import (
	"fmt"

	"room-booker/config"
)

// Info is the signed-in user bookings are made on behalf of.
type Info struct {
	UID  string
	Name string
}

// FromConfig builds the current user from the configured identity.
func FromConfig(cfg config.UserConfig) (*Info, error) {
	if cfg.UID == "" {
		return nil, fmt.Errorf("user uid not found in config")
	}
	return &Info{UID: cfg.UID, Name: cfg.Name}, nil
}

// DisplayName returns the name to greet the user with, falling back to the uid.
func (i *Info) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.UID
}
