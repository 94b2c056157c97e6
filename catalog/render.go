package catalog

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes the room cards as a table.
func Render(w io.Writer, rooms []Room) error {
	if _, err := fmt.Fprintln(w, "Our Rooms"); err != nil {
		return err
	}
	if len(rooms) == 0 {
		_, err := fmt.Fprintln(w, "No rooms available.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tSIZE\tCAPACITY\tBED\tSERVICES")
	for _, room := range rooms {
		fmt.Fprintf(tw, "%s\t%s\t%s$/Pernight\t%s\t%s\t%s\t%s\n",
			room.ID, room.Title, room.Price,
			room.Size, room.Capacity, room.Bed, room.Services)
	}
	return tw.Flush()
}

// RenderError writes the view shown instead of the catalog when loading failed.
func RenderError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %v\n", err)
	return werr
}
