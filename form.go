package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"room-booker/booker"
)

// prompt prints label and reads one trimmed line.
func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(os.Stdout, label)
	line, err := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return line, nil
}

// promptDraft asks for both dates. Pressing enter keeps the current value.
func promptDraft(in *bufio.Reader, current booker.Draft) (booker.Draft, error) {
	start, err := prompt(in, withDefault("Start date (YYYY-MM-DD)", current.StartDate))
	if err != nil {
		return current, err
	}
	end, err := prompt(in, withDefault("End date (YYYY-MM-DD)", current.EndDate))
	if err != nil {
		return current, err
	}

	if start == "" {
		start = current.StartDate
	}
	if end == "" {
		end = current.EndDate
	}
	return booker.Draft{StartDate: start, EndDate: end}, nil
}

// confirm returns true only for an explicit yes.
func confirm(in *bufio.Reader, label string) bool {
	answer, err := prompt(in, label)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func withDefault(label, value string) string {
	if value == "" {
		return label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", label, value)
}
