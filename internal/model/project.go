package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Status partitions projects into the two board columns.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// Pretty is the display label used in panel headers.
func (s Status) Pretty() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusFinished:
		return "Finished"
	default:
		return string(s)
	}
}

// Other returns the opposite column.
func (s Status) Other() Status {
	if s == StatusActive {
		return StatusFinished
	}
	return StatusActive
}

// ParseStatus maps user input to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive:
		return StatusActive, nil
	case StatusFinished:
		return StatusFinished, nil
	}
	return "", fmt.Errorf("unknown status: %q (want active or finished)", s)
}

// Project is the domain model for one unit of work on the board.
// ID is fixed at creation; Status is the only field that changes afterwards.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}

// NewID returns a fresh collision-resistant project id.
func NewID() string {
	return uuid.NewString()
}
