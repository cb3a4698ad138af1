package entities

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConverting Status = "converting"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// ConversionEntry is the record of one submitted file and its conversion
// lifecycle. Data holds the original bytes and is never mutated after
// acceptance.
type ConversionEntry struct {
	ID            string
	OriginalName  string
	ContentType   string
	Data          []byte
	Kind          Kind
	Status        Status
	OutputFormat  string
	PreviewHandle string
	OutputHandle  string
	OutputName    string
	OutputMime    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusConverting},
	StatusConverting: {StatusCompleted, StatusError},
}

// CanTransition validates a status change against the closed transition set:
// pending -> converting -> {completed, error}. Terminal states have no exits.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
