package domain

import "time"

type Event struct {
	ID       uint      `json:"id"`
	Kennel   Kennel    `json:"kennel"`
	Title    string    `json:"title"`
	Number   int       `json:"number"`
	EvDate   time.Time `json:"ev_date"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
	Updated  time.Time `json:"updated"`
}

// EventRecord is an event with its roster and the honor deliveries
// that happened there.
type EventRecord struct {
	Event
	Hashers    []Participant    `json:"hashers"`
	Deliveries []DeliveredHonor `json:"deliveries"`
}

// DeliveredHonor is one honor handed out at an event, with its recipient.
type DeliveredHonor struct {
	HonorID    uint   `json:"honor_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	HasherID   uint   `json:"hasher_id"`
	HasherName string `json:"hasher_name"`
}

type Participant struct {
	HasherID uint   `json:"hasher_id"`
	RealName string `json:"real_name"`
	HashName string `json:"hash_name"`
	Hare     bool   `json:"hare"`
	Jedi     bool   `json:"jedi"`
}

// Participation links a hasher to an event with the role flags.
type Participation struct {
	EventID  uint `json:"event_id"`
	HasherID uint `json:"hasher_id"`
	Hare     bool `json:"hare"`
	Jedi     bool `json:"jedi"`
}
