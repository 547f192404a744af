package domain

import "time"

type Hasher struct {
	ID       uint      `json:"id"`
	RealName string    `json:"real_name"`
	HashName string    `json:"hash_name"`
	FBName   string    `json:"fb_name"`
	FBURL    string    `json:"fb_url"`
	Kennel   Kennel    `json:"kennel"`
	Notes    string    `json:"notes"`
	Updated  time.Time `json:"updated"`
}

// DisplayName is the hash name when one exists, else the real name.
func (h Hasher) DisplayName() string {
	if h.HashName != "" {
		return h.HashName
	}
	return h.RealName
}

// HasherRecord is a hasher with everything the edit form shows:
// the events attended (with role flags) and the honors already received.
type HasherRecord struct {
	Hasher
	Events []Attendance    `json:"events"`
	Honors []ReceivedHonor `json:"honors"`
}

type Attendance struct {
	EventID uint      `json:"event_id"`
	Title   string    `json:"title"`
	Number  int       `json:"number"`
	EvDate  time.Time `json:"ev_date"`
	Kennel  string    `json:"kennel"`
	Hare    bool      `json:"hare"`
	Jedi    bool      `json:"jedi"`
}

type ReceivedHonor struct {
	HonorID  uint   `json:"honor_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	EventID  uint   `json:"event_id"`
}
