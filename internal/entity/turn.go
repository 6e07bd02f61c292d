package entity

import "time"

// TurnRecord - a committed turn as kept in the room's turn log.
type TurnRecord struct {
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	Words      []string  `json:"words"`
	Points     int       `json:"points"`
	Placements Pending   `json:"placements"`
	At         time.Time `json:"at"`
}
