package entity

import "github.com/google/uuid"

const (
	DefaultUsername = "guest"
	DefaultRoomID   = "error_room"

	noCursor = -1
)

type Cursor struct {
	X int `json:"cursorX"`
	Y int `json:"cursorY"`
}

type User struct {
	ID        string   `json:"-"`
	Username  string   `json:"username"`
	State     Cursor   `json:"state"`
	TileLimit int      `json:"tileLimit"`
	Tiles     []string `json:"tiles"`
	Score     int      `json:"score"`
}

func NewUserID() string {
	return uuid.NewString()
}

func NewUser(id, username string, tileLimit int) *User {
	if username == "" {
		username = DefaultUsername
	}

	if tileLimit <= 0 {
		tileLimit = DefaultTileLimit
	}

	return &User{
		ID:        id,
		Username:  username,
		State:     Cursor{X: noCursor, Y: noCursor},
		TileLimit: tileLimit,
		Tiles:     []string{},
	}
}

func (that *User) ResetCursor() {
	that.State = Cursor{X: noCursor, Y: noCursor}
}

// SpendTiles - removes the tiles at the given rack indexes, keeping the order of the rest.
func (that *User) SpendTiles(indexes []int) {
	spent := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		spent[i] = struct{}{}
	}

	rack := make([]string, 0, len(that.Tiles))
	for i, tile := range that.Tiles {
		if _, ok := spent[i]; !ok {
			rack = append(rack, tile)
		}
	}

	that.Tiles = rack
}
