package usecase

import "github.com/rocketscienceinc/wordroom-backend/internal/entity"

// UserView - what every member of the room sees about a user. Rack letters stay private.
type UserView struct {
	Username  string        `json:"username"`
	State     entity.Cursor `json:"state"`
	TileLimit int           `json:"tileLimit"`
	TileCount int           `json:"tileCount"`
	Score     int           `json:"score"`
}

// UserData - the part of a view only its recipient gets.
type UserData struct {
	Tiles []string `json:"tiles"`
	Error string   `json:"error,omitempty"`
}

type View struct {
	RoomID   string              `json:"roomId"`
	Board    *entity.Board       `json:"board"`
	Users    map[string]UserView `json:"users"`
	UserData UserData            `json:"userData"`
}

// Project - the payload for one recipient. Views of two members of the same room differ only in UserData.
func Project(roomID string, board *entity.Board, users map[string]*entity.User, target, errMsg string) View {
	view := View{
		RoomID: roomID,
		Board:  board,
		Users:  make(map[string]UserView, len(users)),
		UserData: UserData{
			Tiles: []string{},
			Error: errMsg,
		},
	}

	for id, user := range users {
		view.Users[id] = UserView{
			Username:  user.Username,
			State:     user.State,
			TileLimit: user.TileLimit,
			TileCount: len(user.Tiles),
			Score:     user.Score,
		}
	}

	if user, ok := users[target]; ok {
		view.UserData.Tiles = append(view.UserData.Tiles, user.Tiles...)
	}

	return view
}
