package domain

// Room is a space within a project.
type Room struct {
	ID          int64
	Name        string
	ProjectID   *int64
	ProjectName *string
}

// Item is a piece placed in a room.
type Item struct {
	ID       int64
	Name     string
	RoomID   *int64
	RoomName *string
}
