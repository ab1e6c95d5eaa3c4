package dto

import "github.com/schergr/interiordesign/internal/core/domain"

type CreateRoomRequest struct {
	Name      string `json:"name" binding:"required,notblank"`
	ProjectID *int64 `json:"project_id"`
}

type UpdateRoomRequest struct {
	Name      *string         `json:"name" binding:"omitempty,notblank"`
	ProjectID Nullable[int64] `json:"project_id" swaggertype:"integer"`
}

type RoomResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ProjectID *int64  `json:"project_id"`
	Project   *string `json:"project"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name, ProjectID: r.ProjectID, Project: r.ProjectName}
}

func ToListRoomResponse(rooms []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i := range rooms {
		res[i] = ToRoomResponse(&rooms[i])
	}
	return res
}

type CreateItemRequest struct {
	Name   string `json:"name" binding:"required,notblank"`
	RoomID *int64 `json:"room_id"`
}

type UpdateItemRequest struct {
	Name   *string         `json:"name" binding:"omitempty,notblank"`
	RoomID Nullable[int64] `json:"room_id" swaggertype:"integer"`
}

type ItemResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	RoomID *int64  `json:"room_id"`
	Room   *string `json:"room"`
}

func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{ID: it.ID, Name: it.Name, RoomID: it.RoomID, Room: it.RoomName}
}

func ToListItemResponse(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i := range items {
		res[i] = ToItemResponse(&items[i])
	}
	return res
}
