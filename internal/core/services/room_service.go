package services

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

func NewRoomService(repo portsrepo.RoomRepositoryFacade) portssvc.RoomSvcFacade {
	return &entityService[domain.Room, dto.CreateRoomRequest, dto.UpdateRoomRequest]{
		entity: "Room",
		repo:   repo,
		build: func(req dto.CreateRoomRequest) (*domain.Room, error) {
			if err := requireText("name", req.Name); err != nil {
				return nil, err
			}
			return &domain.Room{Name: req.Name, ProjectID: req.ProjectID}, nil
		},
		apply: func(r *domain.Room, req dto.UpdateRoomRequest) error {
			if err := setTextIfPresent("name", &r.Name, req.Name); err != nil {
				return err
			}
			setNullable(&r.ProjectID, req.ProjectID)
			return nil
		},
	}
}

func NewItemService(repo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &entityService[domain.Item, dto.CreateItemRequest, dto.UpdateItemRequest]{
		entity: "Item",
		repo:   repo,
		build: func(req dto.CreateItemRequest) (*domain.Item, error) {
			if err := requireText("name", req.Name); err != nil {
				return nil, err
			}
			return &domain.Item{Name: req.Name, RoomID: req.RoomID}, nil
		},
		apply: func(it *domain.Item, req dto.UpdateItemRequest) error {
			if err := setTextIfPresent("name", &it.Name, req.Name); err != nil {
				return err
			}
			setNullable(&it.RoomID, req.RoomID)
			return nil
		},
	}
}

func NewNoteService(repo portsrepo.NoteRepositoryFacade) portssvc.NoteSvcFacade {
	return &entityService[domain.Note, dto.CreateNoteRequest, dto.UpdateNoteRequest]{
		entity: "Note",
		repo:   repo,
		build: func(req dto.CreateNoteRequest) (*domain.Note, error) {
			if err := requireText("text", req.Text); err != nil {
				return nil, err
			}
			return &domain.Note{Text: req.Text, ProjectID: req.ProjectID}, nil
		},
		apply: func(n *domain.Note, req dto.UpdateNoteRequest) error {
			if err := setTextIfPresent("text", &n.Text, req.Text); err != nil {
				return err
			}
			setNullable(&n.ProjectID, req.ProjectID)
			return nil
		},
	}
}
