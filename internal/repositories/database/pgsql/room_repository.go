package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxRoomRepository struct {
	*entityRepository[domain.Room, models.Room]
}

var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{newEntityRepository(pool, tableSpec[domain.Room, models.Room]{
		entity: "Room",
		table:  "rooms",
		selectSQL: `
SELECT r.id, r.name, r.project_id, p.name AS project_name
FROM rooms r
LEFT JOIN projects p ON p.id = r.project_id`,
		idColumn:   "r.id",
		insertSQL:  `INSERT INTO rooms (name, project_id) VALUES ($1, $2) RETURNING id`,
		updateSQL:  `UPDATE rooms SET name = $2, project_id = $3 WHERE id = $1`,
		insertArgs: func(r *domain.Room) []any { return []any{r.Name, r.ProjectID} },
		updateArgs: func(r *domain.Room) []any { return []any{r.ID, r.Name, r.ProjectID} },
		toDomain: func(m models.Room) domain.Room {
			return domain.Room{ID: m.ID, Name: m.Name, ProjectID: m.ProjectID, ProjectName: m.ProjectName}
		},
	})}
}

type PgxItemRepository struct {
	*entityRepository[domain.Item, models.Item]
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{newEntityRepository(pool, tableSpec[domain.Item, models.Item]{
		entity: "Item",
		table:  "items",
		selectSQL: `
SELECT i.id, i.name, i.room_id, r.name AS room_name
FROM items i
LEFT JOIN rooms r ON r.id = i.room_id`,
		idColumn:   "i.id",
		insertSQL:  `INSERT INTO items (name, room_id) VALUES ($1, $2) RETURNING id`,
		updateSQL:  `UPDATE items SET name = $2, room_id = $3 WHERE id = $1`,
		insertArgs: func(it *domain.Item) []any { return []any{it.Name, it.RoomID} },
		updateArgs: func(it *domain.Item) []any { return []any{it.ID, it.Name, it.RoomID} },
		toDomain: func(m models.Item) domain.Item {
			return domain.Item{ID: m.ID, Name: m.Name, RoomID: m.RoomID, RoomName: m.RoomName}
		},
	})}
}

type PgxNoteRepository struct {
	*entityRepository[domain.Note, models.Note]
}

var _ portsrepo.NoteRepositoryFacade = (*PgxNoteRepository)(nil)

func newPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepositoryFacade {
	return &PgxNoteRepository{newEntityRepository(pool, tableSpec[domain.Note, models.Note]{
		entity: "Note",
		table:  "notes",
		selectSQL: `
SELECT n.id, n.text, n.project_id, p.name AS project_name
FROM notes n
LEFT JOIN projects p ON p.id = n.project_id`,
		idColumn:   "n.id",
		insertSQL:  `INSERT INTO notes (text, project_id) VALUES ($1, $2) RETURNING id`,
		updateSQL:  `UPDATE notes SET text = $2, project_id = $3 WHERE id = $1`,
		insertArgs: func(n *domain.Note) []any { return []any{n.Text, n.ProjectID} },
		updateArgs: func(n *domain.Note) []any { return []any{n.ID, n.Text, n.ProjectID} },
		toDomain: func(m models.Note) domain.Note {
			return domain.Note{ID: m.ID, Text: m.Text, ProjectID: m.ProjectID, ProjectName: m.ProjectName}
		},
	})}
}
