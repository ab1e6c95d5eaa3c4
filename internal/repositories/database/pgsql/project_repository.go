package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

// PgxProjectRepository stores projects and their product_projects links.
type PgxProjectRepository struct {
	*entityRepository[domain.Project, models.Project]
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{newEntityRepository(pool, tableSpec[domain.Project, models.Project]{
		entity: "Project",
		table:  "projects",
		selectSQL: `
SELECT p.id, p.name, p.description, p.start_date, p.client_id, c.name AS client_name
FROM projects p
LEFT JOIN clients c ON c.id = p.client_id`,
		idColumn:  "p.id",
		insertSQL: `INSERT INTO projects (name, description, start_date, client_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		updateSQL: `UPDATE projects SET name = $2, description = $3, start_date = $4, client_id = $5 WHERE id = $1`,
		insertArgs: func(p *domain.Project) []any {
			return []any{p.Name, p.Description, p.StartDate, p.ClientID}
		},
		updateArgs: func(p *domain.Project) []any {
			return []any{p.ID, p.Name, p.Description, p.StartDate, p.ClientID}
		},
		toDomain: func(m models.Project) domain.Project {
			return domain.Project{
				ID:          m.ID,
				Name:        m.Name,
				Description: m.Description,
				StartDate:   m.StartDate,
				ClientID:    m.ClientID,
				ClientName:  m.ClientName,
			}
		},
	})}
}

const projectProductsQuery = `
SELECT pp.project_id, pp.product_id, pr.name AS product_name, pp.quantity
FROM product_projects pp
JOIN products pr ON pr.id = pp.product_id
WHERE pp.project_id = ANY($1)
ORDER BY pp.project_id, pp.id`

// productLinks loads the product links of the given projects keyed by project id.
func (r *PgxProjectRepository) productLinks(ctx context.Context, projectIDs []int64) (map[int64][]domain.ProjectProduct, error) {
	rows, err := r.Pool.Query(ctx, projectProductsQuery, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query project products: %w", err)
	}
	links, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProjectProduct])
	if err != nil {
		return nil, fmt.Errorf("failed to collect project products: %w", err)
	}

	byProject := make(map[int64][]domain.ProjectProduct, len(projectIDs))
	for _, l := range links {
		byProject[l.ProjectID] = append(byProject[l.ProjectID], domain.ProjectProduct{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
		})
	}
	return byProject, nil
}

func (r *PgxProjectRepository) attachProducts(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]int64, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	byProject, err := r.productLinks(ctx, ids)
	if err != nil {
		return err
	}
	for i := range projects {
		products := byProject[projects[i].ID]
		if products == nil {
			products = []domain.ProjectProduct{}
		}
		projects[i].Products = products
	}
	return nil
}

func (r *PgxProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := r.entityRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	one := []domain.Project{*project}
	if err := r.attachProducts(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *PgxProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := r.entityRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.attachProducts(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create inserts the project and one product link per entry of p.Products in one transaction.
func (r *PgxProjectRepository) Create(ctx context.Context, p *domain.Project) (int64, error) {
	var id int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = r.create(ctx, tx, p)
		if err != nil {
			return err
		}
		return insertProjectProducts(ctx, tx, id, p.Products)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the project row. A non-nil p.Products replaces every link of the project.
func (r *PgxProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := r.update(ctx, tx, p); err != nil {
			return err
		}
		if p.Products == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM product_projects WHERE project_id = $1`, p.ID); err != nil {
			return fmt.Errorf("failed to clear products of project %d: %w", p.ID, err)
		}
		return insertProjectProducts(ctx, tx, p.ID, p.Products)
	})
}

func insertProjectProducts(ctx context.Context, tx pgx.Tx, projectID int64, products []domain.ProjectProduct) error {
	if len(products) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pp := range products {
		qty := pp.Quantity
		if qty <= 0 {
			qty = domain.DefaultProjectProductQuantity
		}
		batch.Queue(`INSERT INTO product_projects (product_id, project_id, quantity) VALUES ($1, $2, $3)`,
			pp.ProductID, projectID, qty)
	}

	br := tx.SendBatch(ctx, batch)
	for range products {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateError(err, "Project")
		}
	}
	return br.Close()
}
