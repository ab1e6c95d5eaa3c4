package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxContractRepository struct {
	*entityRepository[domain.Contract, models.Contract]
}

// Ensure PgxContractRepository implements portsrepo.ContractRepositoryFacade
var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{newEntityRepository(pool, tableSpec[domain.Contract, models.Contract]{
		entity: "Contract",
		table:  "contracts",
		selectSQL: `
SELECT c.id,
	c.client_id, cl.name AS client_name,
	c.employee_id, e.name AS employee_name,
	c.project_id, p.name AS project_name,
	c.lead_id, l.name AS lead_name,
	c.status_id, s.name AS status_name,
	c.start_date, c.end_date, c.amount
FROM contracts c
LEFT JOIN clients cl ON cl.id = c.client_id
LEFT JOIN employees e ON e.id = c.employee_id
LEFT JOIN projects p ON p.id = c.project_id
LEFT JOIN leads l ON l.id = c.lead_id
LEFT JOIN contract_statuses s ON s.id = c.status_id`,
		idColumn: "c.id",
		insertSQL: `
INSERT INTO contracts (client_id, employee_id, project_id, lead_id, status_id, start_date, end_date, amount)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`,
		updateSQL: `
UPDATE contracts SET client_id = $2, employee_id = $3, project_id = $4, lead_id = $5,
	status_id = $6, start_date = $7, end_date = $8, amount = $9
WHERE id = $1`,
		insertArgs: func(c *domain.Contract) []any { return contractColumns(c) },
		updateArgs: func(c *domain.Contract) []any { return append([]any{c.ID}, contractColumns(c)...) },
		toDomain: func(m models.Contract) domain.Contract {
			return domain.Contract{
				ID:           m.ID,
				ClientID:     m.ClientID,
				ClientName:   m.ClientName,
				EmployeeID:   m.EmployeeID,
				EmployeeName: m.EmployeeName,
				ProjectID:    m.ProjectID,
				ProjectName:  m.ProjectName,
				LeadID:       m.LeadID,
				LeadName:     m.LeadName,
				StatusID:     m.StatusID,
				StatusName:   m.StatusName,
				StartDate:    m.StartDate,
				EndDate:      m.EndDate,
				Amount:       m.Amount,
			}
		},
	})}
}

func contractColumns(c *domain.Contract) []any {
	return []any{c.ClientID, c.EmployeeID, c.ProjectID, c.LeadID, c.StatusID, c.StartDate, c.EndDate, c.Amount}
}
