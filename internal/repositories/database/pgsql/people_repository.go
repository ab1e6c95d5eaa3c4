package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxEmployeeRepository struct {
	*entityRepository[domain.Employee, models.Employee]
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{newEntityRepository(pool, tableSpec[domain.Employee, models.Employee]{
		entity:     "Employee",
		table:      "employees",
		selectSQL:  `SELECT e.id, e.name FROM employees e`,
		idColumn:   "e.id",
		insertSQL:  `INSERT INTO employees (name) VALUES ($1) RETURNING id`,
		updateSQL:  `UPDATE employees SET name = $2 WHERE id = $1`,
		insertArgs: func(e *domain.Employee) []any { return []any{e.Name} },
		updateArgs: func(e *domain.Employee) []any { return []any{e.ID, e.Name} },
		toDomain: func(m models.Employee) domain.Employee {
			return domain.Employee{ID: m.ID, Name: m.Name}
		},
	})}
}

type PgxClientRepository struct {
	*entityRepository[domain.Client, models.Client]
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{newEntityRepository(pool, tableSpec[domain.Client, models.Client]{
		entity: "Client",
		table:  "clients",
		selectSQL: `
SELECT c.id, c.name, c.first_name, c.last_name, c.primary_phone, c.primary_email,
	c.secondary_phone, c.secondary_email, c.referral_type, c.employee_id,
	e.name AS employee_name, c.contact_info
FROM clients c
LEFT JOIN employees e ON e.id = c.employee_id`,
		idColumn: "c.id",
		insertSQL: `
INSERT INTO clients (name, first_name, last_name, primary_phone, primary_email,
	secondary_phone, secondary_email, referral_type, employee_id, contact_info)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`,
		updateSQL: `
UPDATE clients SET name = $2, first_name = $3, last_name = $4, primary_phone = $5,
	primary_email = $6, secondary_phone = $7, secondary_email = $8, referral_type = $9,
	employee_id = $10, contact_info = $11
WHERE id = $1`,
		insertArgs: func(c *domain.Client) []any { return clientColumns(c) },
		updateArgs: func(c *domain.Client) []any { return append([]any{c.ID}, clientColumns(c)...) },
		toDomain: func(m models.Client) domain.Client {
			return domain.Client{
				ID:             m.ID,
				Name:           m.Name,
				FirstName:      m.FirstName,
				LastName:       m.LastName,
				PrimaryPhone:   m.PrimaryPhone,
				PrimaryEmail:   m.PrimaryEmail,
				SecondaryPhone: m.SecondaryPhone,
				SecondaryEmail: m.SecondaryEmail,
				ReferralType:   m.ReferralType,
				EmployeeID:     m.EmployeeID,
				EmployeeName:   m.EmployeeName,
				ContactInfo:    m.ContactInfo,
			}
		},
	})}
}

func clientColumns(c *domain.Client) []any {
	return []any{
		c.Name, c.FirstName, c.LastName, c.PrimaryPhone, c.PrimaryEmail,
		c.SecondaryPhone, c.SecondaryEmail, c.ReferralType, c.EmployeeID, c.ContactInfo,
	}
}

type PgxLeadRepository struct {
	*entityRepository[domain.Lead, models.Lead]
}

var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

func newPgxLeadRepository(pool *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{newEntityRepository(pool, tableSpec[domain.Lead, models.Lead]{
		entity: "Lead",
		table:  "leads",
		selectSQL: `
SELECT l.id, l.name, l.contact_info, l.stage_id, s.name AS stage_name
FROM leads l
LEFT JOIN lead_stages s ON s.id = l.stage_id`,
		idColumn:  "l.id",
		insertSQL: `INSERT INTO leads (name, contact_info, stage_id) VALUES ($1, $2, $3) RETURNING id`,
		updateSQL: `UPDATE leads SET name = $2, contact_info = $3, stage_id = $4 WHERE id = $1`,
		insertArgs: func(l *domain.Lead) []any {
			return []any{l.Name, l.ContactInfo, l.StageID}
		},
		updateArgs: func(l *domain.Lead) []any {
			return []any{l.ID, l.Name, l.ContactInfo, l.StageID}
		},
		toDomain: func(m models.Lead) domain.Lead {
			return domain.Lead{ID: m.ID, Name: m.Name, ContactInfo: m.ContactInfo, StageID: m.StageID, StageName: m.StageName}
		},
	})}
}
