package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxProposalRepository struct {
	*entityRepository[domain.Proposal, models.Proposal]
}

var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

func newPgxProposalRepository(pool *pgxpool.Pool) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{newEntityRepository(pool, tableSpec[domain.Proposal, models.Proposal]{
		entity: "Proposal",
		table:  "proposals",
		selectSQL: `
SELECT pr.id, pr.project_id, p.name AS project_name, pr.description
FROM proposals pr
LEFT JOIN projects p ON p.id = pr.project_id`,
		idColumn:  "pr.id",
		insertSQL: `INSERT INTO proposals (project_id, description) VALUES ($1, $2) RETURNING id`,
		updateSQL: `UPDATE proposals SET project_id = $2, description = $3 WHERE id = $1`,
		insertArgs: func(p *domain.Proposal) []any {
			return []any{p.ProjectID, p.Description}
		},
		updateArgs: func(p *domain.Proposal) []any {
			return []any{p.ID, p.ProjectID, p.Description}
		},
		toDomain: func(m models.Proposal) domain.Proposal {
			return domain.Proposal{ID: m.ID, ProjectID: m.ProjectID, ProjectName: m.ProjectName, Description: m.Description}
		},
	})}
}

type PgxInvoiceRepository struct {
	*entityRepository[domain.Invoice, models.Invoice]
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{newEntityRepository(pool, tableSpec[domain.Invoice, models.Invoice]{
		entity:     "Invoice",
		table:      "invoices",
		selectSQL:  `SELECT i.id, i.proposal_id, i.amount FROM invoices i`,
		idColumn:   "i.id",
		insertSQL:  `INSERT INTO invoices (proposal_id, amount) VALUES ($1, $2) RETURNING id`,
		updateSQL:  `UPDATE invoices SET proposal_id = $2, amount = $3 WHERE id = $1`,
		insertArgs: func(inv *domain.Invoice) []any { return []any{inv.ProposalID, inv.Amount} },
		updateArgs: func(inv *domain.Invoice) []any { return []any{inv.ID, inv.ProposalID, inv.Amount} },
		toDomain: func(m models.Invoice) domain.Invoice {
			return domain.Invoice{ID: m.ID, ProposalID: m.ProposalID, Amount: m.Amount}
		},
	})}
}
