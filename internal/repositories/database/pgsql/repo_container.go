package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VendorRepo:    newPgxVendorRepository(dbPool),
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		EmployeeRepo:  newPgxEmployeeRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		LeadRepo:      newPgxLeadRepository(dbPool),
		ContractRepo:  newPgxContractRepository(dbPool),
		TaskRepo:      newPgxTaskRepository(dbPool),
		RoomRepo:      newPgxRoomRepository(dbPool),
		ItemRepo:      newPgxItemRepository(dbPool),
		ProposalRepo:  newPgxProposalRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		NoteRepo:      newPgxNoteRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		LookupRepo:    newPgxLookupRepository(dbPool),
	}
}
