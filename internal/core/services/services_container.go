package services

import (
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, syncer portssvc.TaskSyncer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Vendor:    NewVendorService(repos.VendorRepo),
		Document:  NewDocumentService(repos.DocumentRepo),
		Product:   NewProductService(repos.ProductRepo),
		Inventory: NewInventoryService(repos.InventoryRepo),
		Employee:  NewEmployeeService(repos.EmployeeRepo),
		Client:    NewClientService(repos.ClientRepo),
		Project:   NewProjectService(repos.ProjectRepo),
		Lead:      NewLeadService(repos.LeadRepo),
		Contract:  NewContractService(repos.ContractRepo),
		Task:      NewTaskService(repos.TaskRepo, syncer, cfg.TaskSyncTimeout),
		Room:      NewRoomService(repos.RoomRepo),
		Item:      NewItemService(repos.ItemRepo),
		Proposal:  NewProposalService(repos.ProposalRepo),
		Invoice:   NewInvoiceService(repos.InvoiceRepo),
		Note:      NewNoteService(repos.NoteRepo),
		Lookup:    NewLookupService(repos.LookupRepo),
		User:      NewUserService(repos.UserRepo),
		Token:     NewTokenService(cfg),
	}
}
