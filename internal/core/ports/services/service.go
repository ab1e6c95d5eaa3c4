package services

import (
	"context"

	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/dto"
)

type VendorSvcFacade interface {
	EntitySvc[domain.Vendor, dto.CreateVendorRequest, dto.UpdateVendorRequest]
}

type DocumentSvcFacade interface {
	EntitySvc[domain.Document, dto.CreateDocumentRequest, dto.UpdateDocumentRequest]
}

type ProductSvcFacade interface {
	EntitySvc[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
}

type InventorySvcFacade interface {
	EntitySvc[domain.InventoryRecord, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]
}

type EmployeeSvcFacade interface {
	EntitySvc[domain.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
}

type ClientSvcFacade interface {
	EntitySvc[domain.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
}

type ProjectSvcFacade interface {
	EntitySvc[domain.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]
}

type LeadSvcFacade interface {
	EntitySvc[domain.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest]
}

type ContractSvcFacade interface {
	EntitySvc[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest]
}

// TaskSvcFacade creates tasks and pushes new ones to the external to-do service.
type TaskSvcFacade interface {
	EntitySvc[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
}

type RoomSvcFacade interface {
	EntitySvc[domain.Room, dto.CreateRoomRequest, dto.UpdateRoomRequest]
}

type ItemSvcFacade interface {
	EntitySvc[domain.Item, dto.CreateItemRequest, dto.UpdateItemRequest]
}

type ProposalSvcFacade interface {
	EntitySvc[domain.Proposal, dto.CreateProposalRequest, dto.UpdateProposalRequest]
}

type InvoiceSvcFacade interface {
	EntitySvc[domain.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]
}

type NoteSvcFacade interface {
	EntitySvc[domain.Note, dto.CreateNoteRequest, dto.UpdateNoteRequest]
}

// LookupSvcFacade exposes the read-only reference tables.
type LookupSvcFacade interface {
	ListLeadStages(ctx context.Context) ([]domain.LeadStage, error)
	ListContractStatuses(ctx context.Context) ([]domain.ContractStatus, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Vendor    VendorSvcFacade
	Document  DocumentSvcFacade
	Product   ProductSvcFacade
	Inventory InventorySvcFacade
	Employee  EmployeeSvcFacade
	Client    ClientSvcFacade
	Project   ProjectSvcFacade
	Lead      LeadSvcFacade
	Contract  ContractSvcFacade
	Task      TaskSvcFacade
	Room      RoomSvcFacade
	Item      ItemSvcFacade
	Proposal  ProposalSvcFacade
	Invoice   InvoiceSvcFacade
	Note      NoteSvcFacade
	Lookup    LookupSvcFacade
	User      UserSvcFacade
	Token     TokenSvcFacade
}

// StaticDataService seeds the reference tables on startup.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
