package services

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// NewProjectService creates the project service. Product links are written
// by the repository in the same transaction as the project row.
func NewProjectService(repo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &entityService[domain.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]{
		entity: "Project",
		repo:   repo,
		build:  buildProject,
		apply:  applyProjectUpdate,
	}
}

func buildProject(req dto.CreateProjectRequest) (*domain.Project, error) {
	if err := requireText("name", req.Name); err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	return &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		ClientID:    req.ClientID,
		Products:    productLinks(req.ProductIDs),
	}, nil
}

func applyProjectUpdate(p *domain.Project, req dto.UpdateProjectRequest) error {
	if err := setTextIfPresent("name", &p.Name, req.Name); err != nil {
		return err
	}
	setNullable(&p.Description, req.Description)
	if err := setDate("start_date", &p.StartDate, req.StartDate); err != nil {
		return err
	}
	setNullable(&p.ClientID, req.ClientID)
	// nil links tell the repository to leave product_projects untouched
	p.Products = nil
	if req.ProductIDs != nil {
		p.Products = productLinks(req.ProductIDs)
	}
	return nil
}

// productLinks links each product once with the default quantity.
func productLinks(productIDs []int64) []domain.ProjectProduct {
	links := make([]domain.ProjectProduct, len(productIDs))
	for i, id := range productIDs {
		links[i] = domain.ProjectProduct{ProductID: id, Quantity: domain.DefaultProjectProductQuantity}
	}
	return links
}
