package services

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &entityService[domain.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]{
		entity: "Employee",
		repo:   repo,
		build: func(req dto.CreateEmployeeRequest) (*domain.Employee, error) {
			if err := requireText("name", req.Name); err != nil {
				return nil, err
			}
			return &domain.Employee{Name: req.Name}, nil
		},
		apply: func(e *domain.Employee, req dto.UpdateEmployeeRequest) error {
			return setTextIfPresent("name", &e.Name, req.Name)
		},
	}
}
