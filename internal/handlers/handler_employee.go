package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	crud *crudHandler[domain.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse]
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, svc portssvc.EmployeeSvcFacade) {
	h := &employeeHandler{
		crud: newCRUDHandler[domain.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse](
			"Employee", svc, dto.ToEmployeeResponse, dto.ToListEmployeeResponse,
		),
	}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Creates an employee. name is required.
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create employee"
// @Security BasicAuth
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	h.crud.create(c)
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce  json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list employee"
// @Security BasicAuth
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	h.crud.list(c)
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce  json
// @Param   id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve employee"
// @Security BasicAuth
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	h.crud.get(c)
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path int true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update employee"
// @Security BasicAuth
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	h.crud.update(c)
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param   id path int true "Employee ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete employee"
// @Security BasicAuth
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	h.crud.delete(c)
}
