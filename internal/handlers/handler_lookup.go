package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

type lookupHandler struct {
	lookupService portssvc.LookupSvcFacade
}

func registerLookupRoutes(rg *gin.RouterGroup, svc portssvc.LookupSvcFacade) {
	h := &lookupHandler{lookupService: svc}

	rg.GET("/leadstages", h.listLeadStages)
	rg.GET("/contractstatuses", h.listContractStatuses)
}

// listLeadStages godoc
// @Summary List lead stages
// @Tags lookups
// @Produce json
// @Success 200 {array} dto.LookupResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BasicAuth
// @Security BearerAuth
// @Router /leadstages [get]
func (h *lookupHandler) listLeadStages(c *gin.Context) {
	stages, err := h.lookupService.ListLeadStages(c.Request.Context())
	if err != nil {
		respondError(c, err, "list", "Lead stage")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeadStageResponse(stages))
}

// listContractStatuses godoc
// @Summary List contract statuses
// @Tags lookups
// @Produce json
// @Success 200 {array} dto.LookupResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BasicAuth
// @Security BearerAuth
// @Router /contractstatuses [get]
func (h *lookupHandler) listContractStatuses(c *gin.Context) {
	statuses, err := h.lookupService.ListContractStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err, "list", "Contract status")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContractStatusResponse(statuses))
}
