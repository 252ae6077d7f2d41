package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk-backend/internal/http/response"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
	"github.com/dealdesk/dealdesk-backend/internal/services"
)

type CompanyHandler struct {
	log            *logger.Logger
	companyService services.CompanyService
}

func NewCompanyHandler(log *logger.Logger, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		log:            log.With("handler", "CompanyHandler"),
		companyService: companyService,
	}
}

// POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var in services.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	company, err := h.companyService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	result, err := h.companyService.List(c.Request.Context(), pageQuery(c))
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	company, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"company": company})
}

// PATCH /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var patch services.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	company, err := h.companyService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"company": company})
}

// DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
