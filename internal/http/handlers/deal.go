package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk-backend/internal/http/response"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
	"github.com/dealdesk/dealdesk-backend/internal/services"
)

type DealHandler struct {
	log         *logger.Logger
	dealService services.DealService
}

func NewDealHandler(log *logger.Logger, dealService services.DealService) *DealHandler {
	return &DealHandler{
		log:         log.With("handler", "DealHandler"),
		dealService: dealService,
	}
}

// POST /deals
func (h *DealHandler) Create(c *gin.Context) {
	var in services.DealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	deal, err := h.dealService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deal": deal})
}

// GET /deals
func (h *DealHandler) List(c *gin.Context) {
	result, err := h.dealService.List(c.Request.Context(), pageQuery(c))
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /deals/:id
func (h *DealHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	deal, err := h.dealService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deal": deal})
}

// PATCH /deals/:id
func (h *DealHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var patch services.DealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	deal, err := h.dealService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deal": deal})
}

// DELETE /deals/:id
func (h *DealHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.dealService.Delete(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
