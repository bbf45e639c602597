package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgencyHandler handles HTTP requests for staffing agencies
type AgencyHandler struct {
	service service.AgencyServiceInterface
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(service service.AgencyServiceInterface) *AgencyHandler {
	return &AgencyHandler{service: service}
}

// CreateAgency handles POST /api/v1/agencies
// @Summary Create a new agency
// @Description Create a new staffing agency with the provided details
// @Tags agencies
// @Accept json
// @Produce json
// @Param agency body service.CreateAgencyRequest true "Agency data"
// @Success 201 {object} service.AgencyResponse "Successfully created agency"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Agency already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agencies [post]
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	var req service.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agency, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgencyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agency", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, agency)
}

// GetAgency handles GET /api/v1/agencies/:id
// @Summary Get agency by ID
// @Description Get a specific agency by its UUID
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Success 200 {object} service.AgencyResponse "Successfully retrieved agency"
// @Failure 400 {object} map[string]interface{} "Invalid agency ID"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agencies/{id} [get]
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agency ID: invalid UUID format"})
		return
	}

	agency, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get agency", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agency)
}

// ListAgencies handles GET /api/v1/agencies
// @Summary List agencies
// @Description Get a paginated list of staffing agencies
// @Tags agencies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AgencyListResponse "Successfully retrieved agencies"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agencies [get]
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	agencies, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list agencies", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agencies)
}

// UpdateAgency handles PUT /api/v1/agencies/:id
// @Summary Update an agency
// @Description Update an existing agency's details
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Param agency body service.UpdateAgencyRequest true "Agency data"
// @Success 200 {object} service.AgencyResponse "Successfully updated agency"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agencies/{id} [put]
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agency ID: invalid UUID format"})
		return
	}

	var req service.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agency, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agency", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agency)
}

// DeleteAgency handles DELETE /api/v1/agencies/:id
// @Summary Delete an agency
// @Description Delete an agency by its UUID
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Success 204 "Successfully deleted agency"
// @Failure 400 {object} map[string]interface{} "Invalid agency ID"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agencies/{id} [delete]
func (h *AgencyHandler) DeleteAgency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agency ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAgencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agency", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
