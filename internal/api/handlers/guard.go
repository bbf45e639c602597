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

// GuardHandler handles HTTP requests for guards
type GuardHandler struct {
	service service.GuardServiceInterface
}

// NewGuardHandler creates a new guard handler
func NewGuardHandler(service service.GuardServiceInterface) *GuardHandler {
	return &GuardHandler{service: service}
}

// CreateGuard handles POST /api/v1/guards
// @Summary Create a new guard
// @Description Register a new security guard
// @Tags guards
// @Accept json
// @Produce json
// @Param guard body service.CreateGuardRequest true "Guard data"
// @Success 201 {object} service.GuardResponse "Successfully created guard"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 409 {object} map[string]interface{} "Guard already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /guards [post]
func (h *GuardHandler) CreateGuard(c *gin.Context) {
	var req service.CreateGuardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	guard, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrGuardExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guard", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, guard)
}

// GetGuard handles GET /api/v1/guards/:id
// @Summary Get guard by ID
// @Description Get a specific guard by their UUID
// @Tags guards
// @Accept json
// @Produce json
// @Param id path string true "Guard ID (UUID)"
// @Success 200 {object} service.GuardResponse "Successfully retrieved guard"
// @Failure 400 {object} map[string]interface{} "Invalid guard ID"
// @Failure 404 {object} map[string]interface{} "Guard not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /guards/{id} [get]
func (h *GuardHandler) GetGuard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guard ID: invalid UUID format"})
		return
	}

	guard, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGuardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get guard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, guard)
}

// ListGuards handles GET /api/v1/guards
// @Summary List guards
// @Description Get a paginated list of guards, optionally restricted to one branch
// @Tags guards
// @Accept json
// @Produce json
// @Param branch_id query string false "Branch ID (UUID)"
// @Param active query bool false "Only guards with active status (with branch_id)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.GuardListResponse "Successfully retrieved guards"
// @Failure 400 {object} map[string]interface{} "Invalid branch ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /guards [get]
func (h *GuardHandler) ListGuards(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if branchIDStr := c.Query("branch_id"); branchIDStr != "" {
		branchID, err := uuid.Parse(branchIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID: invalid UUID format"})
			return
		}
		activeOnly := c.Query("active") == "true"
		guards, err := h.service.GetByBranchID(branchID, activeOnly, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list guards", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, guards)
		return
	}

	guards, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list guards", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, guards)
}

// UpdateGuard handles PUT /api/v1/guards/:id
// @Summary Update a guard
// @Description Update an existing guard's details
// @Tags guards
// @Accept json
// @Produce json
// @Param id path string true "Guard ID (UUID)"
// @Param guard body service.UpdateGuardRequest true "Guard data"
// @Success 200 {object} service.GuardResponse "Successfully updated guard"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Guard not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /guards/{id} [put]
func (h *GuardHandler) UpdateGuard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guard ID: invalid UUID format"})
		return
	}

	var req service.UpdateGuardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	guard, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrGuardNotFound), errors.Is(err, apperrors.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guard", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, guard)
}

// DeleteGuard handles DELETE /api/v1/guards/:id
// @Summary Delete a guard
// @Description Delete a guard by their UUID
// @Tags guards
// @Accept json
// @Produce json
// @Param id path string true "Guard ID (UUID)"
// @Success 204 "Successfully deleted guard"
// @Failure 400 {object} map[string]interface{} "Invalid guard ID"
// @Failure 404 {object} map[string]interface{} "Guard not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /guards/{id} [delete]
func (h *GuardHandler) DeleteGuard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guard ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrGuardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guard", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
