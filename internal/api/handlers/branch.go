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

// BranchHandler handles HTTP requests for branches
type BranchHandler struct {
	service           service.BranchServiceInterface
	checkpointService service.CheckpointServiceInterface
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(service service.BranchServiceInterface, checkpointService service.CheckpointServiceInterface) *BranchHandler {
	return &BranchHandler{service: service, checkpointService: checkpointService}
}

// CreateBranch handles POST /api/v1/branches
// @Summary Create a new branch
// @Description Create a new guarded branch with the provided details
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body service.CreateBranchRequest true "Branch data"
// @Success 201 {object} service.BranchResponse "Successfully created branch"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Failure 409 {object} map[string]interface{} "Branch already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req service.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	branch, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBranchExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAgencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// GetBranch handles GET /api/v1/branches/:id
// @Summary Get branch by ID
// @Description Get a specific branch by its UUID
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} service.BranchResponse "Successfully retrieved branch"
// @Failure 400 {object} map[string]interface{} "Invalid branch ID"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID: invalid UUID format"})
		return
	}

	branch, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get branch", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// ListBranches handles GET /api/v1/branches
// @Summary List branches
// @Description Get a paginated list of branches, optionally filtered by name substring or agency
// @Tags branches
// @Accept json
// @Produce json
// @Param q query string false "Name substring filter"
// @Param agency_id query string false "Agency ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BranchListResponse "Successfully retrieved branches"
// @Failure 400 {object} map[string]interface{} "Invalid agency ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if agencyIDStr := c.Query("agency_id"); agencyIDStr != "" {
		agencyID, err := uuid.Parse(agencyIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agency ID: invalid UUID format"})
			return
		}
		branches, err := h.service.GetByAgencyID(agencyID, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, branches)
		return
	}

	branches, err := h.service.GetAll(c.Query("q"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branches)
}

// ListAgencyBranches handles GET /api/v1/agencies/:id/branches
// @Summary List an agency's branches
// @Description Get a paginated list of branches belonging to an agency
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BranchListResponse "Successfully retrieved branches"
// @Failure 400 {object} map[string]interface{} "Invalid agency ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agencies/{id}/branches [get]
func (h *BranchHandler) ListAgencyBranches(c *gin.Context) {
	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agency ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	branches, err := h.service.GetByAgencyID(agencyID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branches)
}

// ListBranchCheckpoints handles GET /api/v1/branches/:id/checkpoints
// @Summary List a branch's checkpoints
// @Description Get a paginated list of checkpoints belonging to a branch
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CheckpointListResponse "Successfully retrieved checkpoints"
// @Failure 400 {object} map[string]interface{} "Invalid branch ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id}/checkpoints [get]
func (h *BranchHandler) ListBranchCheckpoints(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	checkpoints, err := h.checkpointService.GetByBranchID(id, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list checkpoints", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, checkpoints)
}

// UpdateBranch handles PUT /api/v1/branches/:id
// @Summary Update a branch
// @Description Update an existing branch's details
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Param branch body service.UpdateBranchRequest true "Branch data"
// @Success 200 {object} service.BranchResponse "Successfully updated branch"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID: invalid UUID format"})
		return
	}

	var req service.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	branch, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBranchNotFound), errors.Is(err, apperrors.ErrAgencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, branch)
}

// DeleteBranch handles DELETE /api/v1/branches/:id
// @Summary Delete a branch
// @Description Delete a branch by its UUID
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 204 "Successfully deleted branch"
// @Failure 400 {object} map[string]interface{} "Invalid branch ID"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete branch", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
