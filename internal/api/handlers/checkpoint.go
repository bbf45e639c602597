package handlers

import (
	"errors"
	"net/http"

	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckpointHandler handles HTTP requests for checkpoints
type CheckpointHandler struct {
	service service.CheckpointServiceInterface
}

// NewCheckpointHandler creates a new checkpoint handler
func NewCheckpointHandler(service service.CheckpointServiceInterface) *CheckpointHandler {
	return &CheckpointHandler{service: service}
}

// CreateCheckpoint handles POST /api/v1/checkpoints
// @Summary Create a new checkpoint
// @Description Create a new checkpoint post within a branch
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param checkpoint body service.CreateCheckpointRequest true "Checkpoint data"
// @Success 201 {object} service.CheckpointResponse "Successfully created checkpoint"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /checkpoints [post]
func (h *CheckpointHandler) CreateCheckpoint(c *gin.Context) {
	var req service.CreateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	checkpoint, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkpoint", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, checkpoint)
}

// GetCheckpoint handles GET /api/v1/checkpoints/:id
// @Summary Get checkpoint by ID
// @Description Get a specific checkpoint by its UUID
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param id path string true "Checkpoint ID (UUID)"
// @Success 200 {object} service.CheckpointResponse "Successfully retrieved checkpoint"
// @Failure 400 {object} map[string]interface{} "Invalid checkpoint ID"
// @Failure 404 {object} map[string]interface{} "Checkpoint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /checkpoints/{id} [get]
func (h *CheckpointHandler) GetCheckpoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkpoint ID: invalid UUID format"})
		return
	}

	checkpoint, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCheckpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get checkpoint", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, checkpoint)
}

// UpdateCheckpoint handles PUT /api/v1/checkpoints/:id
// @Summary Update a checkpoint
// @Description Update an existing checkpoint's details
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param id path string true "Checkpoint ID (UUID)"
// @Param checkpoint body service.UpdateCheckpointRequest true "Checkpoint data"
// @Success 200 {object} service.CheckpointResponse "Successfully updated checkpoint"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Checkpoint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /checkpoints/{id} [put]
func (h *CheckpointHandler) UpdateCheckpoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkpoint ID: invalid UUID format"})
		return
	}

	var req service.UpdateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	checkpoint, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCheckpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checkpoint", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, checkpoint)
}

// DeleteCheckpoint handles DELETE /api/v1/checkpoints/:id
// @Summary Delete a checkpoint
// @Description Delete a checkpoint by its UUID
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param id path string true "Checkpoint ID (UUID)"
// @Success 204 "Successfully deleted checkpoint"
// @Failure 400 {object} map[string]interface{} "Invalid checkpoint ID"
// @Failure 404 {object} map[string]interface{} "Checkpoint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /checkpoints/{id} [delete]
func (h *CheckpointHandler) DeleteCheckpoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkpoint ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCheckpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete checkpoint", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
