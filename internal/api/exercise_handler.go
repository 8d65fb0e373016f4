package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubmanager/internal/domain"
	"clubmanager/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseRequest creates or updates a drill catalog entry.
type ExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	VideoURL    string `json:"videoUrl"`
}

// ExerciseResponse is the DTO for returning a catalog entry.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

func mapExerciseToResponse(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          e.ID.Hex(),
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		VideoURL:    e.VideoURL,
	}
}

// --- Handler Methods ---

// CreateExercise adds a drill to the club catalog.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clubID, err := getClubIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify club from token.")
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), clubID, req.Name, req.Description, req.Category, req.VideoURL)
	if err != nil {
		respondExerciseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapExerciseToResponse(exercise))
}

// GetExercise returns one catalog entry by ID.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), clubID, id)
	if err != nil {
		respondExerciseError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapExerciseToResponse(exercise))
}

// ListExercises returns the club catalog.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	clubID, err := getClubIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify club from token.")
		return
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), clubID)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to list exercises: "+err.Error())
		return
	}
	responses := make([]ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		responses = append(responses, mapExerciseToResponse(&exercises[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateExercise rewrites a catalog entry.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), clubID, id, req.Name, req.Description, req.Category, req.VideoURL)
	if err != nil {
		respondExerciseError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapExerciseToResponse(exercise))
}

// DeleteExercise removes a catalog entry.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), clubID, id); err != nil {
		respondExerciseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondExerciseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExerciseAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusBadGateway, "Exercise operation failed: "+err.Error())
	}
}
