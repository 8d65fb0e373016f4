package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/planner"
	"clubmanager/internal/service"
)

// SessionHandler holds the session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

// SessionRequest creates or rewrites one raw planner record. Title and
// description are stored verbatim; callers that want encoded slots should
// use the planner endpoints instead.
type SessionRequest struct {
	TeamID      string             `json:"teamId" binding:"required"`
	Date        string             `json:"date" binding:"required"` // YYYY-MM-DD
	Type        domain.SessionType `json:"type" binding:"required"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
}

// SessionResponse is the DTO for returning a planner record.
type SessionResponse struct {
	ID          string             `json:"id"`
	TeamID      string             `json:"teamId"`
	Date        string             `json:"date"`
	Type        domain.SessionType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedBy   string             `json:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func mapSessionToResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID.Hex(),
		TeamID:      s.TeamID.Hex(),
		Date:        planner.YMD(s.Date),
		Type:        s.Type,
		Title:       s.Title,
		Description: s.Description,
		CreatedBy:   s.CreatedBy.Hex(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// --- Handler Methods ---

// CreateSession stores a new raw record.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	teamID, day, actor, ok := teamDayActor(c, req.TeamID, req.Date)
	if !ok {
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), teamID, actor, day, req.Type, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) || errors.Is(err, service.ErrInvalidSessionType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to create session: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, mapSessionToResponse(session))
}

// GetSession returns one record by ID.
func (h *SessionHandler) GetSession(c *gin.Context) {
	teamID, ok := teamIDQuery(c)
	if !ok {
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid session ID format.")
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), teamID, id)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSessionToResponse(session))
}

// ListWeek returns the raw records of the week containing ?date=.
func (h *SessionHandler) ListWeek(c *gin.Context) {
	teamID, ok := teamIDQuery(c)
	if !ok {
		return
	}
	ref, err := planner.ParseYMD(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' must be YYYY-MM-DD.")
		return
	}

	sessions, err := h.sessionService.ListWeek(c.Request.Context(), teamID, ref)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to list sessions: "+err.Error())
		return
	}
	responses := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, mapSessionToResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateSession rewrites a record's mutable fields.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid session ID format.")
		return
	}
	teamID, day, _, ok := teamDayActor(c, req.TeamID, req.Date)
	if !ok {
		return
	}

	session, err := h.sessionService.UpdateSession(c.Request.Context(), teamID, id, day, req.Type, req.Title, req.Description)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSessionToResponse(session))
}

// DeleteSession removes one record.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	teamID, ok := teamIDQuery(c)
	if !ok {
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid session ID format.")
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), teamID, id); err != nil {
		respondSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrInvalidSessionType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusBadGateway, "Session operation failed: "+err.Error())
	}
}
