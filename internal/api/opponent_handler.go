package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/service"
)

// OpponentHandler holds the opponent service dependency.
type OpponentHandler struct {
	opponentService service.OpponentService
}

// NewOpponentHandler creates a new OpponentHandler.
func NewOpponentHandler(opponentService service.OpponentService) *OpponentHandler {
	return &OpponentHandler{opponentService: opponentService}
}

// --- DTOs ---

// OpponentRequest creates or updates a rival registry entry.
type OpponentRequest struct {
	Name     string `json:"name" binding:"required"`
	CrestURL string `json:"crestUrl"`
}

// CrestUploadRequest asks for a presigned upload slot for a crest image.
type CrestUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// OpponentResponse is the DTO for returning a rival entry.
type OpponentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CrestURL string `json:"crestUrl,omitempty"`
	HasCrest bool   `json:"hasCrest"`
}

func mapOpponentToResponse(o *domain.Opponent) OpponentResponse {
	return OpponentResponse{
		ID:       o.ID.Hex(),
		Name:     o.Name,
		CrestURL: o.CrestURL,
		HasCrest: o.CrestKey != "",
	}
}

// --- Handler Methods ---

// CreateOpponent adds a rival to the club registry.
func (h *OpponentHandler) CreateOpponent(c *gin.Context) {
	var req OpponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clubID, err := getClubIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify club from token.")
		return
	}

	opponent, err := h.opponentService.CreateOpponent(c.Request.Context(), clubID, req.Name, req.CrestURL)
	if err != nil {
		respondOpponentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapOpponentToResponse(opponent))
}

// ListOpponents returns the club registry sorted by name.
func (h *OpponentHandler) ListOpponents(c *gin.Context) {
	clubID, err := getClubIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify club from token.")
		return
	}

	opponents, err := h.opponentService.ListOpponents(c.Request.Context(), clubID)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to list opponents: "+err.Error())
		return
	}
	responses := make([]OpponentResponse, 0, len(opponents))
	for i := range opponents {
		responses = append(responses, mapOpponentToResponse(&opponents[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateOpponent renames a rival or swaps its crest URL.
func (h *OpponentHandler) UpdateOpponent(c *gin.Context) {
	var req OpponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	opponent, err := h.opponentService.UpdateOpponent(c.Request.Context(), clubID, id, req.Name, req.CrestURL)
	if err != nil {
		respondOpponentError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapOpponentToResponse(opponent))
}

// DeleteOpponent removes a rival and its stored crest image.
func (h *OpponentHandler) DeleteOpponent(c *gin.Context) {
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	if err := h.opponentService.DeleteOpponent(c.Request.Context(), clubID, id); err != nil {
		respondOpponentError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestCrestUpload returns a presigned PUT URL for the rival's crest image.
func (h *OpponentHandler) RequestCrestUpload(c *gin.Context) {
	var req CrestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	upload, err := h.opponentService.RequestCrestUpload(c.Request.Context(), clubID, id, req.ContentType)
	if err != nil {
		respondOpponentError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

// GetCrestDownloadURL returns a short-lived GET URL for the stored crest.
func (h *OpponentHandler) GetCrestDownloadURL(c *gin.Context) {
	clubID, id, ok := clubAndParamID(c)
	if !ok {
		return
	}

	url, err := h.opponentService.CrestDownloadURL(c.Request.Context(), clubID, id)
	if err != nil {
		respondOpponentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}

// --- helpers ---

func clubAndParamID(c *gin.Context) (clubID, id primitive.ObjectID, ok bool) {
	clubID, err := getClubIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify club from token.")
		return
	}
	id, err = primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ID format.")
		return
	}
	return clubID, id, true
}

func respondOpponentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOpponentNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOpponentAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrOpponentNameRequired):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusBadGateway, "Opponent operation failed: "+err.Error())
	}
}
