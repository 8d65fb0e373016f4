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

// PlannerHandler holds the planner service dependency.
type PlannerHandler struct {
	plannerService service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// --- DTOs ---

// SetDayFlagRequest writes one (day, turn) flag slot.
type SetDayFlagRequest struct {
	TeamID  string          `json:"teamId" binding:"required"`
	Date    string          `json:"date" binding:"required"` // YYYY-MM-DD
	Turn    domain.Turn     `json:"turn" binding:"required"`
	Kind    domain.FlagKind `json:"kind" binding:"required"`
	Rival   string          `json:"rival"`
	LogoURL string          `json:"logoUrl"`
}

// SetGridMetaRequest writes one (day, rowName) meta slot.
type SetGridMetaRequest struct {
	TeamID  string `json:"teamId" binding:"required"`
	Date    string `json:"date" binding:"required"`
	RowName string `json:"rowName" binding:"required"`
	Value   string `json:"value"`
}

// SaveExercisesRequest writes one (day, type) content slot.
type SaveExercisesRequest struct {
	TeamID string                `json:"teamId" binding:"required"`
	Date   string                `json:"date" binding:"required"`
	Type   domain.SessionType    `json:"type" binding:"required"`
	Title  string                `json:"title"`
	Notes  string                `json:"notes"`
	Items  []domain.ExerciseItem `json:"items"`
}

// DuplicateWeekRequest copies one week onto another.
type DuplicateWeekRequest struct {
	TeamID    string `json:"teamId" binding:"required"`
	FromDate  string `json:"fromDate" binding:"required"`
	ToDate    string `json:"toDate" binding:"required"`
	Overwrite bool   `json:"overwrite"`
}

// ImportWeekRequest replays an export document into a target week.
type ImportWeekRequest struct {
	TeamID    string                  `json:"teamId" binding:"required"`
	ToDate    string                  `json:"toDate" binding:"required"`
	Overwrite bool                    `json:"overwrite"`
	Document  *planner.ExportDocument `json:"document" binding:"required"`
}

// ResolveRivalRequest probes the opponent registry with free text.
type ResolveRivalRequest struct {
	Text string `json:"text" binding:"required"`
}

// ResolveRivalResponse is the resolver outcome. Found=false is a normal
// answer, not an error status.
type ResolveRivalResponse struct {
	Found     bool   `json:"found"`
	Candidate string `json:"candidate"`
	Name      string `json:"name,omitempty"`
	CrestURL  string `json:"crestUrl,omitempty"`
}

// --- Handler Methods ---

// GetWeek returns the assembled grid for the week containing ?date=.
func (h *PlannerHandler) GetWeek(c *gin.Context) {
	teamID, ok := teamIDQuery(c)
	if !ok {
		return
	}
	ref, err := planner.ParseYMD(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' must be YYYY-MM-DD.")
		return
	}

	grid, err := h.plannerService.GetWeekGrid(c.Request.Context(), teamID, ref)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to load week: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, grid)
}

// SetDayFlag writes or clears a day/turn classification.
func (h *PlannerHandler) SetDayFlag(c *gin.Context) {
	var req SetDayFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	teamID, day, actor, ok := teamDayActor(c, req.TeamID, req.Date)
	if !ok {
		return
	}

	session, err := h.plannerService.SetDayFlag(c.Request.Context(), teamID, actor, day, req.Turn,
		domain.DayFlag{Kind: req.Kind, Rival: req.Rival, LogoURL: req.LogoURL})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTurn) || errors.Is(err, service.ErrInvalidFlagKind) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to set day flag: "+err.Error())
		}
		return
	}
	if session == nil {
		c.Status(http.StatusNoContent) // slot cleared
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetGridMeta writes or clears a named meta row.
func (h *PlannerHandler) SetGridMeta(c *gin.Context) {
	var req SetGridMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	teamID, day, actor, ok := teamDayActor(c, req.TeamID, req.Date)
	if !ok {
		return
	}

	session, err := h.plannerService.SetGridMeta(c.Request.Context(), teamID, actor, day, req.RowName, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrEmptyRowName) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to set grid meta: "+err.Error())
		}
		return
	}
	if session == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SaveExercises encodes and stores an exercise list for a content slot.
func (h *PlannerHandler) SaveExercises(c *gin.Context) {
	var req SaveExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	teamID, day, actor, ok := teamDayActor(c, req.TeamID, req.Date)
	if !ok {
		return
	}

	session, err := h.plannerService.SaveExerciseList(c.Request.Context(), teamID, actor, day, req.Type, req.Title, req.Notes, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSessionType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to save exercises: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// DuplicateWeek copies a source week onto a target week. The report is
// returned even on failure so callers see exactly how far the transfer got.
func (h *PlannerHandler) DuplicateWeek(c *gin.Context) {
	var req DuplicateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	teamID, from, actor, ok := teamDayActor(c, req.TeamID, req.FromDate)
	if !ok {
		return
	}
	to, err := planner.ParseYMD(req.ToDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Field 'toDate' must be YYYY-MM-DD.")
		return
	}

	report, err := h.plannerService.DuplicateWeek(c.Request.Context(), teamID, actor, from, to, req.Overwrite)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error(), "report": report})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportWeek returns the portable document for the week containing ?date=.
func (h *PlannerHandler) ExportWeek(c *gin.Context) {
	teamID, ok := teamIDQuery(c)
	if !ok {
		return
	}
	ref, err := planner.ParseYMD(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' must be YYYY-MM-DD.")
		return
	}

	doc, err := h.plannerService.ExportWeek(c.Request.Context(), teamID, ref)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to export week: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ImportWeek replays an export document into a target week.
func (h *PlannerHandler) ImportWeek(c *gin.Context) {
	var req ImportWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	teamID, to, actor, ok := teamDayActor(c, req.TeamID, req.ToDate)
	if !ok {
		return
	}

	report, err := h.plannerService.ImportWeek(c.Request.Context(), teamID, actor, req.Document, to, req.Overwrite)
	if err != nil {
		if errors.Is(err, planner.ErrUnsupportedExportVersion) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error(), "report": report})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ResolveRival resolves a probable opponent name from free text against
// the club registry.
func (h *PlannerHandler) ResolveRival(c *gin.Context) {
	var req ResolveRivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clubID, err := getClubIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify club from token.")
		return
	}

	res, err := h.plannerService.ResolveRival(c.Request.Context(), clubID, req.Text)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to resolve rival: "+err.Error())
		return
	}
	resp := ResolveRivalResponse{Found: res.Found, Candidate: res.Candidate}
	if res.Found {
		resp.Name = res.Opponent.Name
		resp.CrestURL = res.Opponent.CrestURL
	}
	c.JSON(http.StatusOK, resp)
}

// --- helpers ---

func teamIDQuery(c *gin.Context) (primitive.ObjectID, bool) {
	teamID, err := primitive.ObjectIDFromHex(c.Query("team"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'team' must be a valid ID.")
		return primitive.NilObjectID, false
	}
	return teamID, true
}

func teamDayActor(c *gin.Context, teamHex, date string) (teamID primitive.ObjectID, day time.Time, actor primitive.ObjectID, ok bool) {
	teamID, err := primitive.ObjectIDFromHex(teamHex)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Field 'teamId' must be a valid ID.")
		return
	}
	day, err = planner.ParseYMD(date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Date fields must be YYYY-MM-DD.")
		return
	}
	actor, err = getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	return teamID, day, actor, true
}
