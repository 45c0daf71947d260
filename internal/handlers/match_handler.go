package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tournament-elo-api/internal/services"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatches retrieves matches with optional filtering
// @Summary List matches
// @Description Get matches, optionally filtered by tournament and status
// @Tags matches
// @Produce json
// @Param tournament_id query int false "Tournament ID"
// @Param status query int false "Status (0 unprocessed, 1 processed)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} models.PaginatedMatchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	var tournamentID uint
	if raw := c.Query("tournament_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tournament ID",
			})
			return
		}
		tournamentID = uint(parsed)
	}

	var status *int
	if raw := c.Query("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || (parsed != 0 && parsed != 1) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
			return
		}
		status = &parsed
	}

	matches, err := h.matchService.GetMatches(tournamentID, status, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetRecentMatches retrieves the most recently ingested matches
// @Summary Get recent matches
// @Description Get the most recently ingested matches
// @Tags matches
// @Produce json
// @Param limit query int false "Number of matches" default(10)
// @Success 200 {array} models.Match
// @Failure 500 {object} map[string]string
// @Router /matches/recent [get]
func (h *MatchHandler) GetRecentMatches(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	matches, err := h.matchService.GetRecentMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}
