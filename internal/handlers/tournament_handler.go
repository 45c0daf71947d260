package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tournament-elo-api/internal/services"
)

type TournamentHandler struct {
	ingestService *services.IngestService
	ratingService *services.RatingService
	matchService  *services.MatchService
}

func NewTournamentHandler(ingestService *services.IngestService, ratingService *services.RatingService, matchService *services.MatchService) *TournamentHandler {
	return &TournamentHandler{
		ingestService: ingestService,
		ratingService: ratingService,
		matchService:  matchService,
	}
}

// ListTournaments lists tournaments available at the host
// @Summary List tournaments
// @Description List the tournaments visible to the configured API key
// @Tags tournaments
// @Produce json
// @Success 200 {array} challonge.Tournament
// @Failure 502 {object} map[string]string
// @Router /tournaments [get]
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	tournaments, err := h.ingestService.ListTournaments()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch tournaments: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// IngestTournament fetches and stores a tournament's bracket
// @Summary Ingest a tournament
// @Description Fetch a tournament from the host and store its players and matches
// @Tags tournaments
// @Produce json
// @Param code path string true "Tournament URL code"
// @Success 200 {object} models.IngestResult
// @Failure 502 {object} map[string]string
// @Router /tournaments/{code}/ingest [post]
func (h *TournamentHandler) IngestTournament(c *gin.Context) {
	code := c.Param("code")

	result, err := h.ingestService.IngestTournament(code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Ingest failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProcessTournament runs rating processing for a tournament
// @Summary Process a tournament
// @Description Apply ELO rating updates for every unprocessed match of a tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.ProcessResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id}/process [post]
func (h *TournamentHandler) ProcessTournament(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tournament ID",
		})
		return
	}

	result, err := h.ratingService.ProcessTournament(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Processing failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteTournamentMatches removes all matches of a tournament
// @Summary Delete tournament matches
// @Description Remove every match of a tournament. Ratings already applied are not reverted.
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id}/matches [delete]
func (h *TournamentHandler) DeleteTournamentMatches(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tournament ID",
		})
		return
	}

	deleted, err := h.matchService.DeleteByTournament(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
