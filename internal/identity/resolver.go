// Package identity resolves incoming participant names to canonical
// player records. Tournament hosts assign participant ids per bracket, so
// the only identity that survives across tournaments is the display name;
// names arrive with typos and alternate spellings, hence fuzzy matching.
package identity

import (
	"errors"
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"gorm.io/gorm"

	"tournament-elo-api/internal/models"
)

// MatchThreshold is the minimum similarity score (0-100) for two names to
// be treated as the same player.
const MatchThreshold = 85

var (
	// ErrBlankName rejects empty or whitespace-only candidate names.
	ErrBlankName = errors.New("player name is blank")

	// ErrNoAliasMatch means no stored alias was close enough. It is an
	// expected outcome, not a failure: the caller decides whether to fall
	// back to manual assignment.
	ErrNoAliasMatch = errors.New("no matching alias found")

	// ErrUnknownPlayer is returned when a manual alias assignment names a
	// player that does not exist.
	ErrUnknownPlayer = errors.New("player not found")
)

// Resolver maps candidate names onto canonical player ids. Callers depend
// on this interface rather than the concrete matcher so the matching
// strategy can be swapped without touching the pipeline.
type Resolver interface {
	ResolveOrCreate(name string) (playerID uint, created bool, err error)
	ResolveAlias(aliasName string) (playerID uint, err error)
	AssignAlias(aliasName string, playerID uint) error
}

// RatioResolver scores candidates with a normalized Levenshtein ratio and
// takes the first stored name at or above the threshold. First match wins:
// no ranking among multiple close candidates, so two real players with
// near-identical names can collapse into one record. Accepted trade-off.
type RatioResolver struct {
	db        *gorm.DB
	threshold int
	metric    *metrics.Levenshtein
}

// NewResolver builds a RatioResolver over the given store handle. Passing
// a transaction handle scopes every lookup and insert to that transaction.
func NewResolver(db *gorm.DB) *RatioResolver {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false

	return &RatioResolver{
		db:        db,
		threshold: MatchThreshold,
		metric:    m,
	}
}

func (r *RatioResolver) score(a, b string) int {
	return int(math.Round(strutil.Similarity(a, b, r.metric) * 100))
}

// ResolveOrCreate returns the id of the canonical player the candidate
// name refers to, creating a new player with the default rating when no
// existing name is close enough. A miss is a valid outcome, not an error;
// created reports whether a new player row was written.
func (r *RatioResolver) ResolveOrCreate(name string) (uint, bool, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false, ErrBlankName
	}

	var players []models.Player
	if err := r.db.Find(&players).Error; err != nil {
		return 0, false, err
	}

	for _, existing := range players {
		if r.score(trimmed, existing.Name) >= r.threshold {
			return existing.ID, false, nil
		}
	}

	player := models.Player{
		Name:   trimmed,
		Rating: models.DefaultRating,
	}
	if err := r.db.Create(&player).Error; err != nil {
		return 0, false, err
	}

	return player.ID, true, nil
}

// ResolveAlias compares the candidate against stored alias strings only,
// never against canonical names. On a match it records the new spelling as
// another alias of the matched player and returns that player's id. On a
// miss it returns ErrNoAliasMatch without creating anything: an alias
// never silently becomes a new player.
func (r *RatioResolver) ResolveAlias(aliasName string) (uint, error) {
	trimmed := strings.TrimSpace(aliasName)
	if trimmed == "" {
		return 0, ErrBlankName
	}

	var aliases []models.PlayerAlias
	if err := r.db.Find(&aliases).Error; err != nil {
		return 0, err
	}

	for _, existing := range aliases {
		if r.score(trimmed, existing.AliasName) >= r.threshold {
			alias := models.PlayerAlias{
				PlayerID:  existing.PlayerID,
				AliasName: trimmed,
			}
			if err := r.db.Create(&alias).Error; err != nil {
				return 0, err
			}
			return existing.PlayerID, nil
		}
	}

	return 0, ErrNoAliasMatch
}

// AssignAlias is the manual fallback when automatic alias resolution
// fails: the operator supplies the canonical player id directly. The
// player must exist; aliases never reference missing players.
func (r *RatioResolver) AssignAlias(aliasName string, playerID uint) error {
	trimmed := strings.TrimSpace(aliasName)
	if trimmed == "" {
		return ErrBlankName
	}

	var count int64
	if err := r.db.Model(&models.Player{}).Where("id = ?", playerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUnknownPlayer
	}

	alias := models.PlayerAlias{
		PlayerID:  playerID,
		AliasName: trimmed,
	}
	return r.db.Create(&alias).Error
}
