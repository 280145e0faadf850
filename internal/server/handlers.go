package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sapteams/battleapi/internal/battle"
)

// postBattle runs one battle. Status policy: 202 for any processed
// battle (decided or turn-limit abort), 406 with a populated status
// string when either team fails conversion, 400 for malformed JSON,
// 500 when the engine itself fails mid-fight.
func (s *Server) postBattle(c *gin.Context) {
	var teams battle.Teams
	if err := c.ShouldBindJSON(&teams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friend, err := s.normalizer.Team(battle.SideFriend, teams.FriendTeam)
	if err != nil {
		s.deps.Logger.Warn().Err(err).Msg("Friend team conversion failed")
		c.JSON(http.StatusNotAcceptable, battle.InvalidTeamResponse(err))
		return
	}
	enemy, err := s.normalizer.Team(battle.SideEnemy, teams.EnemyTeam)
	if err != nil {
		s.deps.Logger.Warn().Err(err).Msg("Enemy team conversion failed")
		c.JSON(http.StatusNotAcceptable, battle.InvalidTeamResponse(err))
		return
	}

	start := time.Now()
	res, err := s.driver.Run(friend, enemy)
	if err != nil {
		s.deps.Logger.Error().Err(err).Int("numTurns", res.NumTurns).Msg("Engine failure mid-fight")
		c.JSON(http.StatusInternalServerError, battle.ResponseFromResult(res))
		return
	}

	s.deps.Metrics.Record(c.Request.Context(), res)
	s.deps.Stats.RecordBattle(string(res.Outcome), string(res.State), res.NumTurns, time.Since(start))

	s.deps.Logger.Info().
		Str("outcome", string(res.Outcome)).
		Str("state", string(res.State)).
		Int("numTurns", res.NumTurns).
		Msg("Battle processed")

	c.JSON(http.StatusAccepted, battle.ResponseFromResult(res))
}

// getPets forwards query-string equality filters to the pet records
// table. One value per field; extra values are ignored.
func (s *Server) getPets(c *gin.Context) {
	recs, err := s.deps.Store.QueryPets(singleValueFilters(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// getFoods forwards query-string equality filters to the food records
// table.
func (s *Server) getFoods(c *gin.Context) {
	recs, err := s.deps.Store.QueryFoods(singleValueFilters(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// singleValueFilters flattens the query string to one value per key.
func singleValueFilters(c *gin.Context) map[string]string {
	query := c.Request.URL.Query()
	if len(query) == 0 {
		return nil
	}
	filters := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	return filters
}
