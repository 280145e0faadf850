package battle

import (
	"github.com/sapteams/battleapi/internal/engine"
)

// StatusAccepted marks a battle that ran to a decision.
const StatusAccepted = "202 Accepted"

// BattleResponse is the wire-level reply for POST /battle. Only the
// invalid-team short-circuit path omits the team snapshots and digraph;
// every driver exit, abort included, populates them.
type BattleResponse struct {
	Status     *string        `json:"status"`
	Outcome    engine.Outcome `json:"outcome"`
	FriendTeam *engine.Team   `json:"friend_team"`
	EnemyTeam  *engine.Team   `json:"enemy_team"`
	NumTurns   int            `json:"num_turns"`
	Digraph    *string        `json:"digraph"`
}

// InvalidTeamResponse builds the short-circuit reply for a side whose
// normalization failed. The driver never ran, so there is nothing else
// to report.
func InvalidTeamResponse(err error) BattleResponse {
	msg := err.Error()
	return BattleResponse{
		Status:  &msg,
		Outcome: engine.OutcomeNone,
	}
}

// ResponseFromResult assembles the reply for a completed driver run.
// Decided runs carry the acceptance marker; aborted runs carry the
// abort reason. Both include full team state, the turn counter, and the
// friend-side battle digraph.
func ResponseFromResult(res Result) BattleResponse {
	status := StatusAccepted
	if res.State == StateAborted {
		status = res.AbortReason
	}
	digraph := engine.Digraph(res.Friend)
	return BattleResponse{
		Status:     &status,
		Outcome:    res.Outcome,
		FriendTeam: res.Friend,
		EnemyTeam:  res.Enemy,
		NumTurns:   res.NumTurns,
		Digraph:    &digraph,
	}
}
