package battle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapteams/battleapi/internal/engine"
)

func emptyTeams(t *testing.T) (*engine.Team, *engine.Team) {
	t.Helper()
	friend, err := engine.NewTeam("Friend", nil, engine.TeamSize)
	require.NoError(t, err)
	enemy, err := engine.NewTeam("Enemy", nil, engine.TeamSize)
	require.NoError(t, err)
	return friend, enemy
}

func TestDriverBoundedWhenEngineNeverDecides(t *testing.T) {
	invocations := 0
	stalled := EngineFunc(func(_, _ *engine.Team) (engine.Outcome, error) {
		invocations++
		return engine.OutcomeNone, nil
	})

	d := NewDriver(stalled, 10)
	friend, enemy := emptyTeams(t)

	res, err := d.Run(friend, enemy)
	require.NoError(t, err)

	assert.Equal(t, StateAborted, res.State)
	assert.Equal(t, 10, invocations, "engine invoked at most turnLimit times")
	assert.Equal(t, 10, res.NumTurns)
	assert.Equal(t, engine.OutcomeNone, res.Outcome)
	assert.Equal(t, "Reached maximum turn limit, 10", res.AbortReason)
	assert.NotNil(t, res.Friend, "abort still reports team state")
	assert.NotNil(t, res.Enemy)
}

func TestDriverDecidesOnFirstTurn(t *testing.T) {
	decide := EngineFunc(func(_, _ *engine.Team) (engine.Outcome, error) {
		return engine.OutcomeWin, nil
	})

	d := NewDriver(decide, DefaultTurnLimit)
	friend, enemy := emptyTeams(t)

	res, err := d.Run(friend, enemy)
	require.NoError(t, err)

	assert.Equal(t, StateDecided, res.State)
	assert.Equal(t, engine.OutcomeWin, res.Outcome)
	assert.Equal(t, 1, res.NumTurns)
}

func TestDriverCountsTurnsUntilDecision(t *testing.T) {
	turns := 0
	slow := EngineFunc(func(_, _ *engine.Team) (engine.Outcome, error) {
		turns++
		if turns == 7 {
			return engine.OutcomeLoss, nil
		}
		return engine.OutcomeNone, nil
	})

	d := NewDriver(slow, DefaultTurnLimit)
	friend, enemy := emptyTeams(t)

	res, err := d.Run(friend, enemy)
	require.NoError(t, err)

	assert.Equal(t, engine.OutcomeLoss, res.Outcome)
	assert.Equal(t, 7, res.NumTurns)
}

func TestDriverPropagatesEngineError(t *testing.T) {
	boom := errors.New("engine exploded")
	failing := EngineFunc(func(_, _ *engine.Team) (engine.Outcome, error) {
		return engine.OutcomeNone, boom
	})

	d := NewDriver(failing, DefaultTurnLimit)
	friend, enemy := emptyTeams(t)

	res, err := d.Run(friend, enemy)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateAborted, res.State)
	assert.NotNil(t, res.Friend, "even a hard failure reports team state")
	assert.Equal(t, 0, res.NumTurns)
}

func TestDriverRealEngineOneVsOne(t *testing.T) {
	snap := testSnapshot()
	n := NewNormalizer(snap)

	friend, err := n.Team(SideFriend, SimpleTeam{
		Name: "Friend", Pets: []*SimplePet{{Name: "Camel"}},
	})
	require.NoError(t, err)
	enemy, err := n.Team(SideEnemy, SimpleTeam{
		Name: "Enemy", Pets: []*SimplePet{{Name: "Ant"}},
	})
	require.NoError(t, err)

	d := NewDriver(EngineFunc(engine.Fight), DefaultTurnLimit)
	res, err := d.Run(friend, enemy)
	require.NoError(t, err)

	// Camel 2/5 vs Ant 2/1: one phase settles it.
	assert.Equal(t, StateDecided, res.State)
	assert.Equal(t, engine.OutcomeWin, res.Outcome)
	assert.Equal(t, 1, res.NumTurns)
}

func TestDriverRealEngineEmptyTeamsDraw(t *testing.T) {
	friend, enemy := emptyTeams(t)

	d := NewDriver(EngineFunc(engine.Fight), DefaultTurnLimit)
	res, err := d.Run(friend, enemy)
	require.NoError(t, err)

	assert.Equal(t, engine.OutcomeDraw, res.Outcome)
	assert.Equal(t, 1, res.NumTurns, "empty teams settle without looping")
}

func TestDriverDefaultLimit(t *testing.T) {
	d := NewDriver(EngineFunc(engine.Fight), 0)
	assert.Equal(t, DefaultTurnLimit, d.turnLimit)
}

func TestResponseFromDecidedResult(t *testing.T) {
	friend, enemy := emptyTeams(t)
	res := Result{
		State:    StateDecided,
		Outcome:  engine.OutcomeWin,
		Friend:   friend,
		Enemy:    enemy,
		NumTurns: 3,
	}

	resp := ResponseFromResult(res)
	require.NotNil(t, resp.Status)
	assert.Equal(t, StatusAccepted, *resp.Status)
	assert.Equal(t, engine.OutcomeWin, resp.Outcome)
	assert.NotNil(t, resp.FriendTeam)
	assert.NotNil(t, resp.EnemyTeam)
	assert.Equal(t, 3, resp.NumTurns)
	require.NotNil(t, resp.Digraph)
	assert.Contains(t, *resp.Digraph, "digraph battle")
}

func TestResponseFromAbortedResultKeepsState(t *testing.T) {
	friend, enemy := emptyTeams(t)
	reason := fmt.Sprintf("Reached maximum turn limit, %d", DefaultTurnLimit)
	res := Result{
		State:       StateAborted,
		Outcome:     engine.OutcomeNone,
		Friend:      friend,
		Enemy:       enemy,
		NumTurns:    DefaultTurnLimit,
		AbortReason: reason,
	}

	resp := ResponseFromResult(res)
	require.NotNil(t, resp.Status)
	assert.Equal(t, reason, *resp.Status)
	assert.NotNil(t, resp.FriendTeam, "abort responses still carry both teams")
	assert.NotNil(t, resp.EnemyTeam)
	assert.Equal(t, DefaultTurnLimit, resp.NumTurns)
}

func TestInvalidTeamResponseShape(t *testing.T) {
	err := &TeamError{Side: SideFriend, Cause: errors.New("too many slots")}
	resp := InvalidTeamResponse(err)

	require.NotNil(t, resp.Status)
	assert.Contains(t, *resp.Status, "Invalid Friend Team:")
	assert.Equal(t, engine.OutcomeNone, resp.Outcome)
	assert.Nil(t, resp.FriendTeam)
	assert.Nil(t, resp.EnemyTeam)
	assert.Nil(t, resp.Digraph)
	assert.Equal(t, 0, resp.NumTurns)
}
