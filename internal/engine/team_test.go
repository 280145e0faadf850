package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeamPreservesGaps(t *testing.T) {
	a := makePet(t, "Ant", 2, 1, 1)
	b := makePet(t, "Beaver", 3, 2, 1)
	c := makePet(t, "Cricket", 1, 2, 1)

	team, err := NewTeam("Gapped", []*Pet{a, nil, b, c}, TeamSize)
	require.NoError(t, err)

	require.Len(t, team.Slots, TeamSize)
	assert.Equal(t, a, team.Slots[0])
	assert.Nil(t, team.Slots[1], "gap kept in place, not compacted")
	assert.Equal(t, b, team.Slots[2])
	assert.Equal(t, c, team.Slots[3])
	assert.Nil(t, team.Slots[4], "trailing slot padded empty")
	assert.Equal(t, 3, team.Alive())
}

func TestNewTeamTooManySlots(t *testing.T) {
	slots := make([]*Pet, TeamSize+1)
	_, err := NewTeam("Overfull", slots, TeamSize)
	assert.ErrorIs(t, err, ErrTooManySlots)
}

func TestFrontSkipsEmptySlots(t *testing.T) {
	b := makePet(t, "Beaver", 3, 2, 1)
	team, err := NewTeam("Sparse", []*Pet{nil, nil, b}, TeamSize)
	require.NoError(t, err)

	idx, front := team.front()
	assert.Equal(t, 2, idx)
	assert.Equal(t, b, front)
}

func TestSetName(t *testing.T) {
	team, err := NewTeam("Old", nil, TeamSize)
	require.NoError(t, err)

	require.NoError(t, team.SetName("New"))
	assert.Equal(t, "New", team.Name)
	assert.Error(t, team.SetName(""))
}

func TestDigraphRendersHistory(t *testing.T) {
	friend := makeTeam(t, "Friend", makePet(t, "Ant", 2, 2, 1))
	enemy := makeTeam(t, "Enemy", makePet(t, "Pig", 1, 5, 1))

	_, err := Fight(friend, enemy)
	require.NoError(t, err)

	dot := Digraph(friend)
	assert.Contains(t, dot, "digraph battle {")
	assert.Contains(t, dot, `"Ant" -> "Pig"`)
	assert.Contains(t, dot, "phase 1")
}

func TestDigraphEmptyHistory(t *testing.T) {
	team := makeTeam(t, "Idle")
	dot := Digraph(team)
	assert.Contains(t, dot, "digraph battle {")
	assert.Contains(t, dot, `label="Idle"`)
}
