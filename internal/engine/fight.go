package engine

import "errors"

// Outcome is the terminal result of a fight from the friend team's
// perspective. None means the battle is still undecided.
type Outcome string

const (
	OutcomeWin  Outcome = "Win"
	OutcomeLoss Outcome = "Loss"
	OutcomeDraw Outcome = "Draw"
	OutcomeNone Outcome = "None"
)

// ErrNilTeam is returned when Fight is invoked without both teams.
var ErrNilTeam = errors.New("fight requires two teams")

// Fight resolves exactly one attack phase between the two teams,
// mutating both. The front pets trade blows simultaneously, held items
// modify the arithmetic, and fainted pets vacate their slots (firing
// faint triggers). The returned outcome is None while both teams still
// have pets standing.
func Fight(friend, enemy *Team) (Outcome, error) {
	if friend == nil || enemy == nil {
		return OutcomeNone, ErrNilTeam
	}

	_, fp := friend.front()
	_, ep := enemy.front()

	// A side with no pets loses the phase outright.
	if fp == nil || ep == nil {
		return outcome(fp != nil, ep != nil), nil
	}

	friend.phase++
	enemy.phase++

	fDamage := fp.Stats.Attack + fp.Item.attackBonus()
	eDamage := ep.Stats.Attack + ep.Item.attackBonus()

	// Simultaneous strikes: compute both before applying either.
	fTaken := fp.Item.absorb(eDamage)
	eTaken := ep.Item.absorb(fDamage)

	fp.Stats.Health -= fTaken
	ep.Stats.Health -= eTaken
	fp.Stats.Clamp(MinPetStats, MaxPetStats)
	ep.Stats.Clamp(MinPetStats, MaxPetStats)

	friend.record(fp, ep, eTaken)
	enemy.record(ep, fp, fTaken)

	friend.clearFainted()
	enemy.clearFainted()

	return outcome(friend.Alive() > 0, enemy.Alive() > 0), nil
}

// outcome maps the two sides' survival to a fight outcome.
func outcome(friendAlive, enemyAlive bool) Outcome {
	switch {
	case friendAlive && enemyAlive:
		return OutcomeNone
	case friendAlive:
		return OutcomeWin
	case enemyAlive:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
