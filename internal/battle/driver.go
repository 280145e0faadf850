package battle

import (
	"fmt"

	"github.com/sapteams/battleapi/internal/engine"
)

// DefaultTurnLimit caps how many engine invocations a single battle may
// consume before the driver aborts it as stalled.
const DefaultTurnLimit = 250

// TurnEngine resolves one turn of adversarial combat. The production
// implementation is engine.Fight; the driver never looks inside it.
type TurnEngine interface {
	Step(friend, enemy *engine.Team) (engine.Outcome, error)
}

// EngineFunc adapts a plain step function to the TurnEngine interface.
type EngineFunc func(friend, enemy *engine.Team) (engine.Outcome, error)

// Step calls f.
func (f EngineFunc) Step(friend, enemy *engine.Team) (engine.Outcome, error) {
	return f(friend, enemy)
}

// State is the driver's position in its run.
type State string

const (
	StateRunning State = "Running"
	StateDecided State = "Decided"
	StateAborted State = "Aborted"
)

// Result carries everything a caller needs regardless of how the run
// ended: both mutated team snapshots and the turn counter are always
// populated.
type Result struct {
	State       State
	Outcome     engine.Outcome
	Friend      *engine.Team
	Enemy       *engine.Team
	NumTurns    int
	AbortReason string
}

// Driver runs the adversarial turn loop to completion or turn-budget
// exhaustion.
type Driver struct {
	eng       TurnEngine
	turnLimit int
}

// NewDriver builds a driver around a turn engine. A non-positive limit
// falls back to DefaultTurnLimit.
func NewDriver(eng TurnEngine, turnLimit int) *Driver {
	if turnLimit <= 0 {
		turnLimit = DefaultTurnLimit
	}
	return &Driver{eng: eng, turnLimit: turnLimit}
}

// Run invokes the engine until it decides the battle or the turn budget
// runs out. The budget is checked before each invocation, so the engine
// runs at most turnLimit times. An engine error stops the loop and is
// returned alongside the partial result; the teams and counter are
// still valid for reporting.
func (d *Driver) Run(friend, enemy *engine.Team) (Result, error) {
	res := Result{
		State:   StateRunning,
		Outcome: engine.OutcomeNone,
		Friend:  friend,
		Enemy:   enemy,
	}

	for res.State == StateRunning {
		if res.NumTurns >= d.turnLimit {
			res.State = StateAborted
			res.AbortReason = fmt.Sprintf("Reached maximum turn limit, %d", res.NumTurns)
			break
		}

		outcome, err := d.eng.Step(friend, enemy)
		if err != nil {
			res.State = StateAborted
			res.AbortReason = err.Error()
			return res, err
		}
		res.NumTurns++

		if outcome != engine.OutcomeNone {
			res.State = StateDecided
			res.Outcome = outcome
		}
	}
	return res, nil
}
