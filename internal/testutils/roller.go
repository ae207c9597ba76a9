package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns a fixed sequence of rolls, then Fallback forever
type ScriptedRoller struct {
	mu       sync.Mutex
	rolls    []int
	Fallback int
	Err      error
	calls    int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that replays rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls, Fallback: 100}
}

// FixedRoller always rolls v
func FixedRoller(v int) *ScriptedRoller {
	return &ScriptedRoller{Fallback: v}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(_ int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.Err != nil {
		return 0, r.Err
	}
	if len(r.rolls) == 0 {
		return r.Fallback, nil
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Calls reports how many single rolls were made
func (r *ScriptedRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
