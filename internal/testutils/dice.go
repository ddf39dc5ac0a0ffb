package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller is a dice roller that replays queued results. It satisfies
// the rpg-toolkit dice.Roller interface.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

// NewScriptedRoller queues the given results
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next queued result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted on d%d", size)
	}
	v := r.values[0]
	r.values = r.values[1:]
	r.sizes = append(r.sizes, size)
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted value %d does not fit d%d", v, size)
	}
	return v, nil
}

// RollN returns the next count queued results
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

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Remaining returns how many queued results are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
