// Package script implements a paving.SetChecker driven by a
// user-supplied zygomys expression, reusing the goroutine+timeout+
// generation-counter shape of the Lignin design engine
// (github.com/glycerine/zygomys), generalized from "evaluate a design
// DSL" to "evaluate a predicate DSL" — the capability-based oracle
// dispatch spec §9 asks for, rather than a runtime type switch.
package script

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chazu/paving/pkg/paving"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalTimeout is the hard limit for a single predicate evaluation.
const EvalTimeout = 5 * time.Second

// axisNames binds each box axis to a pair of symbols <name>lo/<name>hi
// in the script's sandbox, in order. A box with more axes than
// axisNames runs out of names and those axes are left unbound.
var axisNames = []string{"x", "y", "z", "w", "u", "v"}

// Checker evaluates source against a box's bounds. The script sees
// xlo/xhi (and ylo/yhi, zlo/zhi, ... per axis) as pre-bound symbols
// and must evaluate to a bool, or to the symbol 'maybe to signal
// genuine uncertainty (mapped to paving.Possibly rather than an
// error).
type Checker struct {
	mu         sync.Mutex
	generation uint64
	source     string

	cacheMu sync.Mutex
	cache   map[string]paving.Tribool
}

// New returns a Checker that evaluates source against each queried box.
func New(source string) *Checker {
	return &Checker{source: source, cache: make(map[string]paving.Tribool)}
}

type checkResult struct {
	val paving.Tribool
	err error
}

// Check satisfies paving.SetChecker. It runs source in a fresh
// sandboxed zygomys environment per call — mirroring Engine.Evaluate's
// "fresh sandbox per call" determinism guarantee — with a hard
// timeout: a call that times out answers Possibly and its late result
// is dropped. A generation counter also answers Possibly for a result
// that arrives after a newer Check call has started.
func (c *Checker) Check(box paving.Box) paving.Tribool {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	ch := make(chan checkResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- checkResult{val: paving.Possibly, err: fmt.Errorf("panic evaluating predicate: %v", r)}
			}
		}()
		ch <- checkResult{val: c.evaluate(box)}
	}()

	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		c.mu.Lock()
		current := c.generation
		c.mu.Unlock()
		if gen != current {
			return paving.Possibly
		}
		return res.val
	case <-timer.C:
		return paving.Possibly
	}
}

// evaluate binds box's per-axis bounds as a preamble of definitions
// ahead of the user's source, then interprets the result of running
// the combined program.
func (c *Checker) evaluate(box paving.Box) paving.Tribool {
	var preamble strings.Builder
	for i := 0; i < box.Dimension() && i < len(axisNames); i++ {
		ax := box.Axis(i)
		fmt.Fprintf(&preamble, "(def %slo %g) (def %shi %g)\n", axisNames[i], ax.Lower, axisNames[i], ax.Upper)
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	if err := env.LoadString(preamble.String() + c.source); err != nil {
		return paving.Possibly
	}
	result, err := env.Run()
	if err != nil {
		return paving.Possibly
	}
	return interpretResult(result)
}

func interpretResult(val zygo.Sexp) paving.Tribool {
	switch v := val.(type) {
	case *zygo.SexpBool:
		return paving.FromBool(v.Val)
	case *zygo.SexpSymbol:
		if v.Name() == "maybe" {
			return paving.Possibly
		}
	}
	return paving.Possibly
}

// Cache returns the value stored under key (e.g. a serialized box) by
// SetCache, giving a script-based oracle a keyed cache in the spirit of
// CachingClosedSet rather than a type-specific specialization. The
// cache is reached only through these Go methods; the predicate script
// has no binding for it.
func (c *Checker) Cache(key string) (paving.Tribool, bool) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	v, ok := c.cache[key]
	return v, ok
}

// SetCache stores a value under key for a later Cache lookup.
func (c *Checker) SetCache(key string, v paving.Tribool) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	c.cache[key] = v
}

var _ paving.SetChecker = (*Checker)(nil)
