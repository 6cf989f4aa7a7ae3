package scheduler

import (
	"github.com/jcalvez/srscore/internal/corelog"
	"github.com/jcalvez/srscore/pkg/clock"
	"github.com/jcalvez/srscore/pkg/oid"
)

// Engine is the single-threaded, cooperative scheduler state machine: the
// queue (reset/rebuilt/driven) and the grading state machine, both backed
// by a Store. It performs no I/O of its own beyond what Store, the clock,
// the logger and the UI surface are asked to do.
type Engine struct {
	store  Store
	clock  clock.Clock
	hooks  *HookRegistry
	logger *corelog.Logger
	ui     UISurface

	// Queue state (§3.2), process-local and rebuilt frequently.
	cardIDsInQueue   []oid.OID
	factIDsInQueue   []oid.OID
	factIDsMemorised []oid.OID
	cardIDLast       oid.OID
	hasCardIDLast    bool

	stage                   int
	newOnly                 bool
	inLearnAhead            bool
	warnedAboutTooManyCards bool
}

// NewEngine wires an Engine. hooks, logger and ui may be nil, in which
// case a no-op registry/default logger/no-op UI is used.
func NewEngine(store Store, clk clock.Clock, hooks *HookRegistry, logger *corelog.Logger, ui UISurface) *Engine {
	if hooks == nil {
		hooks = NewHookRegistry()
	}
	if logger == nil {
		logger = corelog.CurrentLogger()
	}
	if ui == nil {
		ui = NoopUISurface{}
	}
	e := &Engine{
		store:  store,
		clock:  clk,
		hooks:  hooks,
		logger: logger,
		ui:     ui,
	}
	e.Reset(false)
	return e
}

// Reset clears all queue state (§4.4 reset). Starting stage is 3 when
// new_only is requested, else 1.
func (e *Engine) Reset(newOnly bool) {
	e.cardIDsInQueue = nil
	e.factIDsInQueue = nil
	e.factIDsMemorised = nil
	e.hasCardIDLast = false
	e.newOnly = newOnly
	if newOnly {
		e.stage = 3
	} else {
		e.stage = 1
	}
	e.warnedAboutTooManyCards = false
}

// QueueSnapshot returns a copy of the current queue contents, in order.
// Exported for tests asserting on queue shape (duplicate entries, sister
// exclusion); not part of the driver's own control flow.
func (e *Engine) QueueSnapshot() []oid.OID {
	return append([]oid.OID(nil), e.cardIDsInQueue...)
}

func containsOID(haystack []oid.OID, needle oid.OID) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func removeFirstOID(haystack []oid.OID, needle oid.OID) ([]oid.OID, bool) {
	for i, v := range haystack {
		if v == needle {
			return append(haystack[:i:i], haystack[i+1:]...), true
		}
	}
	return haystack, false
}
