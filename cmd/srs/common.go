package main

import (
	"github.com/jcalvez/srscore/internal/store"
	"github.com/jcalvez/srscore/pkg/clock"
	"github.com/jcalvez/srscore/pkg/oid"

	"github.com/jcalvez/srscore/internal/scheduler"
)

func oidArg(s string) oid.OID {
	return oid.OID(s)
}

// currentEngine wires an Engine over the SQLite-backed store and the
// default system clock. Queue state does not survive process exit; each
// invocation starts from a fresh reset(false).
func currentEngine() (*scheduler.Engine, *store.SQLiteStore) {
	st := store.NewSQLiteStore(store.CurrentDB())
	engine := scheduler.NewEngine(st, clock.CurrentClock(), nil, nil, nil)
	return engine, st
}
