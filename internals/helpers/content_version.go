package helper

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// Per-table version counters backing the public content cache. Every
// successful mutation bumps its table's counter, which changes the cache
// key for that table's GET routes and forces the next read to hit the DB.
// Reads are never served stale past a mutation; there is no optimistic
// update path.
var contentVersions sync.Map // table name -> *atomic.Uint64

func versionCounter(table string) *atomic.Uint64 {
	if v, ok := contentVersions.Load(table); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := contentVersions.LoadOrStore(table, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

// ContentVersion returns the current cache version for a table.
func ContentVersion(table string) string {
	return strconv.FormatUint(versionCounter(table).Load(), 10)
}

// BumpContentVersion invalidates all cached reads for a table.
func BumpContentVersion(table string) {
	versionCounter(table).Add(1)
}
