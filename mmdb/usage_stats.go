package mmdb

import (
	"sync"
	"time"
)

// UsageStats tracks how a database is used. Lookups which found a record
// are successful, all other lookups are failures.
type UsageStats struct {
	mutex        sync.Mutex
	lastUpdated  time.Time
	lastUsed     time.Time
	successCount uint64
	failureCount uint64
}

func (u *UsageStats) Used(found bool) {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUsed = now

	if found {
		u.successCount++
	} else {
		u.failureCount++
	}
}

func (u *UsageStats) Updated() {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUpdated = now
}

// Snapshot copies counters into info. Zero times become zero timestamps.
func (u *UsageStats) Snapshot(info *Info) {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	info.LastUpdated = unixOrZero(u.lastUpdated)
	info.LastUsed = unixOrZero(u.lastUsed)
	info.SuccessCount = u.successCount
	info.FailureCount = u.failureCount
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.Unix()
}
