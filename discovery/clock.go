package discovery

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Clock tracks the signed offset, in milliseconds, between the network's
// clock (as observed via a response Date header) and local wall time, per
// spec §3's NetworkOffset. A zero Clock has a zero offset.
type Clock struct {
	offsetMs atomic.Int64
}

// OffsetMs returns the current offset in milliseconds: positive means the
// network clock is ahead of local time.
func (c *Clock) OffsetMs() int64 {
	return c.offsetMs.Load()
}

// Now returns the local time adjusted by the current offset.
func (c *Clock) Now() time.Time {
	return time.Now().Add(time.Duration(c.OffsetMs()) * time.Millisecond)
}

// NowMs returns Now as Unix milliseconds, the unit the storage RPC expects.
func (c *Clock) NowMs() int64 {
	return c.Now().UnixMilli()
}

// ObserveHeader updates the offset from an HTTP response's Date header, if
// present and parseable. It is safe to call from multiple goroutines.
func (c *Clock) ObserveHeader(h http.Header) {
	raw := h.Get("Date")
	if raw == "" {
		return
	}
	serverTime, err := http.ParseTime(raw)
	if err != nil {
		return
	}
	c.offsetMs.Store(serverTime.UnixMilli() - time.Now().UnixMilli())
}
