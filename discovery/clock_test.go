package discovery

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockDefaultOffsetZero(t *testing.T) {
	var c Clock
	assert.Equal(t, int64(0), c.OffsetMs())
}

func TestClockObserveHeaderSetsOffset(t *testing.T) {
	var c Clock
	future := time.Now().Add(5 * time.Minute)
	h := http.Header{}
	h.Set("Date", future.UTC().Format(http.TimeFormat))

	c.ObserveHeader(h)
	assert.InDelta(t, 5*60*1000, c.OffsetMs(), 2000)
}

func TestClockObserveHeaderIgnoresMissingOrBad(t *testing.T) {
	var c Clock
	c.ObserveHeader(http.Header{})
	assert.Equal(t, int64(0), c.OffsetMs())

	h := http.Header{}
	h.Set("Date", "not-a-date")
	c.ObserveHeader(h)
	assert.Equal(t, int64(0), c.OffsetMs())
}

func TestClockNowMsReflectsOffset(t *testing.T) {
	var c Clock
	c.offsetMs.Store(10000)
	before := time.Now().UnixMilli()
	got := c.NowMs()
	assert.Greater(t, got, before+5000)
}
