package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayString(t *testing.T) {
	// 04:00 UTC on Jan 11 is still Jan 10 in Los Angeles.
	ts := time.Date(2024, 1, 11, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-10", DayString(ts))

	noon := time.Date(2024, 1, 11, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-11", DayString(noon))
}

func TestDayStringZeroTime(t *testing.T) {
	assert.Equal(t, "", DayString(time.Time{}))
}

func TestLocationMatchesDayBucketing(t *testing.T) {
	ts := time.Date(2024, 1, 11, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-10", ts.In(Location()).Format("2006-01-02"))
	assert.Equal(t, DayString(ts), ts.In(Location()).Format("2006-01-02"))
}
