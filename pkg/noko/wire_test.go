package noko

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoolToWire(t *testing.T) {
	assert.Equal(t, "true", boolToWire(true))
	assert.Equal(t, "false", boolToWire(false))
	assert.Equal(t, "true", boolToWire("true"))
	assert.Equal(t, "true", boolToWire("TRUE"))
	assert.Equal(t, "false", boolToWire("false"))
	assert.Nil(t, boolToWire(nil))
}

func TestBoolToWire_NonBooleanPassthrough(t *testing.T) {
	// Invalid values are caught upstream or rejected remotely.
	assert.Equal(t, 42, boolToWire(42))
}

func TestDateToWire_RoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-02-29", "1999-12-31"} {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		assert.Equal(t, s, dateToWire(d))
	}
	// Strings pass through unchanged; validation is a separate step.
	assert.Equal(t, "2024-01-01", dateToWire("2024-01-01"))
}

func TestTimestampToWire(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 45, 123456789, time.UTC)
	assert.Equal(t, "2024-03-15T09:30:45Z", timestampToWire(ts))
	assert.Equal(t, "2024-03-15T09:30:45Z", timestampToWire("2024-03-15T09:30:45Z"))
	assert.Nil(t, timestampToWire(nil))
}

func TestIDListToWire(t *testing.T) {
	assert.Equal(t, "1,2,3", idListToWire([]any{1, "2", 3}))
	assert.Equal(t, "1,2,3", idListToWire([]int{1, 2, 3}))
	assert.Equal(t, "1,2", idListToWire([]string{"1", "2"}))
	assert.Equal(t, "7", idListToWire(7))
	assert.Equal(t, "1,2,3", idListToWire("1,2,3"))
	assert.Nil(t, idListToWire(nil))
}

func TestIDListToInts_DropsMalformed(t *testing.T) {
	// Order preserved, bad element dropped, no error.
	assert.Equal(t, []int{1, 2, 3}, idListToInts([]any{1, "2", "bad", 3}))
	assert.Equal(t, []int{4, 5}, idListToInts([]string{"4", "5"}))
	assert.Equal(t, []int{9}, idListToInts(9))
	assert.Nil(t, idListToInts(nil))
}

func TestIDListToInts_SplitsCommaStrings(t *testing.T) {
	// The comma-joined wire form is accepted anywhere an ID list is.
	assert.Equal(t, []int{1, 2, 3}, idListToInts("1,2,3"))
	assert.Equal(t, []int{1, 2}, idListToInts("1, 2"))
	assert.Equal(t, []int{4, 6}, idListToInts([]any{"4,bad,6"}))
}
