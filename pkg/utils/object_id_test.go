package utils

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectID_Format(t *testing.T) {
	id := NewObjectID()
	assert.Len(t, id, ObjectIDLength)
	assert.True(t, IsObjectID(id), id)
}

func TestNewObjectID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewObjectID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewObjectID_EmbedsTimestamp(t *testing.T) {
	at := time.Date(2025, 2, 24, 16, 40, 58, 0, time.UTC)
	id := newObjectIDAt(at)

	raw, err := hex.DecodeString(id)
	require.NoError(t, err)
	secs := uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])
	assert.Equal(t, uint32(at.Unix()), secs)
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID("65bc9d4d1f2e3a0011223344"))
	assert.False(t, IsObjectID("65BC9D4D1F2E3A0011223344"))
	assert.False(t, IsObjectID("65bc9d4d1f2e3a001122334"))
	assert.False(t, IsObjectID("65bc9d4d1f2e3a00112233445"))
	assert.False(t, IsObjectID("zzbc9d4d1f2e3a0011223344"))
	assert.False(t, IsObjectID(""))
}

func TestDepartureRoundTrip(t *testing.T) {
	const in = "2025-02-24T16:40:58.000Z"
	parsed, err := ParseDeparture(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatDeparture(parsed))

	_, err = ParseDeparture(":" + in)
	assert.Error(t, err)
	_, err = ParseDeparture("2025-02-24T16:40:58,000Z")
	assert.Error(t, err)
	assert.Equal(t, "", FormatDeparture(time.Time{}))
}
