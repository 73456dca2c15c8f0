package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"sync/atomic"
	"time"
)

// ObjectIDLength is the length of a hex encoded object id.
const ObjectIDLength = 24

var objectIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// processUnique and objectIDCounter are seeded once per process.
var (
	processUnique   = mustRandomBytes(5)
	objectIDCounter = func() *atomic.Uint32 {
		var c atomic.Uint32
		seed := mustRandomBytes(4)
		c.Store(binary.BigEndian.Uint32(seed))
		return &c
	}()
)

func mustRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("object id: cannot read random bytes: " + err.Error())
	}
	return b
}

// NewObjectID returns a 12 byte id as 24 lowercase hex characters:
// 4 bytes of unix seconds, 5 bytes unique to the process and a 3 byte counter.
func NewObjectID() string {
	return newObjectIDAt(time.Now())
}

func newObjectIDAt(t time.Time) string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(t.Unix()))
	copy(b[4:9], processUnique)

	n := objectIDCounter.Add(1)
	b[9] = byte(n >> 16)
	b[10] = byte(n >> 8)
	b[11] = byte(n)

	return hex.EncodeToString(b[:])
}

// IsObjectID reports whether s has the shape of an id produced by NewObjectID.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}
