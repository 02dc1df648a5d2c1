package analyses

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a shareable analysis id: a millisecond timestamp joined with
// a short random base36 suffix. Collision-resistant enough for a share link,
// not a cryptographic identifier.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), randomSuffix(6))
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// Degrade to a time-derived suffix rather than fail the analysis.
		return fmt.Sprintf("%06d", time.Now().Nanosecond()%1000000)
	}
	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return string(buf)
}
