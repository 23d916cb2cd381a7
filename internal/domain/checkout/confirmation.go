package checkout

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	confirmationPrefix = "HTL"
	confirmationDigits = 9
	base36Alphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewConfirmationCode returns the fixed prefix followed by 9 random base-36
// characters, uppercased. The code carries no transactional meaning.
func NewConfirmationCode() string {
	buf := make([]byte, confirmationDigits)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%s%09d", confirmationPrefix, time.Now().UnixNano()%1_000_000_000)
	}
	for i, b := range buf {
		buf[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return confirmationPrefix + string(buf)
}
