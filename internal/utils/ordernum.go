package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

func namePrefix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 4 {
			break
		}
	}
	if b.Len() == 0 {
		return "USER"
	}
	return strings.ToUpper(b.String())
}

// GenerateOrderNumber builds the buyer-facing order identifier: the first
// four alphanumerics of the buyer name uppercased, then a 5-digit random
// part, e.g. "JOHN-48291".
func GenerateOrderNumber(buyerName string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % 90000)
	}

	return fmt.Sprintf("%s-%05d", namePrefix(buyerName), 10000+n.Int64())
}
