package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIP produces a salted one-way hash of a client address for abuse
// tracking without storing the raw address. 32 hex chars.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:32]
}
