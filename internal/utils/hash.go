package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
