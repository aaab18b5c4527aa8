// Package common contains small shared helpers and constants.
package common

// TokenMetadataKey is the fixed local-storage key under which the bearer
// token is persisted. At most one token is held at a time.
const TokenMetadataKey = "auth_token"

// EmailMetadataKey stores the email of the currently logged-in account,
// used only for prompt display.
const EmailMetadataKey = "auth_email"

// WipeByteArray zeroes a sensitive buffer (passwords) after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
