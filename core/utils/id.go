package utils

import (
	"crypto/rand"
	"encoding/base64"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateRandomString returns an unguessable nanoid of the given length,
// used for OAuth state tokens and provisioned account passwords.
func GenerateRandomString(length int) string {
	id, err := gonanoid.Generate(idAlphabet, length)
	if err != nil {
		// Fallback if the nanoid reader fails
		bytes := make([]byte, length)
		if _, err := rand.Read(bytes); err != nil {
			return ""
		}
		return base64.URLEncoding.EncodeToString(bytes)[:length]
	}
	return id
}
