package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateReferralCode issues the short shareable code attached to every
// user account.
func GenerateReferralCode() (string, error) {
	return gonanoid.Generate(characters, 8)
}
