package utils

import (
	"math/rand"
	"time"
)

const verificationCodeLength = 6
const digitBytes = "0123456789"

// GenerateVerificationCode returns the 6-digit code mailed out for campus
// email verification.
func GenerateVerificationCode() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, verificationCodeLength)
	for i := range b {
		b[i] = digitBytes[seededRand.Intn(len(digitBytes))]
	}
	return string(b)
}
