package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// OTPGeneratorImpl implements domain.OTPGenerator. Codes are drawn
// digit by digit from crypto/rand so they stay uniform and leading
// zeros are possible.
type OTPGeneratorImpl struct {
	length int
}

// NewOTPGenerator creates a new OTP generator
func NewOTPGenerator(length int) domain.OTPGenerator {
	if length <= 0 {
		length = 6
	}
	return &OTPGeneratorImpl{length: length}
}

// Generate implements domain.OTPGenerator
func (g *OTPGeneratorImpl) Generate() (string, error) {
	digits := make([]byte, g.length)

	for i := 0; i < g.length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
