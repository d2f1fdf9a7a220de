package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP creates a numeric OTP of the given length.
// Leading zeros are preserved, so "012345" is a valid code.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}
