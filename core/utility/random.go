package utility

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateOTP returns a 4 digit code in [1000, 9999].
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand failing means the system entropy source is broken
		panic(fmt.Sprintf("cannot generate OTP: %v", err))
	}
	return fmt.Sprintf("%d", n.Int64()+1000)
}

// GenerateTicket returns a random hex token of byteLen bytes.
func GenerateTicket(byteLen int) string {
	if byteLen <= 0 {
		byteLen = 32
	}
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("cannot generate ticket: %v", err))
	}
	return hex.EncodeToString(buf)
}
