package utility

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 4)

		value, err := strconv.Atoi(otp)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, value, 1000)
		assert.LessOrEqual(t, value, 9999)
	}
}

func TestGenerateTicket(t *testing.T) {
	ticket := GenerateTicket(32)
	assert.Len(t, ticket, 64)

	// defaults to 32 bytes on a nonsense length
	assert.Len(t, GenerateTicket(0), 64)
	assert.NotEqual(t, ticket, GenerateTicket(32))
}
