package services

import (
	"sync"
	"time"

	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

const (
	// OTPTTL is how long a login OTP stays valid.
	OTPTTL = 5 * time.Minute
	// CallLeadOTPTTL is how long a call lead verification OTP stays valid.
	CallLeadOTPTTL = 10 * time.Minute
	// ResetTicketTTL is how long a password reset ticket stays valid
	// after a successful OTP verification.
	ResetTicketTTL = 10 * time.Minute
)

var (
	// ErrInvalidOTP is returned when the submitted code does not match.
	ErrInvalidOTP = common.NewError(common.ErrCodeAuthCredentials, "Invalid OTP", common.StatusBadRequest, nil)
	// ErrExpiredOTP is returned when the stored code is past its TTL.
	ErrExpiredOTP = common.NewError(common.ErrCodeAuthCredentials, "OTP expired", common.StatusBadRequest, nil)
	// ErrInvalidResetTicket is returned when a password reset carries a
	// missing, expired or already consumed ticket.
	ErrInvalidResetTicket = common.NewError(common.ErrCodeAuthCredentials, "Invalid or expired reset ticket", common.StatusBadRequest, nil)
)

type resetTicket struct {
	phone   string
	expires time.Time
}

// TicketStore hands out single use password reset tickets. A ticket is
// minted when an OTP verification succeeds and consumed exactly once by
// the subsequent password reset.
type TicketStore struct {
	mu      sync.Mutex
	tickets map[string]resetTicket
}

// NewTicketStore creates an empty ticket store.
func NewTicketStore() *TicketStore {
	return &TicketStore{
		tickets: make(map[string]resetTicket),
	}
}

// Issue mints a ticket bound to the given phone number.
func (s *TicketStore) Issue(phone string) string {
	ticket := utility.GenerateTicket(32)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	s.tickets[ticket] = resetTicket{
		phone:   phone,
		expires: time.Now().Add(ResetTicketTTL),
	}

	return ticket
}

// Consume validates a ticket against a phone number and removes it. A
// ticket can only ever be consumed once.
func (s *TicketStore) Consume(ticket, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tickets[ticket]
	if !ok {
		return ErrInvalidResetTicket
	}
	delete(s.tickets, ticket)

	if entry.phone != phone || time.Now().After(entry.expires) {
		return ErrInvalidResetTicket
	}

	return nil
}

func (s *TicketStore) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range s.tickets {
		if now.After(entry.expires) {
			delete(s.tickets, key)
		}
	}
}

// CheckOTP compares a submitted code against the stored one, enforcing
// expiry. The stored expiry is in unix milliseconds.
func CheckOTP(storedValue string, storedExpires int64, submitted string) error {
	if storedValue == "" || storedValue != submitted {
		return ErrInvalidOTP
	}
	// The code is live strictly before its expiry instant.
	if time.Now().UnixMilli() >= storedExpires {
		return ErrExpiredOTP
	}
	return nil
}
