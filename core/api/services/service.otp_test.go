package services

import (
	"errors"
	"testing"
	"time"
)

func TestCheckOTP(t *testing.T) {
	future := time.Now().Add(time.Minute).UnixMilli()
	past := time.Now().Add(-time.Minute).UnixMilli()

	if err := CheckOTP("1234", future, "1234"); err != nil {
		t.Errorf("valid OTP rejected: %v", err)
	}
	if err := CheckOTP("1234", future, "4321"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("expected ErrInvalidOTP for wrong code, got %v", err)
	}
	if err := CheckOTP("", future, ""); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("expected ErrInvalidOTP when no OTP is stored, got %v", err)
	}
	if err := CheckOTP("1234", past, "1234"); !errors.Is(err, ErrExpiredOTP) {
		t.Errorf("expected ErrExpiredOTP for stale code, got %v", err)
	}
}

// A code whose expiry equals the current instant is already expired.
// The clock only moves forward, so now >= expires holds for the rest of
// the check.
func TestCheckOTPExpiryBoundary(t *testing.T) {
	boundary := time.Now().UnixMilli()
	if err := CheckOTP("1234", boundary, "1234"); !errors.Is(err, ErrExpiredOTP) {
		t.Errorf("expected ErrExpiredOTP at the expiry instant, got %v", err)
	}
}

func TestTicketStoreConsumeOnce(t *testing.T) {
	store := NewTicketStore()

	ticket := store.Issue("9876543210")
	if ticket == "" {
		t.Fatal("Issue returned an empty ticket")
	}

	if err := store.Consume(ticket, "9876543210"); err != nil {
		t.Fatalf("first Consume failed: %v", err)
	}
	if err := store.Consume(ticket, "9876543210"); !errors.Is(err, ErrInvalidResetTicket) {
		t.Errorf("expected ErrInvalidResetTicket on second Consume, got %v", err)
	}
}

func TestTicketStorePhoneBound(t *testing.T) {
	store := NewTicketStore()

	ticket := store.Issue("9876543210")
	if err := store.Consume(ticket, "0123456789"); !errors.Is(err, ErrInvalidResetTicket) {
		t.Errorf("expected ErrInvalidResetTicket for wrong phone, got %v", err)
	}
	// the mismatched attempt burns the ticket
	if err := store.Consume(ticket, "9876543210"); !errors.Is(err, ErrInvalidResetTicket) {
		t.Errorf("expected ErrInvalidResetTicket after burned ticket, got %v", err)
	}
}

func TestTicketStoreExpiry(t *testing.T) {
	store := NewTicketStore()

	store.mu.Lock()
	store.tickets["stale"] = resetTicket{
		phone:   "9876543210",
		expires: time.Now().Add(-time.Second),
	}
	store.mu.Unlock()

	if err := store.Consume("stale", "9876543210"); !errors.Is(err, ErrInvalidResetTicket) {
		t.Errorf("expected ErrInvalidResetTicket for expired ticket, got %v", err)
	}
}

func TestTicketStoreUnknownTicket(t *testing.T) {
	store := NewTicketStore()
	if err := store.Consume("never-issued", "9876543210"); !errors.Is(err, ErrInvalidResetTicket) {
		t.Errorf("expected ErrInvalidResetTicket for unknown ticket, got %v", err)
	}
}
