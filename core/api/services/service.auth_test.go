package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
)

// Registration checks the same filter against users and vendors, so the
// filter itself must cover both the email and the phone of the
// candidate account.
func TestContactTakenFilterCoversEmailAndPhone(t *testing.T) {
	filter := contactTakenFilter("a@b.com", "9876543210")

	clauses, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clauses, got %v", filter)
	}

	var sawEmail, sawPhone bool
	for _, clause := range clauses {
		if clause["email"] == "a@b.com" {
			sawEmail = true
		}
		if clause["phone"] == "9876543210" {
			sawPhone = true
		}
	}
	if !sawEmail {
		t.Error("filter does not match on email")
	}
	if !sawPhone {
		t.Error("filter does not match on phone")
	}
}

// A login identifier that is neither an email nor a 10 digit phone
// fails with the same message as a wrong password. No hint about
// account existence may leak.
func TestLoginMalformedIdentifierUniformFailure(t *testing.T) {
	s := &AuthService{}

	_, _, err := s.Login(context.Background(), &dto.LoginInput{
		Email:    "not-an-identifier",
		Password: "whatever",
	})
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err.Error() != "Incorrect email or phone number or password" {
		t.Errorf("unexpected failure message: %q", err.Error())
	}
}
