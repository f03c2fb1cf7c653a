package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/clients"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
	"github.com/arjunsharma6622/galaxygrow-server/core/logger"
	"github.com/arjunsharma6622/galaxygrow-server/core/utility"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// ErrPhoneNotFound is returned when an OTP is requested for an unknown
// phone number.
var ErrPhoneNotFound = common.NewError(common.ErrCodeAuthCredentials, "Phone number donot exist", common.StatusBadRequest, nil)

// resetTickets is shared across service instances so a ticket minted by
// one request can be consumed by the next.
var resetTickets = NewTicketStore()

// AuthService handles registration, login and the OTP based password
// reset flow for both users and vendors.
type AuthService struct {
	users   *BaseServiceMongoImpl[models.User]
	vendors *BaseServiceMongoImpl[models.Vendor]
	tokens  *TokenService
	sms     *clients.Fast2SMS
}

// NewAuthService creates an AuthService wired to the registered
// collections.
func NewAuthService() (*AuthService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	vendorCollection, exist := global.RegistryCollections.Get(global.ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	return &AuthService{
		users:   NewBaseServiceMongo[models.User](userCollection),
		vendors: NewBaseServiceMongo[models.Vendor](vendorCollection),
		tokens:  NewTokenService(),
		sms:     clients.NewFast2SMS(global.ServerConfig.Fast2SMSAPIKey),
	}, nil
}

// Login authenticates a user by email or 10 digit phone number. Every
// failure path returns the same message so the response does not leak
// whether the account exists.
func (s *AuthService) Login(ctx context.Context, input *dto.LoginInput) (*models.User, string, error) {
	var filter bson.M
	switch {
	case emailPattern.MatchString(input.Email):
		filter = bson.M{"email": input.Email}
	case phonePattern.MatchString(input.Email):
		filter = bson.M{"phone": input.Email}
	default:
		return nil, "", common.ErrInvalidCredentials
	}

	user, err := s.users.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex(), models.PrincipalUser)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// contactTakenFilter matches any document holding the given email or
// phone.
func contactTakenFilter(email, phone string) bson.M {
	return bson.M{"$or": []bson.M{
		{"email": email},
		{"phone": phone},
	}}
}

// checkContactAvailable rejects a registration when the email or phone
// is already held by any account, user or vendor.
func (s *AuthService) checkContactAvailable(ctx context.Context, email, phone string) error {
	filter := contactTakenFilter(email, phone)

	userTaken, err := s.users.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	vendorTaken, err := s.vendors.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if userTaken || vendorTaken {
		return common.NewError(common.ErrCodeAuthCredentials,
			"Email or Phone number already in use for registration.",
			common.StatusBadRequest, nil)
	}
	return nil
}

// RegisterUser creates a user account, issues a token and dispatches a
// verification OTP to the registered phone.
func (s *AuthService) RegisterUser(ctx context.Context, input *dto.UserRegisterInput) (*models.User, string, error) {
	log := logger.GetAppLogger()

	if err := s.checkContactAvailable(ctx, input.Email, input.Phone); err != nil {
		return nil, "", err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := input.ToModel()
	user.Password = hashed
	user.Businesses = []primitive.ObjectID{}
	user.Enquiries = []primitive.ObjectID{}
	user.Ratings = []primitive.ObjectID{}

	created, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID.Hex(), models.PrincipalUser)
	if err != nil {
		return nil, "", err
	}

	if err := s.sendOTP(ctx, s.users.Collection().Name(), created.ID.Hex(), created.Phone, OTPTTL); err != nil {
		// registration stands even when the OTP dispatch fails
		log.WithError(err).WithField("phone", created.Phone).Warn("Cannot dispatch registration OTP")
	}

	return &created, token, nil
}

// RegisterVendor creates a vendor account. Email and phone must both be
// unused across vendors and users.
func (s *AuthService) RegisterVendor(ctx context.Context, input *dto.VendorRegisterInput) (*models.Vendor, string, error) {
	log := logger.GetAppLogger()

	if err := s.checkContactAvailable(ctx, input.Email, input.Phone); err != nil {
		return nil, "", err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	vendor := input.ToModel()
	vendor.Password = hashed
	vendor.Businesses = []primitive.ObjectID{}

	created, err := s.vendors.InsertOne(ctx, vendor)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID.Hex(), models.PrincipalVendor)
	if err != nil {
		return nil, "", err
	}

	if err := s.sendOTP(ctx, s.vendors.Collection().Name(), created.ID.Hex(), created.Phone, OTPTTL); err != nil {
		log.WithError(err).WithField("phone", created.Phone).Warn("Cannot dispatch registration OTP")
	}

	return &created, token, nil
}

// sendOTP stores a fresh OTP on the principal document and dispatches it
// over SMS.
func (s *AuthService) sendOTP(ctx context.Context, collectionName, id, phone string, ttl time.Duration) error {
	otp := utility.GenerateOTP()
	update := bson.M{"$set": bson.M{"otp": bson.M{
		"value":   otp,
		"expires": time.Now().Add(ttl).UnixMilli(),
	}}}

	objectID := utility.String2ObjectID(id)
	switch collectionName {
	case global.ColNames.Users:
		if _, err := s.users.UpdateById(ctx, objectID, update); err != nil {
			return err
		}
	case global.ColNames.Vendors:
		if _, err := s.vendors.UpdateById(ctx, objectID, update); err != nil {
			return err
		}
	}

	return s.sms.SendOTP(ctx, phone, otp)
}

// RequestOTP stores and sends a fresh OTP for the account owning the
// phone number, looking at users first and vendors second.
func (s *AuthService) RequestOTP(ctx context.Context, phone string) error {
	user, err := s.users.FindOne(ctx, bson.M{"phone": phone}, nil)
	if err == nil {
		return s.sendOTP(ctx, global.ColNames.Users, user.ID.Hex(), phone, OTPTTL)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	vendor, err := s.vendors.FindOne(ctx, bson.M{"phone": phone}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return ErrPhoneNotFound
		}
		return err
	}

	return s.sendOTP(ctx, global.ColNames.Vendors, vendor.ID.Hex(), phone, OTPTTL)
}

// VerifyOTP checks the submitted code, clears it on success and mints a
// single use reset ticket for the password reset step.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, otp string) (string, error) {
	clearOTP := bson.M{"$unset": bson.M{"otp": ""}}

	user, err := s.users.FindOne(ctx, bson.M{"phone": phone}, nil)
	if err == nil {
		if err := CheckOTP(user.OTP.Value, user.OTP.Expires, otp); err != nil {
			return "", err
		}
		if _, err := s.users.UpdateById(ctx, user.ID, clearOTP); err != nil {
			return "", err
		}
		return resetTickets.Issue(phone), nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", err
	}

	vendor, err := s.vendors.FindOne(ctx, bson.M{"phone": phone}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", ErrPhoneNotFound
		}
		return "", err
	}

	if err := CheckOTP(vendor.OTP.Value, vendor.OTP.Expires, otp); err != nil {
		return "", err
	}
	if _, err := s.vendors.UpdateById(ctx, vendor.ID, clearOTP); err != nil {
		return "", err
	}

	return resetTickets.Issue(phone), nil
}

// ResetPassword consumes a reset ticket and replaces the password of the
// account owning the phone number.
func (s *AuthService) ResetPassword(ctx context.Context, input *dto.ResetPasswordInput) error {
	if err := resetTickets.Consume(input.Ticket, input.Phone); err != nil {
		return err
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"password": hashed}}

	_, err = s.users.UpdateOne(ctx, bson.M{"phone": input.Phone}, update, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	_, err = s.vendors.UpdateOne(ctx, bson.M{"phone": input.Phone}, update, nil)
	if errors.Is(err, common.ErrNotFound) {
		return ErrPhoneNotFound
	}
	return err
}

// Principal loads the user or vendor identified by a verified token's
// id and kind claims.
func (s *AuthService) Principal(ctx context.Context, id, kind string) (interface{}, error) {
	objectID := utility.String2ObjectID(id)
	if objectID.IsZero() {
		return nil, common.ErrTokenInvalid
	}

	switch kind {
	case models.PrincipalUser:
		user, err := s.users.FindOneById(ctx, objectID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrPrincipalNotFound
			}
			return nil, err
		}
		return &user, nil
	case models.PrincipalVendor:
		vendor, err := s.vendors.FindOneById(ctx, objectID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrPrincipalNotFound
			}
			return nil, err
		}
		return &vendor, nil
	}

	return nil, common.ErrTokenInvalid
}
