package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/internal/domain/repository"
	"github.com/subho2010/money-records-api/pkg/apperror"
	"github.com/subho2010/money-records-api/pkg/email"
	"github.com/subho2010/money-records-api/pkg/sms"
	"github.com/subho2010/money-records-api/pkg/utils"
)

const (
	otpLength = 6
	otpTTL    = 10 * time.Minute
)

// VerificationService issues and checks one-time codes for email and phone
// verification. Codes are single-use: a successful check invalidates the
// code before flipping the user's verified flag.
type VerificationService struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationCodeRepository
	tx               repository.TxManager
	emailService     *email.EmailService
	smsSender        sms.Sender
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationCodeRepository,
	tx repository.TxManager,
	emailService *email.EmailService,
	smsSender sms.Sender,
) *VerificationService {
	return &VerificationService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		tx:               tx,
		emailService:     emailService,
		smsSender:        smsSender,
	}
}

// IssueEmailCode generates, stores and emails a verification code
func (s *VerificationService) IssueEmailCode(ctx context.Context, userID uuid.UUID, emailAddr string) (*entity.VerificationCode, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if emailAddr == "" {
		return nil, apperror.NewFieldError("email", "Email must not be empty")
	}

	code, err := s.issue(ctx, userID, enum.VerificationChannelEmail, emailAddr)
	if err != nil {
		return nil, err
	}
	if err := s.emailService.SendVerificationCode(emailAddr, code.Code); err != nil {
		return nil, err
	}
	return code, nil
}

// CheckEmailCode verifies an email code and marks the user's email verified
func (s *VerificationService) CheckEmailCode(ctx context.Context, userID uuid.UUID, emailAddr, submitted string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	return s.check(ctx, userID, enum.VerificationChannelEmail, emailAddr, submitted)
}

// IssuePhoneCode generates, stores and texts a verification code
func (s *VerificationService) IssuePhoneCode(ctx context.Context, userID uuid.UUID, countryCode, phone string) (*entity.VerificationCode, error) {
	if !contactPattern.MatchString(phone) {
		return nil, apperror.NewFieldError("phone", "Phone number must be exactly 10 digits")
	}

	target := countryCode + phone
	code, err := s.issue(ctx, userID, enum.VerificationChannelPhone, target)
	if err != nil {
		return nil, err
	}
	if err := s.smsSender.Send(target, sms.VerificationMessage(code.Code)); err != nil {
		return nil, err
	}
	return code, nil
}

// CheckPhoneCode verifies a phone code and marks the user's phone verified
func (s *VerificationService) CheckPhoneCode(ctx context.Context, userID uuid.UUID, countryCode, phone, submitted string) error {
	return s.check(ctx, userID, enum.VerificationChannelPhone, countryCode+phone, submitted)
}

func (s *VerificationService) issue(ctx context.Context, userID uuid.UUID, channel enum.VerificationChannel, target string) (*entity.VerificationCode, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	generated, err := utils.GenerateOTP(otpLength)
	if err != nil {
		return nil, err
	}

	code := &entity.VerificationCode{
		UserID:    userID,
		Channel:   channel,
		Target:    target,
		Code:      generated,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.verificationRepo.Create(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

// check validates the latest issued code for the target against the
// submitted one. Only the most recent code counts: issuing a new code
// supersedes earlier ones.
func (s *VerificationService) check(ctx context.Context, userID uuid.UUID, channel enum.VerificationChannel, target, submitted string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		code, err := s.verificationRepo.GetLatest(ctx, userID, channel, target)
		if err != nil {
			return err
		}
		if code == nil {
			return apperror.NewNotFoundError("Verification code")
		}
		if code.Used {
			return apperror.ErrCodeInvalid
		}
		if code.IsExpired() {
			return apperror.ErrCodeExpired
		}
		if code.Code != submitted {
			return apperror.ErrCodeInvalid
		}

		if err := s.verificationRepo.MarkUsed(ctx, code.ID); err != nil {
			return err
		}

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NewNotFoundError("User")
		}

		switch channel {
		case enum.VerificationChannelEmail:
			user.EmailVerified = true
		case enum.VerificationChannelPhone:
			user.PhoneVerified = true
		}
		user.ProfileComplete = user.ComputeProfileComplete()
		return s.userRepo.Update(ctx, user)
	})
}
