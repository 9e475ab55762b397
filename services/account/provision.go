// File: services/account/provision.go
package account

import (
	"context"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/models"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the payload, creates the account with its role claim
// and sends a verification email. Duplicate emails fail with already-exists.
func (s *DefaultAccountService) Register(ctx context.Context, req schemas.RegisterAccount) error {
	logger := utils.GetLogger()

	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Register: failed to check for existing account", zap.Error(err))
		return apperr.Internal("Something went wrong while creating account", err)
	}
	if existing != nil {
		return apperr.AlreadyExists("Account with email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return apperr.Internal("Something went wrong while creating account", err)
	}

	acct := models.Account{
		Email:         req.Email,
		DisplayName:   req.DisplayName(),
		Role:          req.Role,
		PasswordHash:  string(hashedPassword),
		EmailVerified: false,
	}
	if err := s.Repo.Create(ctx, &acct); err != nil {
		logger.Error("Register: failed to create account", zap.Error(err))
		return apperr.Internal("Something went wrong while creating account", err)
	}

	token := uuid.New().String()
	if err := s.Verifications.Save(ctx, token, acct.ID, utils.VerifyTokenTTL); err != nil {
		logger.Error("Register: failed to save verification token", zap.Error(err))
		return apperr.Internal("Something went wrong while creating account", err)
	}
	if err := s.Mailer.SendVerificationEmail(acct.Email, acct.DisplayName, token); err != nil {
		logger.Error("Register: failed to send verification email", zap.Error(err))
		return apperr.Internal("Something went wrong while creating account", err)
	}
	return nil
}

// VerifyEmail resolves a verification token and marks the account verified.
// The token is deleted only after the account update succeeds, so a failed
// update leaves it usable for a retry.
func (s *DefaultAccountService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return apperr.New(apperr.CodeInvalidArgument, "Verification token is required")
	}

	accountID, err := s.Verifications.Resolve(ctx, token)
	if err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to resolve token", zap.Error(err))
		return apperr.Internal("Something went wrong while verifying email", err)
	}
	if accountID == "" {
		return apperr.NotFound("Verification token not found or expired")
	}

	if err := s.Repo.MarkEmailVerified(ctx, accountID); err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to mark verified", zap.String("id", accountID), zap.Error(err))
		return apperr.Internal("Something went wrong while verifying email", err)
	}

	if err := s.Verifications.Delete(ctx, token); err != nil {
		utils.GetLogger().Warn("VerifyEmail: failed to delete used token", zap.Error(err))
	}
	return nil
}

// Authenticate verifies credentials and issues an auth token. Sign-in is
// refused for unverified emails and accounts missing a role claim.
func (s *DefaultAccountService) Authenticate(ctx context.Context, req schemas.LoginAccount) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	acct, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Authenticate: failed to fetch account", zap.Error(err))
		return nil, apperr.Internal("Authentication failed, please try again", err)
	}
	if acct == nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}

	if !acct.EmailVerified {
		return nil, apperr.Unauthenticated("Email not verified")
	}
	if acct.Role == "" {
		return nil, apperr.Unauthenticated("Role not set")
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, acct.Role, TokenDuration)
	if err != nil {
		logger.Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, apperr.Internal("Authentication failed, please try again", err)
	}
	if err := s.AuthTokens.Store(ctx, acct.ID, utils.HashToken(token), TokenDuration); err != nil {
		logger.Error("Authenticate: failed to cache auth token", zap.Error(err))
		return nil, apperr.Internal("Authentication failed, please try again", err)
	}

	return &AuthResponse{
		ID:          acct.ID,
		Token:       token,
		Email:       acct.Email,
		DisplayName: acct.DisplayName,
		Role:        acct.Role,
	}, nil
}
