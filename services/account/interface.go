package account

import (
	"context"
	"time"

	accountRepo "github.com/funabab/ilivercare-app/database/repository/account"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/utils"
)

// TokenDuration is how long issued auth tokens stay valid.
const TokenDuration = 24 * time.Hour

// AuthResponse carries the issued credential and the account's public view.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// AccountService provisions identities: registration with a role claim and
// email verification, then token issuance for verified accounts.
type AccountService interface {
	// Register creates the account, attaches its role claim and triggers
	// email verification.
	Register(ctx context.Context, req schemas.RegisterAccount) error
	// VerifyEmail consumes a verification token and marks the account
	// verified.
	VerifyEmail(ctx context.Context, token string) error
	// Authenticate verifies credentials and returns an auth token. Sign-in
	// is refused until the email is verified and a role claim exists.
	Authenticate(ctx context.Context, req schemas.LoginAccount) (*AuthResponse, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo          accountRepo.Repository
	Verifications VerificationStore
	AuthTokens    AuthTokenStore
	Mailer        utils.Mailer
}
