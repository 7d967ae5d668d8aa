// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"gateway/config"
	deliverycontext "gateway/internal/delivery/context"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	"gateway/internal/domain/service"
	"gateway/internal/usecase"
)

// authService implements the AuthUsecase interface. It holds no mutable
// state; everything is fixed at construction.
type authService struct {
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	codec          service.TokenCodec
	tokenTTL       time.Duration
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Codec          service.TokenCodec
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		codec:          params.Codec,
		tokenTTL:       time.Duration(params.Config.Auth.ExpireMinutes) * time.Minute,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies a username/password pair against the credential store.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.AuthenticatedUser, error) {
	credential, err := srv.findCredential(ctx, username)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(password, credential.PasswordHash) {
		srv.log(ctx).Error("Password does not match", slog.String("username", username))

		return nil, errors.Wrapf(domainerrors.ErrPasswordMismatch, "user %s", username)
	}

	return &entity.AuthenticatedUser{
		Username:     credential.Username,
		PasswordHash: credential.PasswordHash,
	}, nil
}

// IssueToken produces a signed bearer token expiring after the configured TTL.
// Encoding failures are configuration errors, not recoverable conditions.
func (srv *authService) IssueToken(ctx context.Context, user *entity.AuthenticatedUser) (*entity.Token, error) {
	if user == nil || user.Username == "" {
		return nil, errors.New("cannot issue token without a username")
	}

	signed, err := srv.codec.Encode(&entity.TokenClaims{
		Subject:   user.Username,
		ExpiresAt: time.Now().Add(srv.tokenTTL),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to encode access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to encode access token")
	}

	return &entity.Token{
		AccessToken: signed,
		TokenType:   entity.TokenType,
	}, nil
}

// ValidateToken decodes a token string and confirms its subject still
// resolves. Returns the resolved username; callers may treat it as a gate.
func (srv *authService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := srv.codec.Decode(tokenString)
	if err != nil {
		srv.log(ctx).Error("Corrupted token data", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrCorruptedToken, "failed to decode token")
	}

	if claims.Subject == "" {
		return "", errors.Wrap(domainerrors.ErrEmptyClaim, "token carries no subject")
	}

	// A valid token for a since-deleted account must not pass the gate.
	if _, err := srv.findCredential(ctx, claims.Subject); err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// findCredential looks up a username and maps store errors onto the domain
// taxonomy: missing record vs unreachable store.
func (srv *authService) findCredential(ctx context.Context, username string) (*entity.Credential, error) {
	credential, err := srv.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Error("User does not exist", slog.String("username", username))

			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", username)
		}

		srv.log(ctx).Error("Credential store unreachable", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return credential, nil
}
