package auth

import (
	"context"
	"errors"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

// LoginUseCase authenticates the single admin identity: the email must be on
// the allow-list and the password must match the configured bcrypt hash.
type LoginUseCase struct {
	allowList    *auth.AllowList
	passwordHash string
	jwtSvc       *auth.JWTService
	logger       logger.Logger
}

func NewLoginUseCase(allowList *auth.AllowList, passwordHash string, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		allowList:    allowList,
		passwordHash: passwordHash,
		jwtSvc:       jwtSvc,
		logger:       log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	_, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if !uc.allowList.Allowed(input.Email) {
		uc.logger.Warn("Login rejected: email not allowed", zap.String("email", input.Email))
		err := apperror.NewUnauthorized("login failed", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, uc.passwordHash) {
		err := apperror.NewUnauthorized("login failed", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(input.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("email", input.Email))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("email", input.Email))
	return &LoginOutput{AccessToken: token}, nil
}
