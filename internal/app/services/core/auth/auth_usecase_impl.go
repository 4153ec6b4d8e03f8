package auth

import (
	"context"
	"errors"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AccountRepository contracts.AccountRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAuthUsecase(
	accountRepository contracts.AccountRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AccountRepository: accountRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account, err := uc.AccountRepository.FindByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding account by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var passwordMatches bool
	if account == nil {
		passwordMatches = utils.CheckPasswordAgainstDummy(request.Password)
	} else {
		passwordMatches = utils.CheckPasswordHash(request.Password, account.PasswordHash)
	}
	if !passwordMatches {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "medium")
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := utils.GenerateAccountJWT(account.ID, account.Role, uc.InternalConfig.JWT.Secret, uc.now(), uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return &responses.Login{
		Token:   token,
		Account: utils.MapAccountToResponse(account),
	}, nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.AccountClaims, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims, err := utils.ParseAccountJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	account, err := uc.AccountRepository.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAccountNotFound))
	}

	return &models.AccountClaims{
		AccountID: account.ID,
		Role:      account.Role,
	}, nil
}

func (uc *authUsecase) GetMe(ctx context.Context, accountID string) (*responses.Account, error) {
	account, err := uc.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return utils.MapAccountToResponse(account), nil
}

func (uc *authUsecase) UpdatePassword(ctx context.Context, accountID string, request *requests.UpdatePassword) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.UpdatePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	account, err := uc.findAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(request.CurrentPassword, account.PasswordHash) {
		utils.LogSecurityEvent(uc.Log, "password_change_rejected", requestID, "medium",
			zap.String(constvars.LoggingAccountIDKey, accountID),
		)
		return exceptions.ErrInvalidCurrentPassword(nil)
	}

	passwordHash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.AccountRepository.UpdatePasswordHash(ctx, account.ID, passwordHash, uc.now())
	if err != nil {
		uc.Log.Error("authUsecase.UpdatePassword error updating password hash",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.UpdatePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)
	return nil
}

// Logout only records the event; bearer tokens are discarded by the client.
func (uc *authUsecase) Logout(ctx context.Context, accountID string) error {
	utils.LogBusinessEvent(uc.Log, "staff_logout", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)
	return nil
}

func (uc *authUsecase) CreateAccount(ctx context.Context, request *requests.CreateAccount) (*responses.Account, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.CreateAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.ToLower(strings.TrimSpace(request.Email))
	existing, err := uc.AccountRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleFrontDesk
	}

	account := &models.Account{
		Name:         request.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	account.SetCreatedAtUpdatedAt(uc.now())

	account.ID, err = uc.AccountRepository.Create(ctx, account)
	if err != nil {
		uc.Log.Error("authUsecase.CreateAccount error creating account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.CreateAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return utils.MapAccountToResponse(account), nil
}

func (uc *authUsecase) EnsureAccount(ctx context.Context, request *requests.CreateAccount) (*responses.Account, bool, error) {
	existing, err := uc.AccountRepository.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return utils.MapAccountToResponse(existing), false, nil
	}

	account, err := uc.CreateAccount(ctx, request)
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}

func (uc *authUsecase) findAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := uc.AccountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAccountNotFound))
	}
	return account, nil
}
