package services

import (
	"context"
	"log"

	"travelr/internal/models/db_models"
	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	"travelr/internal/repositories"
	"travelr/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		UID:   account.ID.String(),
		Email: account.Email,
		Name:  account.Name,
		Token: token,
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(newAccount.ID, newAccount.Email)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		UID:   newAccount.ID.String(),
		Email: newAccount.Email,
		Name:  newAccount.Name,
		Token: token,
	}, nil
}
