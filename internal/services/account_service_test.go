package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"travelr/internal/models/db_models"
	"travelr/internal/models/request_models"
	"travelr/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.byEmail {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	}
	created, err := svc.CreateAccount(context.Background(), signUp)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if created.UID == "" || created.Token == "" {
		t.Fatalf("incomplete auth response: %+v", created)
	}
	if repo.byEmail[signUp.Email].PasswordHash == signUp.Password {
		t.Fatalf("password stored in plain text")
	}

	logged, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    signUp.Email,
		Password: signUp.Password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.UID != created.UID || logged.Name != signUp.DisplayName {
		t.Fatalf("login identity mismatch: %+v", logged)
	}

	claims, err := utils.ValidateToken(logged.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != created.UID || claims.Email != signUp.Email {
		t.Fatalf("token claims mismatch: %+v", claims)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	signUp := request_models.SignUpRequest{DisplayName: "Asha", Email: "asha@example.com", Password: "secret123"}
	if _, err := svc.CreateAccount(context.Background(), signUp); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if _, err := svc.CreateAccount(context.Background(), signUp); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	if _, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "ghost@example.com", Password: "whatever1"}); !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	signUp := request_models.SignUpRequest{DisplayName: "Asha", Email: "asha@example.com", Password: "secret123"}
	if _, err := svc.CreateAccount(context.Background(), signUp); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if _, err := svc.Login(context.Background(), request_models.LoginRequest{Email: signUp.Email, Password: "wrongpass"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
