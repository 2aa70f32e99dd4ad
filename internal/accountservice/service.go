// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"strings"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/errorspkg"
	"github.com/andrisetia/tokojus/pkg/passpkg"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, username string) (domain.Account, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Account, error)
	TopUp(ctx context.Context, id primitive.ObjectID, amount int64) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo     Repo
	validate *validator.Validate
}

// New return account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{
		repo:     ar,
		validate: validator.New(),
	}
}

// Register creates an account with the starting balance.
func (s *Service) Register(ctx context.Context, username, password string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if err := s.validate.Var(username, "required"); err != nil {
		return domain.Account{}, domain.ErrInvalidInput
	}

	if err := s.validate.Var(password, "required"); err != nil {
		return domain.Account{}, domain.ErrInvalidInput
	}

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	arg := domain.CreateAccountParams{
		Username:       username,
		HashedPassword: hashedPassword,
		Balance:        domain.StartingBalance,
	}

	account, err := s.repo.Create(ctx, arg)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// CheckPassword checks if the password is valid for the given username.
// Both an unknown username and a wrong password return
// domain.ErrInvalidCredentials so the response never reveals which one it was.
func (s *Service) CheckPassword(ctx context.Context, username, password string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return domain.Account{}, domain.ErrInvalidCredentials
		}

		return domain.Account{}, err
	}

	if err := passpkg.Check(strings.TrimSpace(password), account.HashedPassword); err != nil {
		l.Warn().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidCredentials
	}

	return account, nil
}

// Balance re-reads the stored balance for the account.
func (s *Service) Balance(ctx context.Context, accountID primitive.ObjectID) (int64, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}

	return account.Balance, nil
}

// TopUp credits the account and returns the new balance.
func (s *Service) TopUp(ctx context.Context, accountID primitive.ObjectID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	account, err := s.repo.TopUp(ctx, accountID, amount)
	if err != nil {
		return 0, err
	}

	return account.Balance, nil
}
