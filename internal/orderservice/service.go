// Package orderservice manages business logic layer of orders.
package orderservice

import (
	"context"
	"math"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/errorspkg"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountRepo provides the balance operations needed by the order service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package orderservice
type AccountRepo interface {
	Debit(ctx context.Context, id primitive.ObjectID, amount int64) (domain.Account, error)
	TopUp(ctx context.Context, id primitive.ObjectID, amount int64) (domain.Account, error)
}

// OrderRepo provides data access layer interface needed by order service layer.
type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	ListByAccount(ctx context.Context, accountID primitive.ObjectID) (domain.OrderIterator, error)
}

// Service facilitates order service layer logic.
type Service struct {
	orders   OrderRepo
	accounts AccountRepo
}

// New return order service struct to manage order bussines logic.
func New(or OrderRepo, ar AccountRepo) *Service {
	return &Service{
		orders:   or,
		accounts: ar,
	}
}

// buildItems resolves selections against the menu and totals them.
func buildItems(selections []domain.Selection) ([]domain.OrderItem, int64, error) {
	var (
		items []domain.OrderItem
		total int64
	)

	for _, sel := range selections {
		menuItem, ok := domain.MenuItemByCode(sel.Code)
		if !ok {
			return nil, 0, domain.ErrUnknownMenuItem
		}

		if sel.Quantity <= 0 {
			return nil, 0, domain.ErrInvalidQuantity
		}

		if sel.Quantity > domain.MaxQuantity {
			return nil, 0, domain.ErrQuantityTooLarge
		}

		subtotal := menuItem.Price * int64(sel.Quantity)

		if subtotal > math.MaxInt64-total {
			return nil, 0, domain.ErrQuantityTooLarge
		}

		items = append(items, domain.OrderItem{
			Name:      menuItem.Name,
			UnitPrice: menuItem.Price,
			Quantity:  sel.Quantity,
			Subtotal:  subtotal,
		})

		total += subtotal
	}

	return items, total, nil
}

// PlaceOrder debits the account by the cart total and records the order.
// The debit and the insert succeed or fail as one unit from the caller's
// perspective: a failed insert credits the total back before returning.
func (s *Service) PlaceOrder(ctx context.Context, accountID primitive.ObjectID, username string, selections []domain.Selection) (domain.Order, int64, error) {
	l := zerolog.Ctx(ctx)

	if len(selections) == 0 {
		return domain.Order{}, 0, domain.ErrEmptyOrder
	}

	items, total, err := buildItems(selections)
	if err != nil {
		return domain.Order{}, 0, err
	}

	account, err := s.accounts.Debit(ctx, accountID, total)
	if err != nil {
		return domain.Order{}, 0, err
	}

	order, err := s.orders.Create(ctx, domain.Order{
		AccountID: accountID,
		Username:  username,
		Items:     items,
		Total:     total,
	})
	if err != nil {
		// Compensate the debit so no partial order is ever visible.
		if _, refundErr := s.accounts.TopUp(ctx, accountID, total); refundErr != nil {
			l.Error().
				Err(refundErr).
				Str("account_id", accountID.Hex()).
				Int64("amount", total).
				Msg("order insert failed and refund did not commit")

			return domain.Order{}, 0, errorspkg.ErrInternal
		}

		return domain.Order{}, 0, errorspkg.ErrInternal
	}

	return order, account.Balance, nil
}

// History returns the account's orders, most recent first.
func (s *Service) History(ctx context.Context, accountID primitive.ObjectID) (domain.OrderIterator, error) {
	return s.orders.ListByAccount(ctx, accountID)
}
