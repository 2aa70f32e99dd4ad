package orderservice

import (
	"context"
	"testing"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/errorspkg"
	"github.com/andrisetia/tokojus/pkg/randompkg"
	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sliceIterator backs domain.OrderIterator with a fixed slice for tests.
type sliceIterator struct {
	orders  []domain.Order
	pos     int
	current domain.Order
	closed  bool
}

func (it *sliceIterator) Next(context.Context) bool {
	if it.pos >= len(it.orders) {
		return false
	}

	it.current = it.orders[it.pos]
	it.pos++

	return true
}

func (it *sliceIterator) Order() domain.Order { return it.current }

func (it *sliceIterator) Err() error { return nil }

func (it *sliceIterator) Close(context.Context) error {
	it.closed = true
	return nil
}

func TestPlaceOrder(t *testing.T) {
	t.Parallel()

	accountID := primitive.NewObjectID()
	username := randompkg.Username()

	// 2x Jus Jeruk (8000) + 1x Jus Mangga (10000) = 26000.
	selections := []domain.Selection{
		{Code: 1, Quantity: 2},
		{Code: 2, Quantity: 1},
	}

	wantItems := []domain.OrderItem{
		{Name: "Jus Jeruk", UnitPrice: 8_000, Quantity: 2, Subtotal: 16_000},
		{Name: "Jus Mangga", UnitPrice: 10_000, Quantity: 1, Subtotal: 10_000},
	}

	const wantTotal int64 = 26_000

	debitedAccount := domain.Account{
		ID:       accountID,
		Username: username,
		Balance:  domain.StartingBalance - wantTotal,
	}

	testCases := []struct {
		name        string
		selections  []domain.Selection
		buildStubs  func(orders *MockOrderRepo, accounts *MockAccountRepo)
		wantBalance int64
		wantError   error
	}{
		{
			name:       "OK",
			selections: selections,
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().
					Debit(gomock.Any(), gomock.Eq(accountID), gomock.Eq(wantTotal)).
					Times(1).
					Return(debitedAccount, nil)

				orders.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.Order{
						AccountID: accountID,
						Username:  username,
						Items:     wantItems,
						Total:     wantTotal,
					})).
					Times(1).
					DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
						order.ID = primitive.NewObjectID()
						return order, nil
					})
			},
			wantBalance: domain.StartingBalance - wantTotal,
		},
		{
			name:       "EmptyOrder",
			selections: nil,
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrEmptyOrder,
		},
		{
			name:       "UnknownMenuItem",
			selections: []domain.Selection{{Code: 99, Quantity: 1}},
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrUnknownMenuItem,
		},
		{
			name:       "InvalidQuantity",
			selections: []domain.Selection{{Code: 1, Quantity: 0}},
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrInvalidQuantity,
		},
		{
			// A quantity big enough to wrap the subtotal negative must be
			// rejected before any balance movement: a negative debit would
			// turn into a credit.
			name:       "QuantityTooLarge",
			selections: []domain.Selection{{Code: 1, Quantity: 1_200_000_000_000_000}},
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrQuantityTooLarge,
		},
		{
			name:       "InsufficientBalance",
			selections: selections,
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().
					Debit(gomock.Any(), gomock.Eq(accountID), gomock.Eq(wantTotal)).
					Times(1).
					Return(domain.Account{}, domain.ErrInsufficientBalance)

				orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrInsufficientBalance,
		},
		{
			name:       "InsertFailureRefundsDebit",
			selections: selections,
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().
					Debit(gomock.Any(), gomock.Eq(accountID), gomock.Eq(wantTotal)).
					Times(1).
					Return(debitedAccount, nil)

				orders.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Order{}, errorspkg.ErrInternal)

				accounts.EXPECT().
					TopUp(gomock.Any(), gomock.Eq(accountID), gomock.Eq(wantTotal)).
					Times(1).
					Return(domain.Account{ID: accountID, Balance: domain.StartingBalance}, nil)
			},
			wantError: errorspkg.ErrInternal,
		},
		{
			name:       "InsertAndRefundBothFail",
			selections: selections,
			buildStubs: func(orders *MockOrderRepo, accounts *MockAccountRepo) {
				accounts.EXPECT().
					Debit(gomock.Any(), gomock.Eq(accountID), gomock.Eq(wantTotal)).
					Times(1).
					Return(debitedAccount, nil)

				orders.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Order{}, errorspkg.ErrInternal)

				accounts.EXPECT().
					TopUp(gomock.Any(), gomock.Eq(accountID), gomock.Eq(wantTotal)).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			wantError: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orders := NewMockOrderRepo(ctrl)
			accounts := NewMockAccountRepo(ctrl)
			tc.buildStubs(orders, accounts)

			service := New(orders, accounts)

			order, balance, err := service.PlaceOrder(context.Background(), accountID, username, tc.selections)
			if err != tc.wantError {
				t.Fatalf("PlaceOrder() error = %v, want %v", err, tc.wantError)
			}

			if tc.wantError != nil {
				return
			}

			if balance != tc.wantBalance {
				t.Errorf("PlaceOrder() balance = %d, want %d", balance, tc.wantBalance)
			}

			ignoreID := cmpopts.IgnoreFields(domain.Order{}, "ID")

			want := domain.Order{
				AccountID: accountID,
				Username:  username,
				Items:     wantItems,
				Total:     wantTotal,
			}
			if !cmp.Equal(order, want, ignoreID) {
				t.Errorf("PlaceOrder() order = %+v, want %+v", order, want)
			}

			var itemsTotal int64
			for _, item := range order.Items {
				itemsTotal += item.Subtotal
			}

			if order.Total != itemsTotal {
				t.Errorf("order total %d != sum of subtotals %d", order.Total, itemsTotal)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	accountID := primitive.NewObjectID()

	want := []domain.Order{
		{ID: primitive.NewObjectID(), AccountID: accountID, Total: 26_000},
		{ID: primitive.NewObjectID(), AccountID: accountID, Total: 8_000},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := NewMockOrderRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)

	orders.EXPECT().
		ListByAccount(gomock.Any(), gomock.Eq(accountID)).
		Times(1).
		Return(&sliceIterator{orders: want}, nil)

	service := New(orders, accounts)

	iter, err := service.History(context.Background(), accountID)
	if err != nil {
		t.Fatalf("History() returned error: %v", err)
	}

	ctx := context.Background()

	var got []domain.Order
	for iter.Next(ctx) {
		got = append(got, iter.Order())
	}

	if err := iter.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}

	if !cmp.Equal(got, want) {
		t.Errorf("History() = %+v, want %+v", got, want)
	}
}
