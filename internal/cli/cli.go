// Package cli manages the interactive console delivery layer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/internal/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountService provides service layer interface needed by the console.
//
//go:generate mockgen -source cli.go -destination cli_mock.go -package cli
type AccountService interface {
	Register(ctx context.Context, username, password string) (domain.Account, error)
	CheckPassword(ctx context.Context, username, password string) (domain.Account, error)
	Balance(ctx context.Context, accountID primitive.ObjectID) (int64, error)
	TopUp(ctx context.Context, accountID primitive.ObjectID, amount int64) (int64, error)
}

// OrderService provides order operations needed by the console.
type OrderService interface {
	PlaceOrder(ctx context.Context, accountID primitive.ObjectID, username string, selections []domain.Selection) (domain.Order, int64, error)
	History(ctx context.Context, accountID primitive.ObjectID) (domain.OrderIterator, error)
}

// errNotANumber indicates free text that did not parse as an integer.
var errNotANumber = errors.New("input must be a number")

// App runs the interactive menu loop.
type App struct {
	in       *bufio.Scanner
	out      io.Writer
	logger   zerolog.Logger
	accounts AccountService
	orders   OrderService
	sessions *session.Manager
}

// New returns the console app.
func New(in io.Reader, out io.Writer, logger zerolog.Logger, as AccountService, ors OrderService) *App {
	return &App{
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
		accounts: as,
		orders:   ors,
		sessions: session.NewManager(),
	}
}

// Run drives the main menu until exit is chosen or input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		a.printMainMenu()

		choice, err := a.promptInt("Select menu: ")
		if err != nil {
			if errors.Is(err, errNotANumber) {
				a.printf("Input must be a number.\n\n")
				continue
			}

			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if choice == exitChoice {
			a.printf("\nThank you for visiting the juice shop!\n")
			return nil
		}

		if err := a.dispatch(a.commandContext(ctx, choice), choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
	}
}

const (
	registerChoice = 1
	loginChoice    = 2
	orderChoice    = 3
	balanceChoice  = 4
	logoutChoice   = 5
	topUpChoice    = 6
	historyChoice  = 7
	exitChoice     = 0
)

func (a *App) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case registerChoice:
		return a.register(ctx)
	case loginChoice:
		return a.login(ctx)
	case orderChoice:
		return a.placeOrder(ctx)
	case balanceChoice:
		return a.checkBalance(ctx)
	case logoutChoice:
		return a.logout(ctx)
	case topUpChoice:
		return a.topUp(ctx)
	case historyChoice:
		return a.listHistory(ctx)
	default:
		a.printf("Unknown menu option.\n\n")
		return nil
	}
}

// commandContext seeds the context with a logger tagged per command, so the
// service layers can log through zerolog.Ctx.
func (a *App) commandContext(ctx context.Context, choice int) context.Context {
	l := a.logger.With().
		Str("command_id", uuid.NewString()).
		Int("menu_choice", choice).
		Logger()

	return l.WithContext(ctx)
}

func (a *App) printMainMenu() {
	a.printf("========================================\n")
	a.printf("            JUICE SHOP POS\n")
	a.printf("========================================\n")
	a.printf("1. Register\n")
	a.printf("2. Login\n")
	a.printf("3. Order juice\n")
	a.printf("4. Check balance\n")
	a.printf("5. Logout\n")
	a.printf("6. Top up balance\n")
	a.printf("7. Transaction history\n")
	a.printf("0. Exit\n")
	a.printf("========================================\n")
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine prompts and reads one trimmed line. Returns io.EOF when the
// input stream ends.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(a.in.Text()), nil
}

// promptInt prompts and parses one integer from free text.
func (a *App) promptInt(prompt string) (int, error) {
	line, err := a.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errNotANumber
	}

	return n, nil
}
