package cli

import (
	"context"
	"errors"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/currencypkg"
)

// timeLayout renders creation timestamps as DD-MM-YYYY HH:MM:SS local time.
const timeLayout = "02-01-2006 15:04:05"

func (a *App) register(ctx context.Context) error {
	a.printf("\n========================================\n")
	a.printf("              REGISTER\n")
	a.printf("========================================\n")

	username, err := a.readLine("Enter username: ")
	if err != nil {
		return err
	}

	password, err := a.readLine("Enter password: ")
	if err != nil {
		return err
	}

	account, err := a.accounts.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			a.printf("Username and password must not be empty!\n\n")
		case errors.Is(err, domain.ErrUsernameAlreadyExists):
			a.printf("Username already taken. Try another one.\n\n")
		default:
			a.printf("Something went wrong. Try again later.\n\n")
		}

		return nil
	}

	a.printf("\nRegistered user '%s'\n", account.Username)
	a.printf("Starting balance: %s\n\n", currencypkg.Rupiah(account.Balance))

	return nil
}

func (a *App) login(ctx context.Context) error {
	if sess, ok := a.sessions.Current(); ok {
		a.printf("\nAlready logged in as: %s\n\n", sess.Username)
		return nil
	}

	a.printf("\n========================================\n")
	a.printf("                LOGIN\n")
	a.printf("========================================\n")

	username, err := a.readLine("Username: ")
	if err != nil {
		return err
	}

	password, err := a.readLine("Password: ")
	if err != nil {
		return err
	}

	account, err := a.accounts.CheckPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			a.printf("Wrong username or password.\n\n")
		} else {
			a.printf("Something went wrong. Try again later.\n\n")
		}

		return nil
	}

	sess := a.sessions.Start(account)

	a.printf("\nWelcome, %s!\n", sess.Username)
	a.printf("Your balance: %s\n\n", currencypkg.Rupiah(sess.Balance))

	return nil
}

func (a *App) logout(context.Context) error {
	sess, ok := a.sessions.Current()
	if !ok {
		a.printf("\nYou are not logged in.\n\n")
		return nil
	}

	a.sessions.Clear()
	a.printf("\nUser '%s' logged out.\n\n", sess.Username)

	return nil
}

func (a *App) printJuiceMenu() {
	a.printf("========================================\n")
	a.printf("              JUICE MENU\n")
	a.printf("========================================\n")

	for _, item := range domain.Menu() {
		a.printf("%d. %s - %s\n", item.Code, item.Name, currencypkg.Rupiah(item.Price))
	}

	a.printf("0. Done & pay\n")
	a.printf("========================================\n")
}

func (a *App) placeOrder(ctx context.Context) error {
	sess, ok := a.sessions.Current()
	if !ok {
		a.printf("\nYou must log in before ordering!\n\n")
		return nil
	}

	// Refresh the balance so a top up made elsewhere counts.
	balance, err := a.accounts.Balance(ctx, sess.AccountID)
	if err != nil {
		a.printf("Something went wrong. Try again later.\n\n")
		return nil
	}

	a.sessions.SetBalance(balance)

	var (
		selections   []domain.Selection
		runningTotal int64
	)

	for {
		a.printJuiceMenu()

		code, err := a.promptInt("Choose item (0 to finish): ")
		if err != nil {
			if errors.Is(err, errNotANumber) {
				a.printf("Input must be a number.\n\n")
				continue
			}

			return err
		}

		if code == domain.DoneCode {
			break
		}

		item, ok := domain.MenuItemByCode(code)
		if !ok {
			a.printf("Menu item not available!\n\n")
			continue
		}

		quantity, err := a.promptInt("Enter quantity: ")
		if err != nil {
			if errors.Is(err, errNotANumber) {
				a.printf("Quantity must be a number.\n\n")
				continue
			}

			return err
		}

		if quantity <= 0 {
			a.printf("Quantity must be greater than zero!\n\n")
			continue
		}

		if quantity > domain.MaxQuantity {
			a.printf("Quantity is too large!\n\n")
			continue
		}

		subtotal := item.Price * int64(quantity)
		selections = append(selections, domain.Selection{Code: code, Quantity: quantity})
		runningTotal += subtotal

		a.printf("Added %dx %s (subtotal: %s)\n", quantity, item.Name, currencypkg.Rupiah(subtotal))
		a.printf("Running total: %s\n\n", currencypkg.Rupiah(runningTotal))
	}

	if len(selections) == 0 {
		a.printf("\nYou did not order anything.\n\n")
		return nil
	}

	a.printf("\n========================================\n")
	a.printf("               RECEIPT\n")
	a.printf("========================================\n")

	for i, sel := range selections {
		item, _ := domain.MenuItemByCode(sel.Code)
		a.printf("%d. %s x%d = %s\n", i+1, item.Name, sel.Quantity, currencypkg.Rupiah(item.Price*int64(sel.Quantity)))
	}

	a.printf("----------------------------------------\n")
	a.printf("ORDER TOTAL  : %s\n", currencypkg.Rupiah(runningTotal))
	a.printf("YOUR BALANCE : %s\n", currencypkg.Rupiah(balance))

	_, newBalance, err := a.orders.PlaceOrder(ctx, sess.AccountID, sess.Username, selections)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			a.printf("\nInsufficient balance! Purchase cancelled.\n\n")
		} else {
			a.printf("\nSomething went wrong. Purchase cancelled.\n\n")
		}

		return nil
	}

	a.sessions.SetBalance(newBalance)

	a.printf("\nPurchase successful!\n")
	a.printf("Remaining balance: %s\n\n", currencypkg.Rupiah(newBalance))

	return nil
}

func (a *App) checkBalance(ctx context.Context) error {
	sess, ok := a.sessions.Current()
	if !ok {
		a.printf("\nYou are not logged in.\n\n")
		return nil
	}

	balance, err := a.accounts.Balance(ctx, sess.AccountID)
	if err != nil {
		a.printf("Something went wrong. Try again later.\n\n")
		return nil
	}

	a.sessions.SetBalance(balance)
	a.printf("\nYour current balance: %s\n\n", currencypkg.Rupiah(balance))

	return nil
}

func (a *App) topUp(ctx context.Context) error {
	sess, ok := a.sessions.Current()
	if !ok {
		a.printf("\nYou must log in to top up.\n\n")
		return nil
	}

	balance, err := a.accounts.Balance(ctx, sess.AccountID)
	if err != nil {
		a.printf("Something went wrong. Try again later.\n\n")
		return nil
	}

	a.sessions.SetBalance(balance)

	a.printf("\n========================================\n")
	a.printf("               TOP UP\n")
	a.printf("========================================\n")
	a.printf("Current balance: %s\n", currencypkg.Rupiah(balance))

	amount, err := a.promptInt("Enter top up amount: ")
	if err != nil {
		if errors.Is(err, errNotANumber) {
			a.printf("Amount must be a number!\n\n")
			return nil
		}

		return err
	}

	newBalance, err := a.accounts.TopUp(ctx, sess.AccountID, int64(amount))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			a.printf("Amount must be greater than zero!\n\n")
		} else {
			a.printf("Something went wrong. Try again later.\n\n")
		}

		return nil
	}

	a.sessions.SetBalance(newBalance)

	a.printf("\nTopped up %s\n", currencypkg.Rupiah(int64(amount)))
	a.printf("New balance: %s\n\n", currencypkg.Rupiah(newBalance))

	return nil
}

func (a *App) listHistory(ctx context.Context) error {
	sess, ok := a.sessions.Current()
	if !ok {
		a.printf("\nYou must log in to view transaction history.\n\n")
		return nil
	}

	a.printf("\n========================================\n")
	a.printf("      TRANSACTION HISTORY (%s)\n", sess.Username)
	a.printf("========================================\n")

	iter, err := a.orders.History(ctx, sess.AccountID)
	if err != nil {
		a.printf("Something went wrong. Try again later.\n\n")
		return nil
	}

	defer func() {
		_ = iter.Close(ctx)
	}()

	count := 0

	for iter.Next(ctx) {
		order := iter.Order()
		count++

		a.printf("\nTransaction #%d\n", count)
		a.printf("Date  : %s\n", order.CreatedAt.Local().Format(timeLayout))
		a.printf("Total : %s\n", currencypkg.Rupiah(order.Total))
		a.printf("Items :\n")

		for _, item := range order.Items {
			a.printf(" - %s x%d = %s\n", item.Name, item.Quantity, currencypkg.Rupiah(item.Subtotal))
		}

		a.printf("----------------------------------------\n")
	}

	if err := iter.Err(); err != nil {
		a.printf("Something went wrong while reading history.\n\n")
		return nil
	}

	if count == 0 {
		a.printf("No transactions yet.\n\n")
		return nil
	}

	a.printf("\nEnd of transaction history.\n\n")

	return nil
}
