package whitebox_test

import (
	"errors"

	"github.com/anoideaopen/whitebox/core/reflectx"
)

var errInsufficientFunds = errors.New("insufficient funds")

type account struct {
	owner   string
	balance int64
	opened  bool
	history []int64
}

func newAccount() *account {
	return &account{opened: true}
}

func (a *account) deposit(amount int64) int64 {
	a.balance += amount
	a.history = append(a.history, amount)
	return a.balance
}

func (a *account) withdraw(amount int64) (int64, error) {
	if amount > a.balance {
		return a.balance, errInsufficientFunds
	}
	a.balance -= amount
	a.history = append(a.history, -amount)
	return a.balance, nil
}

func (a *account) rename(owner string) {
	a.owner = owner
}

func (a *account) isOpened() bool {
	return a.opened
}

// Owner is exported and needs no declaration.
func (a *account) Owner() string {
	return a.owner
}

func validOwner(owner string) bool {
	return owner != ""
}

func fee(amount int64) int64 {
	return amount / 100
}

var accountClass = reflectx.MustClass[account](
	reflectx.WithConstructor(newAccount),
	reflectx.WithMethod("deposit", (*account).deposit),
	reflectx.WithMethod("withdraw", (*account).withdraw),
	reflectx.WithMethod("rename", (*account).rename),
	reflectx.WithMethod("isOpened", (*account).isOpened),
	reflectx.WithStatic("validOwner", validOwner),
	reflectx.WithStatic("fee", fee),
)
