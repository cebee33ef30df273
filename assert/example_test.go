package assert_test

import (
	"errors"
	"fmt"

	"github.com/matklad/always-assert/assert"
)

type ledger struct {
	balance int64
}

var errTransactionRejected = errors.New("transaction rejected")

// apply commits a delta unless it would violate the ledger's balance
// invariant. A violation signifies a bug upstream, but rejecting the one
// transaction beats crashing the whole server.
func (l *ledger) apply(delta int64) error {
	next := l.balance + delta
	if assert.Neverf(next < 0, "ledger balance went negative: %d", next) {
		return errTransactionRejected
	}

	l.balance = next

	return nil
}

func ExampleNeverf() {
	l := &ledger{balance: 10}

	if err := l.apply(5); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(l.balance)
	// Output: 15
}

func ExampleAlwaysf() {
	english := "super app installed!"
	localized := localize(english)

	// We localized all the messages but this one slipped through the
	// cracks? Better to show the english one than to fail outright.
	if !assert.Alwaysf(localized != "", "missing localization for %q", english) {
		localized = english
	}

	fmt.Println(localized)
	// Output: super app instalado!
}

func localize(msg string) string {
	translations := map[string]string{
		"super app installed!": "super app instalado!",
	}

	return translations[msg]
}
