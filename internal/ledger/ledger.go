package ledger

const DefaultStartingBalance = 10000

// Ledger holds a single spendable balance. It is not safe for concurrent use.
type Ledger struct {
	availableMoney int
	debit          bool
}

type Option func(*Ledger)

// WithDebit makes successful withdrawals decrease the balance.
// Without it the balance only answers the funds check and never moves.
func WithDebit() Option {
	return func(l *Ledger) {
		l.debit = true
	}
}

func New(availableMoney int, opts ...Option) *Ledger {
	l := &Ledger{availableMoney: availableMoney}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Withdraw returns amount when the balance is strictly greater than it and 0
// otherwise. A withdrawal equal to the balance is refused.
func (l *Ledger) Withdraw(amount int) int {
	if amount <= 0 || l.availableMoney <= amount {
		return 0
	}

	if l.debit {
		l.availableMoney -= amount
	}

	return amount
}

func (l *Ledger) Balance() int {
	return l.availableMoney
}

func (l *Ledger) Debits() bool {
	return l.debit
}
