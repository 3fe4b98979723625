package model

// TransactionKind distinguishes credits from debits in an account's history.
// It is supplied by the account service alongside the signed amount; the
// client trusts both fields as given and never derives one from the other.
type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

type Transaction struct {
	ID          string
	Date        string
	Description string
	Amount      float64
	Kind        TransactionKind
}

// AccountSnapshot is the complete point-in-time view of one account:
// identity, balance and transaction history (newest first, as returned by
// the account service). It is replaced wholesale on every successful fetch.
type AccountSnapshot struct {
	AccountNumber string
	HolderName    string
	Balance       float64
	Transactions  []Transaction
}
