// Package gateway adapts the account service's wire responses into the
// client's domain model. It is a pure read: no caching, no mutation.
package gateway

import (
	"context"
	"fmt"

	"github.com/bank-system/teller/internal/api"
	"github.com/bank-system/teller/internal/model"
)

// AccountAPI is the slice of the transport the gateway needs.
type AccountAPI interface {
	GetAccount(ctx context.Context, accountNumber string) (*api.AccountResponse, error)
}

type AccountGateway struct {
	client AccountAPI
}

func NewAccountGateway(client AccountAPI) *AccountGateway {
	return &AccountGateway{client: client}
}

// FetchAccount retrieves the snapshot for accountNumber in exactly one
// round trip. Wire fields map verbatim; a missing transaction list is
// normalized to an empty slice so rendering never sees nil.
func (g *AccountGateway) FetchAccount(ctx context.Context, accountNumber string) (*model.AccountSnapshot, error) {
	if accountNumber == "" {
		return nil, fmt.Errorf("account number is required")
	}

	resp, err := g.client.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	transactions := make([]model.Transaction, 0, len(resp.Transactions))
	for _, tx := range resp.Transactions {
		transactions = append(transactions, model.Transaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
			Kind:        model.TransactionKind(tx.Type),
		})
	}

	return &model.AccountSnapshot{
		AccountNumber: resp.AccountNumber,
		HolderName:    resp.AccountHolderName,
		Balance:       resp.Balance,
		Transactions:  transactions,
	}, nil
}
