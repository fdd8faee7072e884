// Package report contains the reporting use cases. Each use case validates
// its input, loads a snapshot of the ledger through the adapter interfaces
// and delegates the number crunching to the analytics engine.
package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// Repositories bundles the read-side repositories the report use cases load
// their snapshots from.
type Repositories struct {
	Transactions adapter.TransactionRepository
	Accounts     adapter.AccountRepository
	Categories   adapter.CategoryRepository
	Labels       adapter.LabelRepository
	Budgets      adapter.BudgetRepository
	Planned      adapter.PlannedTransactionRepository
}

// snapshot is a point-in-time view of the ledger. The engine operates on it
// without touching the repositories again.
type snapshot struct {
	transactions []*entity.Transaction
	accounts     []*entity.Account
	categories   []*entity.Category
	labels       []*entity.Label
}

// loadSnapshot fans the four reads out concurrently and fails fast on the
// first repository error.
func loadSnapshot(ctx context.Context, repos Repositories) (*snapshot, error) {
	snap := &snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transactions, err := repos.Transactions.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		snap.transactions = transactions
		return nil
	})
	g.Go(func() error {
		accounts, err := repos.Accounts.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		snap.accounts = accounts
		return nil
	})
	g.Go(func() error {
		categories, err := repos.Categories.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		snap.categories = categories
		return nil
	})
	g.Go(func() error {
		labels, err := repos.Labels.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load labels: %w", err)
		}
		snap.labels = labels
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
