package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
)

type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]ledger.Transaction
}

func NewTransactionRepository(transactions []ledger.Transaction) *TransactionRepository {
	index := make(map[string]ledger.Transaction, len(transactions))
	for _, t := range transactions {
		index[t.ID] = t
	}

	return &TransactionRepository{transactions: index}
}

func (r *TransactionRepository) List(_ context.Context, status string) ([]ledger.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ledger.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	sortTransactions(out)

	return out, nil
}

func (r *TransactionRepository) ListByTeam(_ context.Context, teamID string) ([]ledger.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ledger.Transaction, 0)
	for _, t := range r.transactions {
		if t.TeamID == teamID {
			out = append(out, t)
		}
	}
	sortTransactions(out)

	return out, nil
}

func (r *TransactionRepository) GetByID(_ context.Context, transactionID string) (ledger.Transaction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transactions[transactionID]
	return t, ok, nil
}

func (r *TransactionRepository) Create(_ context.Context, t ledger.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions[t.ID] = t
	return nil
}

func (r *TransactionRepository) UpdateReview(_ context.Context, transactionID, status, reviewedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.transactions[transactionID]
	if !ok {
		return fmt.Errorf("transaction %s not found", transactionID)
	}
	t.Status = status
	t.ReviewedBy = reviewedBy
	r.transactions[transactionID] = t

	return nil
}

func (r *TransactionRepository) CountPending(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, t := range r.transactions {
		if t.Status == ledger.StatusPending {
			count++
		}
	}

	return count, nil
}

func sortTransactions(out []ledger.Transaction) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
}
