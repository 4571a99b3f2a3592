// Package audit persists committed match results.
package audit

import (
	"context"
	"fmt"

	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
	"gorm.io/gorm"
)

// Sink writes match results to the database. It implements
// reconcile.AuditSink.
//
// Record runs in a single database transaction: the match result with
// its allocations is inserted and the transaction's matched flag is
// flipped. The flag update is conditional on the flag still being
// unset, so even two processes racing on the same transaction commit
// at most one match. Both the conditional update and the unique index
// on the match result's transaction ID back the in-process lock held
// by the matcher.
type Sink struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Sink {
	return &Sink{db: db}
}

func (s *Sink) Record(ctx context.Context, result reconcile.MatchResult) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := models.MatchResult{
			TransactionID: result.TransactionID,
			Mode:          string(result.Mode),
			MatchedAt:     result.MatchedAt,
		}

		for _, allocation := range result.Allocations {
			record.Allocations = append(record.Allocations, models.Allocation{
				PropertyID: allocation.PropertyID,
				CategoryID: allocation.CategoryID,
				Kind:       string(allocation.Kind),
				Amount:     allocation.Amount,
			})
		}

		err := tx.Create(&record).Error
		if err != nil {
			return err
		}

		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND matched = ?", result.TransactionID, false).
			Update("matched", true)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: transaction is already matched", models.ErrTransactionMatched)
		}

		return nil
	})
}
