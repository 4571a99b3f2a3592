// Package registry implements the candidate registry for manual
// matching on top of the database models.
package registry

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Registry searches and updates the candidate record tables. It
// implements reconcile.CandidateRegistry.
type Registry struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Search returns all unmatched candidates of the given kind whose
// descriptive text matches the filter. Matching is case-insensitive
// glob matching with the filter wrapped in wildcards, so "sunset"
// matches a candidate for "Sunset Apartments". An empty filter matches
// everything. A non-Nil propertyID narrows the search to one property.
func (r *Registry) Search(kind reconcile.CandidateKind, filter string, propertyID uuid.UUID) ([]reconcile.Candidate, error) {
	pattern := fmt.Sprintf("*%s*", strings.ToLower(filter))

	names, err := r.propertyNames()
	if err != nil {
		return nil, err
	}

	var candidates []reconcile.Candidate

	switch kind {
	case reconcile.CandidateRentPayment:
		var records []models.RentPayment
		err := r.open(propertyID).Find(&records).Error
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			if glob.Glob(pattern, searchText(names, record.PropertyID, record.Amount.String())) {
				candidates = append(candidates, record.Reconcile())
			}
		}

	case reconcile.CandidateExpense:
		var records []models.Expense
		err := r.open(propertyID).Find(&records).Error
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			if glob.Glob(pattern, searchText(names, record.PropertyID, record.Amount.String())) {
				candidates = append(candidates, record.Reconcile())
			}
		}

	case reconcile.CandidateSecurityDeposit:
		var records []models.SecurityDeposit
		err := r.open(propertyID).Find(&records).Error
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			if glob.Glob(pattern, searchText(names, record.PropertyID, record.Amount.String())) {
				candidates = append(candidates, record.Reconcile())
			}
		}

	case reconcile.CandidateOtherIncome:
		query := r.db.Where("matched = ?", false)
		if propertyID != uuid.Nil {
			query = query.Where("property_id = ?", propertyID)
		}

		var records []models.OtherIncome
		err := query.Find(&records).Error
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			text := searchText(names, record.PropertyID, record.Amount.String()) + " " + strings.ToLower(record.Description)
			if glob.Glob(pattern, text) {
				candidates = append(candidates, record.Reconcile())
			}
		}

	default:
		return nil, fmt.Errorf("%w candidate kind", models.ErrResourceNotFound)
	}

	return candidates, nil
}

// Find returns the unmatched candidate with the given ID. Records that
// are already matched are not part of the candidate set anymore.
func (r *Registry) Find(kind reconcile.CandidateKind, id uuid.UUID) (reconcile.Candidate, error) {
	switch kind {
	case reconcile.CandidateRentPayment:
		var record models.RentPayment
		err := r.db.Where("status != ?", models.CandidateStatusMatched).First(&record, id).Error
		if err != nil {
			return nil, err
		}
		return record.Reconcile(), nil

	case reconcile.CandidateExpense:
		var record models.Expense
		err := r.db.Where("status != ?", models.CandidateStatusMatched).First(&record, id).Error
		if err != nil {
			return nil, err
		}
		return record.Reconcile(), nil

	case reconcile.CandidateSecurityDeposit:
		var record models.SecurityDeposit
		err := r.db.Where("status != ?", models.CandidateStatusMatched).First(&record, id).Error
		if err != nil {
			return nil, err
		}
		return record.Reconcile(), nil

	case reconcile.CandidateOtherIncome:
		var record models.OtherIncome
		err := r.db.Where("matched = ?", false).First(&record, id).Error
		if err != nil {
			return nil, err
		}
		return record.Reconcile(), nil
	}

	return nil, fmt.Errorf("%w candidate kind", models.ErrResourceNotFound)
}

// MarkMatched settles the candidate so it no longer shows up in
// searches.
func (r *Registry) MarkMatched(kind reconcile.CandidateKind, id uuid.UUID) error {
	switch kind {
	case reconcile.CandidateRentPayment:
		return r.settle(&models.RentPayment{}, id)
	case reconcile.CandidateExpense:
		return r.settle(&models.Expense{}, id)
	case reconcile.CandidateSecurityDeposit:
		return r.settle(&models.SecurityDeposit{}, id)
	case reconcile.CandidateOtherIncome:
		return r.db.Model(&models.OtherIncome{}).Where("id = ?", id).Update("matched", true).Error
	}

	return fmt.Errorf("%w candidate kind", models.ErrResourceNotFound)
}

// open builds a query for unmatched status-carrying candidate records.
func (r *Registry) open(propertyID uuid.UUID) *gorm.DB {
	query := r.db.Where("status != ?", models.CandidateStatusMatched)
	if propertyID != uuid.Nil {
		query = query.Where("property_id = ?", propertyID)
	}

	return query
}

func (r *Registry) settle(model any, id uuid.UUID) error {
	return r.db.Model(model).Where("id = ?", id).Update("status", models.CandidateStatusMatched).Error
}

// propertyNames loads the lowercased property names once per search so
// candidate rows do not trigger one lookup each.
func (r *Registry) propertyNames() (map[uuid.UUID]string, error) {
	var properties []models.Property
	err := r.db.Find(&properties).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(properties))
	for _, property := range properties {
		names[property.ID] = strings.ToLower(property.Name)
	}

	return names, nil
}

// searchText builds the lowercased text the filter is matched against:
// the property name plus the candidate amount.
func searchText(names map[uuid.UUID]string, propertyID uuid.UUID, amount string) string {
	return names[propertyID] + " " + strings.ToLower(amount)
}
