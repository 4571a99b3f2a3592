package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CandidateRegistry supplies the records manual matching searches
// against. Implementations decide what the filter text matches on;
// propertyID narrows the search to one property when it is not Nil.
// Only candidates that are not yet matched are returned.
type CandidateRegistry interface {
	Search(kind CandidateKind, filter string, propertyID uuid.UUID) ([]Candidate, error)
	Find(kind CandidateKind, id uuid.UUID) (Candidate, error)
	MarkMatched(kind CandidateKind, id uuid.UUID) error
}

// AuditSink records committed matches. A match is only considered
// applied once Record has returned without error.
type AuditSink interface {
	Record(ctx context.Context, result MatchResult) error
}

// Matcher orchestrates both matching modes.
//
// The matched check-and-set runs under a per-transaction lock so two
// concurrent calls for the same transaction cannot both commit.
// Matching different transactions does not contend.
type Matcher struct {
	registry CandidateRegistry
	sink     AuditSink

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewMatcher(registry CandidateRegistry, sink AuditSink) *Matcher {
	return &Matcher{
		registry: registry,
		sink:     sink,
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// lock serializes matching per transaction ID.
func (m *Matcher) lock(id uuid.UUID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}

	return l
}

// MatchManually matches a transaction against one candidate the user
// picked. The full transaction amount is allocated to the candidate's
// property and category; the entry kind follows from the candidate
// variant.
//
// Returns ErrAlreadyMatched when the transaction already has a
// committed match and ErrCandidateNotFound when the candidate is not
// in the registry's current set.
func (m *Matcher) MatchManually(ctx context.Context, transaction *Transaction, kind CandidateKind, candidateID uuid.UUID) (MatchResult, error) {
	l := m.lock(transaction.ID)
	l.Lock()
	defer l.Unlock()

	if transaction.Matched {
		return MatchResult{}, ErrAlreadyMatched
	}

	candidate, err := m.registry.Find(kind, candidateID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("%w: %s", ErrCandidateNotFound, candidateID)
	}

	result := MatchResult{
		TransactionID: transaction.ID,
		Mode:          ModeManual,
		Allocations: []Allocation{
			{
				PropertyID: candidate.Property(),
				CategoryID: candidate.Category(),
				Kind:       candidate.Entry(),
				Amount:     transaction.Amount.Abs(),
			},
		},
		MatchedAt: time.Now().In(time.UTC),
	}

	result, err = m.commit(ctx, transaction, result)
	if err != nil {
		return MatchResult{}, err
	}

	// The candidate flag is bookkeeping for the next search, not part
	// of the committed match. A failure here must not undo the match.
	if err := m.registry.MarkMatched(kind, candidateID); err != nil {
		log.Error().
			Err(err).
			Str("candidate", candidateID.String()).
			Msg("candidate could not be marked as matched")
	}

	return result, nil
}

// MatchAutomatically runs the rule set against the transaction and
// allocates the amount according to the pooled actions.
//
// Returns ErrNoMatch when no enabled rule fires and surfaces the
// allocation validation errors unchanged.
func (m *Matcher) MatchAutomatically(ctx context.Context, transaction *Transaction, set RuleSet) (MatchResult, error) {
	l := m.lock(transaction.ID)
	l.Lock()
	defer l.Unlock()

	if transaction.Matched {
		return MatchResult{}, ErrAlreadyMatched
	}

	actions, fired := set.Evaluate(*transaction)
	if len(fired) == 0 {
		return MatchResult{}, ErrNoMatch
	}

	allocations, err := Allocate(*transaction, actions)
	if err != nil {
		return MatchResult{}, err
	}

	result := MatchResult{
		TransactionID: transaction.ID,
		Mode:          ModeAutomatic,
		Allocations:   allocations,
		MatchedAt:     time.Now().In(time.UTC),
	}

	return m.commit(ctx, transaction, result)
}

// commit flips the matched flag and records the result with the audit
// sink. The flag is rolled back when the sink fails: a match that was
// not audited was not applied.
func (m *Matcher) commit(ctx context.Context, transaction *Transaction, result MatchResult) (MatchResult, error) {
	transaction.Matched = true

	if err := m.sink.Record(ctx, result); err != nil {
		transaction.Matched = false
		return MatchResult{}, fmt.Errorf("%w: %w", ErrCommit, err)
	}

	return result, nil
}
