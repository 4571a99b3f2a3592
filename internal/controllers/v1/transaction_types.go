package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-15T00:00:00Z"` // Date of the transaction. Time is currently only used for sorting

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1850.00" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction. Positive for inflows, negative for outflows

	Description string `json:"description" example:"Rent Payment - Unit 303" default:""`                                                          // Description from the bank feed
	AccountID   string `json:"accountId" example:"acct-001" default:""`                                                                           // Identifier of the bank account at the institution
	AccountName string `json:"accountName" example:"Operating Checking" default:""`                                                               // Name of the bank account
	Category    string `json:"category" example:"Deposits" default:""`                                                                            // Free-text category from the bank feed
	ImportHash  string `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70" default:""`                   // The SHA256 hash of a unique combination of values to use in duplicate detection
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		AccountID:   editable.AccountID,
		AccountName: editable.AccountName,
		Category:    editable.Category,
		ImportHash:  editable.ImportHash,
	}
}

type TransactionLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`                 // The transaction itself
	Match          string `json:"match" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/match"`          // Manual matching endpoint for this transaction
	MatchAutomatic string `json:"matchAutomatic" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/match/automatic"` // Automatic matching endpoint for this transaction
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Matched bool             `json:"matched" example:"false"` // Whether a match result has been committed for this transaction
	Links   TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Description: model.Description,
			AccountID:   model.AccountID,
			AccountName: model.AccountName,
			Category:    model.Category,
			ImportHash:  model.ImportHash,
		},
		Matched: model.Matched,
		Links: TransactionLinks{
			Self:           fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Match:          fmt.Sprintf("%s/v1/transactions/%s/match", url, model.ID),
			MatchAutomatic: fmt.Sprintf("%s/v1/transactions/%s/match/automatic", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	if status(err) > currentStatus {
		currentStatus = status(err)
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date              time.Time       `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Description       string          `form:"description" filterField:"false"`       // Description contains this string
	AccountID         string          `form:"account"`                               // Account identifier at the institution
	Matched           bool            `form:"matched"`                               // Matched state
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}
