package api

import (
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/transactions"
)

// updateTransactionPayload is a create shaped payload with a permissive
// validation contract. Failures are reported per field rather than with
// the standard error shape
type updateTransactionPayload struct {
	Title  string   `json:"title"`
	Amount *float64 `json:"amount"`
	Type   string   `json:"type"`
}

// fieldError reports the first payload field that failed validation
type fieldError struct {
	field string
}

func (e *fieldError) Error() string {
	return "Invalid payload field: " + e.field
}

// validate checks fields in the payload declaration order and reports
// the first failing one
func (p *updateTransactionPayload) validate() *fieldError {
	if p.Title == "" {
		return &fieldError{field: "title"}
	}
	if p.Amount == nil {
		return &fieldError{field: "amount"}
	}
	if p.Type != string(transactions.TypeCredit) && p.Type != string(transactions.TypeDebit) {
		return &fieldError{field: "type"}
	}
	return nil
}
