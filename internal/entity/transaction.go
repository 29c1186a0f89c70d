package entity

import "time"

// TxKind distinguishes donation income from expense records.
type TxKind string

const (
	TxIncome  TxKind = "income"
	TxExpense TxKind = "expense"
)

// Transaction is a donation or expense record for data transfer between
// layers. Records are not owned by the client; they mirror API responses.
type Transaction struct {
	ID            string    `json:"id"`
	Kind          TxKind    `json:"kind"`
	SubcategoryID string    `json:"subcategory_id"`
	Title         string    `json:"title"`
	Amount        float64   `json:"amount"`
	CurrencyCode  string    `json:"currency_code"`
	TxDate        time.Time `json:"tx_date"`
	RecordedBy    string    `json:"recorded_by,omitempty"`
	Note          string    `json:"note,omitempty"`
}
