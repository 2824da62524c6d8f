package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType distinguishes ledger rows.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is an append-only ledger row. Income rows are created as a side
// effect of order approval; expense rows are entered manually by the admin.
// The two types live in separate collections ("transactions" and "expenses")
// and are merged at read time.
type Transaction struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Description string              `bson:"description" json:"description"`
	Amount      int64               `bson:"amount" json:"amount"`
	Date        time.Time           `bson:"date" json:"date"`
	ClientID    *primitive.ObjectID `bson:"clientId,omitempty" json:"clientId,omitempty"`
}
