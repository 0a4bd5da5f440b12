package order

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem is one (item, quantity, price-at-order-time) entry. The price is
// copied from the catalog when the order is parsed and never refreshed.
type LineItem struct {
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Quantity int     `bson:"quantity"`
}

func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      int64              `bson:"userId"`
	Username    string             `bson:"username,omitempty"`
	Items       []LineItem         `bson:"items"`
	TotalAmount float64            `bson:"totalAmount"`
	Status      Status             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
	Notes       string             `bson:"notes,omitempty"`
}

// ShortID is the user-facing order reference: the first 8 hex characters of
// the ObjectID, uppercased. Status lookups accept it as an ID prefix.
func (o *Order) ShortID() string {
	return strings.ToUpper(o.ID.Hex()[:shortIDLen])
}

const shortIDLen = 8
