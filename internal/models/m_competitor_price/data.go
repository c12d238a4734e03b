package m_competitor_price

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

func BuildInsertMap(id, productID, companyName string, price, freight *big.Rat, customerRating spanner.NullNumeric, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColCompetitorPriceID: id,
		ColProductID:         productID,
		ColCompanyName:       companyName,
		ColPrice:             price,
		ColFreight:           freight,
		ColCustomerRating:    customerRating,
		ColCreatedAt:         createdAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
