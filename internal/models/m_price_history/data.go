package m_price_history

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

func BuildInsertMap(productID, historyID string, price, offerPercentage *big.Rat, recordedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:       productID,
		ColHistoryID:       historyID,
		ColPrice:           price,
		ColOfferPercentage: offerPercentage,
		ColRecordedAt:      recordedAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
