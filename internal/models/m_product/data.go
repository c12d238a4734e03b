package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation from column -> value pairs.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

// UpdateMutation builds a spanner.Update mutation for one product. values must
// not contain the key; productID is added here.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	row := make(map[string]interface{}, len(values)+1)
	for col, v := range values {
		row[col] = v
	}
	row[ColProductID] = productID
	return spanner.UpdateMap(TableName, row)
}

// PricingUpdateMap returns the columns written by a reprice. Callers pass
// NUMERIC values already converted for Spanner.
func PricingUpdateMap(sellingPrice, offerPercentage, offerPrice interface{}, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColSellingPrice:    sellingPrice,
		ColOfferPercentage: offerPercentage,
		ColOfferPrice:      offerPrice,
		ColUpdatedAt:       updatedAt,
	}
}
