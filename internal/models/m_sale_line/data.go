package m_sale_line

import (
	"math/big"

	"cloud.google.com/go/spanner"
)

func BuildInsertMap(saleID string, lineNo int64, productID string, quantitySold int64, sellingPrice *big.Rat) map[string]interface{} {
	return map[string]interface{}{
		ColSaleID:       saleID,
		ColLineNo:       lineNo,
		ColProductID:    productID,
		ColQuantitySold: quantitySold,
		ColSellingPrice: sellingPrice,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
