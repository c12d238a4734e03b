package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID       = "product_id"
	ColCustomerID      = "customer_id"
	ColName            = "product_name"
	ColDescription     = "description"
	ColCostPrice       = "cost_price"
	ColSellingPrice    = "selling_price"
	ColOfferPercentage = "offer_percentage"
	ColOfferPrice      = "offer_price"
	ColQuantity        = "quantity"
	ColBatchID         = "batch_id"
	ColCategory        = "category_name"
	ColWeight          = "weight"
	ColImages          = "images"
	ColCustomerRating  = "customer_rating"
	ColExpiry          = "expiry"
	ColManufactureDate = "manufacture_date"
	ColCreatedAt       = "created_at"
	ColUpdatedAt       = "updated_at"
)

// SelectColumns is the canonical column order used by read queries.
var SelectColumns = []string{
	ColProductID, ColCustomerID, ColName, ColDescription,
	ColCostPrice, ColSellingPrice, ColOfferPercentage, ColOfferPrice,
	ColQuantity, ColBatchID, ColCategory, ColWeight, ColImages,
	ColCustomerRating, ColExpiry, ColManufactureDate, ColCreatedAt, ColUpdatedAt,
}
