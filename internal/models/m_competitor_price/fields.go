package m_competitor_price

const (
	TableName = "competitor_prices"

	ColCompetitorPriceID = "competitor_price_id"
	ColProductID         = "product_id"
	ColCompanyName       = "company_name"
	ColPrice             = "price"
	ColFreight           = "freight"
	ColCustomerRating    = "customer_rating"
	ColCreatedAt         = "created_at"
)
