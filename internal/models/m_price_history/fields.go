package m_price_history

// Field constants for the price_history table (interleaved in products).
const (
	TableName = "price_history"

	ColProductID       = "product_id"
	ColHistoryID       = "history_id"
	ColPrice           = "price"
	ColOfferPercentage = "offer_percentage"
	ColRecordedAt      = "recorded_at"
)
