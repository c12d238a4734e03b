package m_sale

// Field constants for the sales table.
const (
	TableName = "sales"

	ColSaleID             = "sale_id"
	ColCustomerID         = "customer_id"
	ColUserID             = "user_id"
	ColStoreID            = "store_id"
	ColTotalAmount        = "total_amount"
	ColCumulativeDiscount = "cumulative_discount"
	ColFreightPrice       = "freight_price"
	ColPaymentType        = "payment_type"
	ColSaleType           = "sale_type"
	ColSaleDate           = "sale_date"
	ColAddress            = "address"
	ColCreatedAt          = "created_at"
)
