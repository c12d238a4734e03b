package m_sale_line

// Field constants for the sale_lines table (interleaved in sales).
const (
	TableName = "sale_lines"

	ColSaleID       = "sale_id"
	ColLineNo       = "line_no"
	ColProductID    = "product_id"
	ColQuantitySold = "quantity_sold"
	ColSellingPrice = "selling_price"
)
