package dto

import "github.com/murkotick/storefront-ledger-service/internal/app/product/domain"

// FromProduct snapshots an aggregate for responses.
func FromProduct(p *domain.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ProductID:       p.ID(),
		CustomerID:      p.CustomerID(),
		Name:            p.Name(),
		Description:     p.Description(),
		CostPrice:       p.CostPrice(),
		SellingPrice:    p.SellingPrice(),
		OfferPercentage: p.StoredOfferPercentage(),
		OfferPrice:      p.OfferPrice(),
		Quantity:        p.Quantity(),
		BatchID:         p.BatchID(),
		Category:        p.Category(),
		Weight:          p.Weight(),
		Images:          p.Images(),
		CustomerRating:  p.CustomerRating(),
		Expiry:          p.Expiry(),
		ManufactureDate: p.ManufactureDate(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// ToProduct rebuilds the aggregate from a read row.
func (d *ProductDTO) ToProduct() *domain.Product {
	return domain.ReconstructProduct(domain.ReconstructParams{
		NewProductParams: domain.NewProductParams{
			ID:              d.ProductID,
			CustomerID:      d.CustomerID,
			Name:            d.Name,
			Description:     d.Description,
			CostPrice:       d.CostPrice,
			SellingPrice:    d.SellingPrice,
			OfferPercentage: d.OfferPercentage,
			Quantity:        d.Quantity,
			BatchID:         d.BatchID,
			Category:        d.Category,
			Weight:          d.Weight,
			Images:          d.Images,
			CustomerRating:  d.CustomerRating,
			Expiry:          d.Expiry,
			ManufactureDate: d.ManufactureDate,
		},
		OfferPrice: d.OfferPrice,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	})
}

// FromCompetitorPrice snapshots a stored competitor quote.
func FromCompetitorPrice(c *domain.CompetitorPrice) *CompetitorPriceDTO {
	return &CompetitorPriceDTO{
		CompetitorPriceID: c.ID(),
		ProductID:         c.ProductID(),
		CompanyName:       c.CompanyName(),
		Price:             c.Price(),
		Freight:           c.Freight(),
		CustomerRating:    c.CustomerRating(),
		CreatedAt:         c.CreatedAt(),
	}
}
