package models

// ImageCategory is the portfolio bucket an image belongs to. Lowercase on
// purpose: it names a gallery section, not a booking category.
type ImageCategory string

const (
	ImageCategoryAthletics ImageCategory = "athletics"
	ImageCategoryPortraits ImageCategory = "portraits"
)

func ValidImageCategory(c ImageCategory) bool {
	return c == ImageCategoryAthletics || c == ImageCategoryPortraits
}

// PortfolioImage is one gallery entry. Order drives ascending display
// sequence within a category; a nil Order sorts as 0. The column is named
// display_order because "order" is reserved in SQL.
type PortfolioImage struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	Src      string        `gorm:"uniqueIndex;not null" json:"src"`
	Alt      string        `gorm:"not null" json:"alt"`
	Category ImageCategory `gorm:"type:varchar(20);not null;index:idx_portfolio_category_order" json:"category"`
	Order    *int          `gorm:"column:display_order;index:idx_portfolio_category_order" json:"order,omitempty"`
}
