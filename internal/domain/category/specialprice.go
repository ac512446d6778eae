package category

// SpecialPriceStatus tracks the lifecycle of a promotional code.
type SpecialPriceStatus string

const (
	SpecialPriceWaiting SpecialPriceStatus = "WAITING"
	SpecialPriceFree    SpecialPriceStatus = "FREE"
	SpecialPricePending SpecialPriceStatus = "PENDING"
	SpecialPriceTaken   SpecialPriceStatus = "TAKEN"
)

// SpecialPrice is a promotional-code entity attached to a category. This core
// only reads it for statistics.
type SpecialPrice struct {
	ID         uint               `json:"id"`
	CategoryID uint               `json:"category_id"`
	Code       string             `json:"code"`
	PriceMinor int64              `json:"price_minor"`
	Status     SpecialPriceStatus `json:"status"`
}
