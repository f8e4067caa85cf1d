package model

// Product is a single inventory record scoped to the user that created it.
// OwnerID is stamped by the server from the authenticated caller at creation
// time and never changes afterwards.
type Product struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Quantity int     `gorm:"default:0" json:"quantity" validate:"min=0"`
	Price    float64 `gorm:"default:0" json:"price" validate:"min=0"`
	OwnerID  string  `gorm:"type:varchar(255);index;not null" json:"ownerId"`
}
