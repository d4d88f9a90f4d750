// Package entity defines the domain entities of the menu feature.
package entity

// MenuItem is a product on the coffee shop menu.
type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;index" json:"category"`
	IsSpecial   bool    `gorm:"not null;default:false" json:"isSpecial"`
}
