package models

// DefaultCategoryNames is the category set seeded into an empty store.
var DefaultCategoryNames = []string{"Salary", "Food", "Rent", "Utilities", "Entertainment", "Other"}

// MaxCategoryNameLength bounds Category.Name.
const MaxCategoryNameLength = 80

// Category represents a transaction category
type Category struct {
	Base
	Name string `gorm:"size:80;uniqueIndex;not null" json:"name"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}
