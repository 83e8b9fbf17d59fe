package domain

// Category id doubles as the slug derived from the name.
type Category struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"not null;column:name" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Description string `gorm:"column:description" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
