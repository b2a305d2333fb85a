package models

type Category struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title string `json:"title" gorm:"not null;size:200"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null;size:200"`

	// Associations
	Films []Film `json:"films,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

func (Category) TableName() string {
	return "categories"
}
