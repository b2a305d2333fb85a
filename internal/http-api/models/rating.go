package models

import "time"

// Rating is one user's score for one film. The composite unique index is the
// safety net behind the create-once rule: a second rating attempt for the same
// (user, film) pair fails instead of overwriting.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_film"`
	FilmID    int64     `json:"film_id" gorm:"not null;uniqueIndex:idx_rating_user_film"`
	Score     float64   `json:"score" gorm:"type:decimal(4,2);not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Film Film `json:"film,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
