package models

import "time"

// Relation selects which toggled relation a call operates on.
type Relation string

const (
	RelationLike     Relation = "like"
	RelationFavorite Relation = "favorite"
)

// Like and Favorite are toggled binary relations between a user and a film.
// A row exists only while the relation is active: a negative toggle deletes
// the row instead of persisting a false flag. The composite unique index
// serializes concurrent toggles on the same (user, film) pair.

type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_user_film"`
	FilmID    int64     `json:"film_id" gorm:"not null;uniqueIndex:idx_like_user_film"`
	IsLiked   bool      `json:"is_liked" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Film Film `json:"film,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}

type Favorite struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_film"`
	FilmID     int64     `json:"film_id" gorm:"not null;uniqueIndex:idx_favorite_user_film"`
	IsFavorite bool      `json:"is_favorite" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Film Film `json:"film,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
}

func (Favorite) TableName() string {
	return "favorites"
}
