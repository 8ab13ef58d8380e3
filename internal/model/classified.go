package model

import "time"

// ClassifiedAd mirrors the `classified_ads` table.  The Images slice is
// not a column: the classified show endpoint fills it with the ad's
// associated images before returning the ad.
type ClassifiedAd struct {
	ID          int64             `db:"id" json:"id"`
	UserID      int64             `db:"user_id" json:"user_id"`
	CategoryID  int64             `db:"category_id" json:"category_id"`
	Title       string            `db:"title" json:"title"`
	Description string            `db:"description" json:"description"`
	Price       float64           `db:"price" json:"price"`
	Status      *string           `db:"status" json:"status"`
	Views       *int64            `db:"views" json:"views"`
	ExpiresAt   *time.Time        `db:"expires_at" json:"expires_at"`
	Images      []ClassifiedImage `db:"-" json:"images,omitempty"`
}

// ClassifiedImage mirrors the `classified_images` table.
type ClassifiedImage struct {
	ID           int64  `db:"id" json:"id"`
	ClassifiedID int64  `db:"classified_id" json:"classified_id"`
	ImagePath    string `db:"image_path" json:"image_path"`
	IsMain       bool   `db:"is_main" json:"is_main"`
}

// ClassifiedFavorite is the join row behind the favorite/unfavorite
// endpoints.
type ClassifiedFavorite struct {
	UserID       int64 `db:"user_id" json:"user_id"`
	ClassifiedID int64 `db:"classified_id" json:"classified_id"`
}
