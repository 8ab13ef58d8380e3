package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/plugueplus/plugueplus-api/internal/model"
)

// Fillable whitelists, one per table.  Anything a client sends outside
// these lists never reaches SQL.
var (
	userFillable = []string{
		"name", "email", "password", "user_type",
		"phone", "city", "state", "vehicle_model",
	}
	categoryFillable = []string{"name", "icon", "description"}
	serviceFillable  = []string{
		"user_id", "category_id", "name", "description", "address", "city",
		"state", "zip_code", "phone", "email", "website", "opening_hours", "status",
	}
	chargingPointFillable = []string{
		"user_id", "name", "address", "city", "state", "latitude", "longitude",
		"connector_type", "power_kw", "cost_per_kwh", "availability",
		"opening_hours", "amenities",
	}
	reviewFillable          = []string{"user_id", "point_id", "service_id", "rating", "comment"}
	postFillable            = []string{"user_id", "content", "image_url"}
	postLikeFillable        = []string{"user_id", "post_id"}
	postCommentFillable     = []string{"post_id", "user_id", "comment"}
	classifiedAdFillable    = []string{"user_id", "category_id", "title", "description", "price", "status", "views", "expires_at"}
	classifiedImageFillable = []string{"classified_id", "image_path", "is_main"}
	classifiedFavFillable   = []string{"user_id", "classified_id"}
)

func NewCategoryStore(db *sqlx.DB) *Store[model.Category] {
	return NewStore[model.Category](db, "categories", categoryFillable)
}

func NewServiceStore(db *sqlx.DB) *Store[model.Service] {
	return NewStore[model.Service](db, "services", serviceFillable)
}

func NewChargingPointStore(db *sqlx.DB) *Store[model.ChargingPoint] {
	return NewStore[model.ChargingPoint](db, "charging_points", chargingPointFillable)
}

func NewReviewStore(db *sqlx.DB) *Store[model.Review] {
	return NewStore[model.Review](db, "reviews", reviewFillable)
}

func NewPostStore(db *sqlx.DB) *Store[model.Post] {
	return NewStore[model.Post](db, "posts", postFillable)
}

func NewPostLikeStore(db *sqlx.DB) *Store[model.PostLike] {
	return NewStore[model.PostLike](db, "post_likes", postLikeFillable)
}

func NewPostCommentStore(db *sqlx.DB) *Store[model.PostComment] {
	return NewStore[model.PostComment](db, "post_comments", postCommentFillable)
}

func NewClassifiedAdStore(db *sqlx.DB) *Store[model.ClassifiedAd] {
	return NewStore[model.ClassifiedAd](db, "classified_ads", classifiedAdFillable)
}

func NewClassifiedImageStore(db *sqlx.DB) *Store[model.ClassifiedImage] {
	return NewStore[model.ClassifiedImage](db, "classified_images", classifiedImageFillable)
}

func NewClassifiedFavoriteStore(db *sqlx.DB) *Store[model.ClassifiedFavorite] {
	return NewStore[model.ClassifiedFavorite](db, "classified_favorites", classifiedFavFillable)
}
