package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/model"
	"github.com/plugueplus/plugueplus-api/internal/queue"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	queue_publisher "github.com/plugueplus/plugueplus-api/internal/service"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// PostHandler serves the social feed: posts plus their likes and
// comments.  Like rows are written through the generic store so the
// fillable whitelist still applies; uniqueness of (user_id, post_id) is
// the database's job and a violation surfaces as a 400.
type PostHandler struct {
	Posts    *repository.Store[model.Post]
	Likes    *repository.Store[model.PostLike]
	Comments *repository.Store[model.PostComment]
	DB       *sqlx.DB
}

func NewPostHandler(posts *repository.Store[model.Post], likes *repository.Store[model.PostLike], comments *repository.Store[model.PostComment], db *sqlx.DB) *PostHandler {
	return &PostHandler{Posts: posts, Likes: likes, Comments: comments, DB: db}
}

func (h *PostHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, meta, err := h.Posts.Paginate(ctx, page, perPage)
	if err != nil {
		return err
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *PostHandler) Show(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	post, err := h.Posts.FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}
	if post == nil {
		return response.Error(c, http.StatusNotFound, "Post not found.", nil)
	}
	return response.Success(c, post, "")
}

func (h *PostHandler) Store(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"user_id": {validation.Required()},
		"content": {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Posts.Create(ctx, data)
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if post != nil {
		publishActivity(queue.ActivityPostCreated, post.UserID, post.ID)
	}
	return response.Created(c, post, "Post created.")
}

func (h *PostHandler) Destroy(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Post not found.", nil)
	}

	if _, err := h.Posts.Delete(ctx, id); err != nil {
		return err
	}
	return response.Success(c, nil, "Post removed.")
}

// Like inserts the join row and lets the unique constraint decide
// whether this user already liked the post.
func (h *PostHandler) Like(c echo.Context) error {
	postID := idParam(c)
	data := payload(c)

	userID, ok := data["user_id"]
	if !ok || userID == nil {
		return response.Error(c, http.StatusUnprocessableEntity, "user_id is required.",
			map[string][]string{"user_id": {"Required"}})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Likes.Create(ctx, repository.Fields{"user_id": userID, "post_id": postID}); err != nil {
		return response.Error(c, http.StatusBadRequest, "Could not like.",
			map[string][]string{"like": {err.Error()}})
	}

	publishActivity(queue.ActivityPostLiked, int64Of(userID), postID)
	return response.Success(c, nil, "Like recorded.")
}

// Unlike removes the join row by pair.  Deleting zero rows is still a
// success; removal is idempotent.
func (h *PostHandler) Unlike(c echo.Context) error {
	postID := idParam(c)
	data := payload(c)

	userID, ok := data["user_id"]
	if !ok || userID == nil {
		return response.Error(c, http.StatusUnprocessableEntity, "user_id is required.",
			map[string][]string{"user_id": {"Required"}})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.DB.ExecContext(ctx,
		"DELETE FROM post_likes WHERE user_id = ? AND post_id = ?", userID, postID); err != nil {
		return err
	}
	return response.Success(c, nil, "Like removed.")
}

func (h *PostHandler) Comment(c echo.Context) error {
	data := payload(c)
	data["post_id"] = idParam(c)

	errs := validation.Validate(data, validation.Rules{
		"post_id": {validation.Required()},
		"user_id": {validation.Required()},
		"comment": {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Comments.Create(ctx, data)
	if err != nil {
		return err
	}
	comment, err := h.Comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Created(c, comment, "Comment created.")
}

// ListComments lists one post's comments.  It windows its own query
// because the generic paginate has no WHERE support.
func (h *PostHandler) ListComments(c echo.Context) error {
	postID := idParam(c)
	page, perPage := pageParams(c)
	offset := (page - 1) * perPage

	ctx, cancel := reqCtx(c)
	defer cancel()

	var total int64
	if err := h.DB.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM post_comments WHERE post_id = ?", postID); err != nil {
		return err
	}

	rows := []model.PostComment{}
	if err := h.DB.Unsafe().SelectContext(ctx, &rows,
		"SELECT * FROM post_comments WHERE post_id = ? LIMIT ? OFFSET ?", postID, perPage, offset); err != nil {
		return err
	}

	meta := repository.Meta{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage(total, perPage),
	}
	return response.SuccessMeta(c, rows, "", meta)
}

// publishActivity fires a best-effort feed event.  Failures are logged
// inside the publisher and never fail the request.
func publishActivity(eventType string, userID, targetID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = queue_publisher.PublishActivity(ctx, queue.ActivityEvent{
		Type:       eventType,
		UserID:     userID,
		TargetID:   targetID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
