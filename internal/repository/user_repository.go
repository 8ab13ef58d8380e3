package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/plugueplus/plugueplus-api/internal/model"
)

// UserStore extends the generic store with the one user-specific lookup
// the auth flow needs.
type UserStore struct {
	*Store[model.User]
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{Store: NewStore[model.User](db, "users", userFillable)}
}

// FindByEmail fetches a user by normalized email.  Absence is reported
// as (nil, nil) like FindByID.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := s.reader.GetContext(ctx,
		&u, "SELECT * FROM users WHERE email = ? LIMIT 1", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
