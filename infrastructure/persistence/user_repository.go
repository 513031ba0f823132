package persistence

import (
	"context"
	"database/sql"

	"mood-playlist/domain/model"
	"mood-playlist/domain/repository"
)

// UserRepository implements user lookup over PostgreSQL
type UserRepository struct{ db *sql.DB }

func NewUserRepository(db *sql.DB) repository.IUser {
	return &UserRepository{db: db}
}

// GetByUserName returns the user matching the given user name
func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	var user model.User
	stmt, err := r.db.PrepareContext(ctx, `SELECT u.id, u.name, u.user_name, u.password, u.created_at, u.updated_at
	FROM public.user AS u
	WHERE u.user_name = $1`)
	if err != nil {
		return user, err
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, userName)
	err = row.Scan(&user.ID, &user.Name, &user.UserName, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}
