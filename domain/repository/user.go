package repository

import (
	"context"

	"mood-playlist/domain/model"
)

// IUser resolves application users for authentication
type IUser interface {
	GetByUserName(ctx context.Context, userName string) (model.User, error)
}
