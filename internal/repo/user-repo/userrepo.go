package userrepo

import (
	"context"

	"donorhub/internal/domain"
	"donorhub/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, username, role, name FROM users WHERE username = $1", username).
		Scan(&user.ID, &user.Username, &user.Role, &user.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, username, role, name FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Username, &user.Role, &user.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Seed inserts the fixed identities, skipping any that already exist.
func (repo *Repository) Seed(ctx context.Context, users []domain.User) error {
	query := `
		INSERT INTO users (id, username, role, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	for _, user := range users {
		if _, err := repo.db.Exec(ctx, query, user.ID, user.Username, user.Role, user.Name); err != nil {
			zap.L().Error("can't seed user", zap.String("username", user.Username), zap.Error(err))
			return err
		}
	}
	return nil
}
