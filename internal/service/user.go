package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alder-apps/growthbot/internal/domain"
	"github.com/alder-apps/growthbot/internal/repository"
)

type UserService struct {
	queries *repository.Queries
}

func NewUserService(queries *repository.Queries) *UserService {
	return &UserService{queries: queries}
}

// FindOrCreate returns the user for the telegram id, creating one on first
// contact and refreshing last_active on every subsequent contact.
func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, firstName, username string) (*domain.User, bool, error) {
	user, err := s.queries.GetUserByTelegramID(ctx, telegramID)
	if err == nil {
		if err := s.queries.TouchUser(ctx, user.ID, firstName, username); err != nil {
			return nil, false, fmt.Errorf("touch user: %w", err)
		}
		return &user, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	user, err = s.queries.CreateUser(ctx, telegramID, firstName, username)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return &user, true, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.queries.ListUsers(ctx)
}
