package repository

import (
	"context"
	"fmt"

	"github.com/alder-apps/growthbot/internal/domain"
)

const userColumns = `id, telegram_id, first_name, username, created_at, last_active`

func (q *Queries) GetUserByTelegramID(ctx context.Context, telegramID int64) (domain.User, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)

	var u domain.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.Username, &u.CreatedAt, &u.LastActive)
	return u, err
}

func (q *Queries) CreateUser(ctx context.Context, telegramID int64, firstName, username string) (domain.User, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO users (telegram_id, first_name, username)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		telegramID, firstName, username)

	var u domain.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.Username, &u.CreatedAt, &u.LastActive)
	return u, err
}

// TouchUser refreshes last_active and keeps the display name current.
func (q *Queries) TouchUser(ctx context.Context, id int64, firstName, username string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET last_active = now(), first_name = $2, username = $3 WHERE id = $1`,
		id, firstName, username)
	if err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

func (q *Queries) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := q.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.Username, &u.CreatedAt, &u.LastActive); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
