package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/alder-apps/growthbot/internal/domain"
	"github.com/alder-apps/growthbot/internal/service"
)

type ctxKey string

const (
	UserKey    ctxKey = "user"
	NewUserKey ctxKey = "new_user"
)

// GetUser extracts the loaded user from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// IsNewUser reports whether the current update created the user record.
func IsNewUser(ctx context.Context) bool {
	created, ok := ctx.Value(NewUserKey).(bool)
	return ok && created
}

// UserLoader returns middleware that create-or-touches the user record on
// every inbound update and stores it in context.
func UserLoader(userService *service.UserService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User

			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			if from == nil {
				next(ctx, b, update)
				return
			}

			user, created, err := userService.FindOrCreate(ctx, from.ID, from.FirstName, from.Username)
			if err == nil && user != nil {
				ctx = context.WithValue(ctx, UserKey, user)
				ctx = context.WithValue(ctx, NewUserKey, created)
			}

			next(ctx, b, update)
		}
	}
}
