package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// SendLongMessage sends a potentially long message, splitting it into
// parts that respect the configured length ceiling. The reply markup, if
// any, is attached to the last part so the keyboard lands under the end of
// the text.
func SendLongMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, maxLen int, replyMarkup models.ReplyMarkup) error {
	parts := SplitMessage(text, maxLen)

	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   part,
		}
		if replyMarkup != nil && i == len(parts)-1 {
			params.ReplyMarkup = replyMarkup
		}

		if _, err := b.SendMessage(ctx, params); err != nil {
			slog.Error("send message part", "error", err, "chat_id", chatID, "part", i)
			return fmt.Errorf("send message: %w", err)
		}
	}

	return nil
}
