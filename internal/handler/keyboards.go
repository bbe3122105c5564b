package handler

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/alder-apps/growthbot/internal/conversation"
	tg "github.com/alder-apps/growthbot/internal/telegram"
)

// Display labels carry decoration; dispatch always goes through symbolic
// actions and plain identifiers. This file is the only place labels and
// identifiers meet.

type menuItem struct {
	label  string
	action conversation.Action
}

var menuItems = []menuItem{
	{"Share a Situation 💭", conversation.ActionShareSituation},
	{"Write in Journal 📝", conversation.ActionWriteJournal},
	{"View Progress 📊", conversation.ActionViewProgress},
	{"Get AI Advice 🤖", conversation.ActionGetAdvice},
	{"Past Situations 📚", conversation.ActionPastSituations},
	{"Daily Reflection ✨", conversation.ActionDailyReflection},
}

func actionForLabel(label string) conversation.Action {
	for _, item := range menuItems {
		if item.label == label {
			return item.action
		}
	}
	return conversation.ActionUnknown
}

var emotionLabels = map[string]string{
	"Anxious":      "Anxious 😰",
	"Overwhelmed":  "Overwhelmed 😫",
	"Frustrated":   "Frustrated 😤",
	"Sad":          "Sad 😢",
	"Angry":        "Angry 😠",
	"Disappointed": "Disappointed 😞",
	"Confused":     "Confused 😕",
	"Hopeful":      "Hopeful 🌟",
	"Motivated":    "Motivated 💪",
	"Calm":         "Calm 😌",
}

var tagLabels = map[string]string{
	"Personal Growth": "Personal Growth 🌱",
	"Reflection":      "Reflection 🤔",
	"Achievement":     "Achievement 🏆",
	"Challenge":       "Challenge 💪",
	"Learning":        "Learning 📚",
	"Gratitude":       "Gratitude 🙏",
	"Goal Setting":    "Goal Setting 🎯",
	"Self-Care":       "Self-Care 💝",
	"Breakthrough":    "Breakthrough 💡",
}

var moodLabels = map[int]string{
	1:  "Very Low 😢",
	2:  "Low 😞",
	3:  "Somewhat Low 😕",
	4:  "Below Average 😐",
	5:  "Neutral 😶",
	6:  "Slightly Good 🙂",
	7:  "Good 😊",
	8:  "Very Good 😃",
	9:  "Excellent 😄",
	10: "Amazing 🌟",
}

func mainMenuKeyboard() *models.ReplyKeyboardMarkup {
	rows := make([][]string, 0, len(menuItems))
	for _, item := range menuItems {
		rows = append(rows, []string{item.label})
	}
	return tg.ReplyKeyboard(rows...)
}

// emotionsKeyboard lays out the palette two per row with a Done button.
func emotionsKeyboard() *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	options := conversation.EmotionOptions
	for i := 0; i < len(options); i += 2 {
		var row []models.InlineKeyboardButton
		for _, emotion := range options[i:min(i+2, len(options))] {
			row = append(row, tg.InlineButton(emotionLabels[emotion], "emo_"+emotion))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tg.ButtonRow(tg.InlineButton("Done ✅", "emo_done")))
	return tg.InlineKeyboard(rows...)
}

func moodKeyboard() *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for rating := 1; rating <= 10; rating += 2 {
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(fmt.Sprintf("%d - %s", rating, moodLabels[rating]), fmt.Sprintf("mood_%d", rating)),
			tg.InlineButton(fmt.Sprintf("%d - %s", rating+1, moodLabels[rating+1]), fmt.Sprintf("mood_%d", rating+1)),
		))
	}
	return tg.InlineKeyboard(rows...)
}

func confirmationKeyboard() *models.InlineKeyboardMarkup {
	return tg.InlineKeyboard(tg.ButtonRow(
		tg.InlineButton("Yes ✅", "confirm_yes"),
		tg.InlineButton("No ❌", "confirm_no"),
	))
}

func adviceRatingKeyboard() *models.InlineKeyboardMarkup {
	return tg.InlineKeyboard(tg.ButtonRow(
		tg.InlineButton("Helpful 👍", "rate_helpful"),
		tg.InlineButton("Not Helpful 👎", "rate_nothelpful"),
	))
}

// tagsKeyboard lays out journal tags three per row with a Done button.
func tagsKeyboard() *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	options := conversation.JournalTagOptions
	for i := 0; i < len(options); i += 3 {
		var row []models.InlineKeyboardButton
		for _, tag := range options[i:min(i+3, len(options))] {
			row = append(row, tg.InlineButton(tagLabels[tag], "tag_"+tag))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tg.ButtonRow(tg.InlineButton("Done ✅", "tag_done")))
	return tg.InlineKeyboard(rows...)
}
