package service

import (
	"math/rand"
	"time"
)

var reflectionPrompts = []string{
	"What made you smile today? 😊",
	"What's something you learned about yourself recently? 🤔",
	"What's a challenge you're facing, and how are you handling it? 💪",
	"What are you grateful for today? 🙏",
	"What's something you'd like to improve about yourself? 🎯",
	"How did you take care of yourself today? 💝",
	"What's something you're looking forward to? 🌟",
	"What's a recent accomplishment you're proud of? 🏆",
	"How have your feelings evolved throughout the day? 🎭",
	"What's something that challenged your perspective recently? 🤯",
}

// ReflectionPrompt picks a random daily reflection prompt.
func ReflectionPrompt() string {
	return reflectionPrompts[rand.Intn(len(reflectionPrompts))]
}

// NextReflection returns the next occurrence of the configured wall-clock
// time strictly after now.
func NextReflection(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
