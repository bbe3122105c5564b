package conversation

// EmotionOptions is the fixed palette of selectable emotions, stored as
// plain identifiers. Decorated display labels live at the render boundary.
var EmotionOptions = []string{
	"Anxious",
	"Overwhelmed",
	"Frustrated",
	"Sad",
	"Angry",
	"Disappointed",
	"Confused",
	"Hopeful",
	"Motivated",
	"Calm",
}

// JournalTagOptions is the fixed palette of journal entry tags.
var JournalTagOptions = []string{
	"Personal Growth",
	"Reflection",
	"Achievement",
	"Challenge",
	"Learning",
	"Gratitude",
	"Goal Setting",
	"Self-Care",
	"Breakthrough",
}

// IsValidEmotion reports whether the identifier belongs to the palette.
func IsValidEmotion(emotion string) bool {
	for _, e := range EmotionOptions {
		if e == emotion {
			return true
		}
	}
	return false
}

// IsValidTag reports whether the identifier belongs to the tag palette.
func IsValidTag(tag string) bool {
	for _, t := range JournalTagOptions {
		if t == tag {
			return true
		}
	}
	return false
}
