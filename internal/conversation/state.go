package conversation

// State is the position of a user inside the dialogue flow.
type State int

const (
	// SelectingAction is the initial state: the user is at the main menu.
	SelectingAction State = iota

	// Situation intake flow
	RecordingTopic
	RecordingSituation
	RecordingDesiredOutcome
	SelectingEmotions
	RatingMood
	ConfirmingSituation
	RatingAdvice

	// Journal flow
	WritingJournal
	TaggingEntry

	// Resolution flow, entered from the past-situations listing
	RecordingResolution
	WritingReflection
)

func (s State) String() string {
	switch s {
	case SelectingAction:
		return "selecting_action"
	case RecordingTopic:
		return "recording_topic"
	case RecordingSituation:
		return "recording_situation"
	case RecordingDesiredOutcome:
		return "recording_desired_outcome"
	case SelectingEmotions:
		return "selecting_emotions"
	case RatingMood:
		return "rating_mood"
	case ConfirmingSituation:
		return "confirming_situation"
	case RatingAdvice:
		return "rating_advice"
	case WritingJournal:
		return "writing_journal"
	case TaggingEntry:
		return "tagging_entry"
	case RecordingResolution:
		return "recording_resolution"
	case WritingReflection:
		return "writing_reflection"
	default:
		return "unknown"
	}
}

// Action is a symbolic main-menu action. Display labels map to actions
// only at the keyboard render/read boundary.
type Action int

const (
	ActionUnknown Action = iota
	ActionShareSituation
	ActionWriteJournal
	ActionViewProgress
	ActionGetAdvice
	ActionPastSituations
	ActionDailyReflection
)
