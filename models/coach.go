package models

type Mood string

const (
	MoodCalm       Mood = "calm"
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodThinking   Mood = "thinking"
	MoodSupportive Mood = "supportive"
	MoodProud      Mood = "proud"
	MoodWelcome    Mood = "welcome"
)

type CheckInOption struct {
	Text string `json:"text"`
	Val  string `json:"val"`
}

type CheckInStep struct {
	Question string          `json:"q"`
	Options  []CheckInOption `json:"opts"`
}

// CheckInFlow is a short scripted conversation with the mascot.
type CheckInFlow struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Mood  Mood          `json:"mood"`
	Steps []CheckInStep `json:"steps"`
}

type CoachReply struct {
	Msg  string `json:"msg"`
	Tip  string `json:"tip"`
	Mood Mood   `json:"mood"`
}

// CharacterMessage is what the mascot pops up with after an action.
type CharacterMessage struct {
	Mood    Mood   `json:"mood"`
	Message string `json:"message"`
	Coins   int    `json:"coins,omitempty"`
}
