package ports

import "context"

// Tone hints at how an announcement should be presented.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneGood    Tone = "good"
	ToneBad     Tone = "bad"
	ToneWarn    Tone = "warn"
)

// Field is a labelled value attached to an announcement.
type Field struct {
	Name  string
	Value string
}

// Announcement is one structured narration message.
type Announcement struct {
	Title  string
	Body   string
	Fields []Field
	Footer string
	Tone   Tone
}

// AnnouncerPort delivers narration to a channel. The returned message id may
// be used to update a previously posted message in place; callers must not
// depend on it for correctness.
type AnnouncerPort interface {
	Post(ctx context.Context, channelID string, a Announcement) (messageID string, err error)
}
