package nakama

import (
	"context"
	"testing"

	"github.com/heroiclabs/nakama-common/rtapi"
	"github.com/heroiclabs/nakama-common/runtime"

	"hungergames/internal/ports"
)

type mockChannel struct {
	builds   int
	messages []map[string]interface{}
}

func (m *mockChannel) ChannelIdBuild(ctx context.Context, sender, target string, chanType runtime.ChannelType) (string, error) {
	m.builds++
	return "built." + target, nil
}

func (m *mockChannel) ChannelMessageSend(ctx context.Context, channelID string, content map[string]interface{}, senderID, senderUsername string, persist bool) (*rtapi.ChannelMessageAck, error) {
	m.messages = append(m.messages, content)
	return &rtapi.ChannelMessageAck{MessageId: "msg-1", ChannelId: channelID}, nil
}

func TestAnnouncerPost(t *testing.T) {
	nk := &mockChannel{}
	announcer := NewNakamaChannelAnnouncer(nk)

	id, err := announcer.Post(context.Background(), "room-1", ports.Announcement{
		Title:  "Round #1",
		Body:   "body",
		Fields: []ports.Field{{Name: "Alive", Value: "3"}},
		Footer: "footer",
		Tone:   ports.ToneGood,
	})
	if err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if id != "msg-1" {
		t.Fatalf("message id = %q", id)
	}

	if len(nk.messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(nk.messages))
	}
	content := nk.messages[0]
	if content["title"] != "Round #1" || content["body"] != "body" || content["footer"] != "footer" {
		t.Fatalf("content = %+v", content)
	}
	if content["tone"] != "good" {
		t.Fatalf("tone = %v", content["tone"])
	}
	fields, ok := content["fields"].([]interface{})
	if !ok || len(fields) != 1 {
		t.Fatalf("fields = %v", content["fields"])
	}
	field := fields[0].(map[string]interface{})
	if field["name"] != "Alive" || field["value"] != "3" {
		t.Fatalf("field = %v", field)
	}
}

func TestAnnouncerCachesChannelID(t *testing.T) {
	nk := &mockChannel{}
	announcer := NewNakamaChannelAnnouncer(nk)

	for i := 0; i < 3; i++ {
		if _, err := announcer.Post(context.Background(), "room-1", ports.Announcement{Title: "t"}); err != nil {
			t.Fatalf("Post error: %v", err)
		}
	}
	if nk.builds != 1 {
		t.Fatalf("channel id builds = %d, want 1", nk.builds)
	}
}

func TestRenderContentOmitsEmptyParts(t *testing.T) {
	content := renderContent(ports.Announcement{Title: "only a title"})
	if len(content) != 1 {
		t.Fatalf("content = %+v, want title only", content)
	}
	if content["title"] != "only a title" {
		t.Fatalf("title = %v", content["title"])
	}
}
