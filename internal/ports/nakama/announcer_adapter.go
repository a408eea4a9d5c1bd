package nakama

import (
	"context"
	"fmt"
	"sync"

	"hungergames/internal/ports"

	"github.com/heroiclabs/nakama-common/rtapi"
	"github.com/heroiclabs/nakama-common/runtime"
)

// channelClient is the slice of runtime.NakamaModule the announcer needs.
type channelClient interface {
	ChannelIdBuild(ctx context.Context, sender, target string, chanType runtime.ChannelType) (string, error)
	ChannelMessageSend(ctx context.Context, channelID string, content map[string]interface{}, senderID, senderUsername string, persist bool) (*rtapi.ChannelMessageAck, error)
}

// NakamaChannelAnnouncer implements ports.AnnouncerPort by posting structured
// content to a room's chat channel as the system user.
type NakamaChannelAnnouncer struct {
	nk channelClient

	mu  sync.Mutex
	ids map[string]string // room name -> built channel id
}

// NewNakamaChannelAnnouncer creates a new channel announcer.
func NewNakamaChannelAnnouncer(nk channelClient) *NakamaChannelAnnouncer {
	return &NakamaChannelAnnouncer{
		nk:  nk,
		ids: make(map[string]string),
	}
}

// Post renders the announcement as a content map and sends it to the room's
// channel. Returns the delivered message id.
func (c *NakamaChannelAnnouncer) Post(ctx context.Context, channelID string, a ports.Announcement) (string, error) {
	id, err := c.resolveChannel(ctx, channelID)
	if err != nil {
		return "", err
	}

	ack, err := c.nk.ChannelMessageSend(ctx, id, renderContent(a), "", "", true)
	if err != nil {
		return "", fmt.Errorf("failed to send channel message: %w", err)
	}
	return ack.MessageId, nil
}

// resolveChannel builds and caches the Nakama channel id for a room name.
func (c *NakamaChannelAnnouncer) resolveChannel(ctx context.Context, room string) (string, error) {
	c.mu.Lock()
	id, ok := c.ids[room]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	id, err := c.nk.ChannelIdBuild(ctx, "", room, runtime.Room)
	if err != nil {
		return "", fmt.Errorf("failed to build channel id for room %q: %w", room, err)
	}

	c.mu.Lock()
	c.ids[room] = id
	c.mu.Unlock()
	return id, nil
}

// renderContent maps an announcement onto the message content clients render.
func renderContent(a ports.Announcement) map[string]interface{} {
	content := map[string]interface{}{
		"title": a.Title,
	}
	if a.Body != "" {
		content["body"] = a.Body
	}
	if len(a.Fields) > 0 {
		fields := make([]interface{}, 0, len(a.Fields))
		for _, f := range a.Fields {
			fields = append(fields, map[string]interface{}{
				"name":  f.Name,
				"value": f.Value,
			})
		}
		content["fields"] = fields
	}
	if a.Footer != "" {
		content["footer"] = a.Footer
	}
	if a.Tone != "" {
		content["tone"] = string(a.Tone)
	}
	return content
}

var _ ports.AnnouncerPort = (*NakamaChannelAnnouncer)(nil)
