package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"hungergames/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// presenceClient is the slice of runtime.NakamaModule the roster adapter needs.
type presenceClient interface {
	StreamUserList(mode uint8, subject, subcontext, label string, includeHidden, includeNotHidden bool) ([]runtime.Presence, error)
	UsersGetId(ctx context.Context, userIDs []string, facebookIDs []string) ([]*api.User, error)
}

// NakamaRosterAdapter implements ports.RosterPort over a chat room's stream
// presences. Eligibility means online, visible, and not a provisioned bot
// account (bots carry is_bot metadata).
type NakamaRosterAdapter struct {
	nk presenceClient
}

// NewNakamaRosterAdapter creates a new roster adapter.
func NewNakamaRosterAdapter(nk presenceClient) *NakamaRosterAdapter {
	return &NakamaRosterAdapter{nk: nk}
}

// ListEligibleMembers returns the eligible players present in a room, in
// presence order.
func (a *NakamaRosterAdapter) ListEligibleMembers(ctx context.Context, channelID string) ([]ports.PlayerRef, error) {
	presences, err := a.nk.StreamUserList(streamModeChannel, "", "", channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list room presences: %w", err)
	}
	if len(presences) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(presences))
	userIDs := make([]string, 0, len(presences))
	for _, p := range presences {
		id := p.GetUserId()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		userIDs = append(userIDs, id)
	}

	users, err := a.nk.UsersGetId(ctx, userIDs, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room users: %w", err)
	}
	byID := make(map[string]*api.User, len(users))
	for _, u := range users {
		byID[u.Id] = u
	}

	members := make([]ports.PlayerRef, 0, len(userIDs))
	for _, id := range userIDs {
		u, ok := byID[id]
		if !ok || !u.Online || isBotUser(u) {
			continue
		}
		members = append(members, ports.PlayerRef{
			UserID:      u.Id,
			Username:    u.Username,
			DisplayName: u.DisplayName,
		})
	}
	return members, nil
}

// isBotUser reports whether the account metadata marks a provisioned bot.
func isBotUser(u *api.User) bool {
	if u.Metadata == "" {
		return false
	}
	var meta struct {
		IsBot bool `json:"is_bot"`
	}
	if err := json.Unmarshal([]byte(u.Metadata), &meta); err != nil {
		return false
	}
	return meta.IsBot
}

var _ ports.RosterPort = (*NakamaRosterAdapter)(nil)
