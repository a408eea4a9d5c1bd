package ports

import "context"

// PlayerRef identifies an eligible player returned by the roster provider.
type PlayerRef struct {
	UserID      string
	Username    string
	DisplayName string
}

// RosterPort enumerates the players eligible to enter a simulation.
type RosterPort interface {
	// ListEligibleMembers returns the eligible players for a channel in a
	// stable order. An empty result means a simulation cannot start.
	ListEligibleMembers(ctx context.Context, channelID string) ([]PlayerRef, error)
}
