package domain

// Status is the lifecycle stage of a session.
type Status string

const (
	// StatusInProgress is the active state while the round loop runs.
	StatusInProgress Status = "in_progress"
	// StatusCancelled is reached only through an external stop request.
	StatusCancelled Status = "cancelled"
	// StatusEnded covers every natural terminal outcome.
	StatusEnded Status = "ended"
)

// EndReason explains why a session left StatusInProgress.
type EndReason string

const (
	EndVictory   EndReason = "victory"
	EndAllDied   EndReason = "all_died"
	EndTimedOut  EndReason = "timed_out"
	EndCancelled EndReason = "cancelled"
)

// Session is one running simulation, scoped to a channel id. It is owned by
// a single orchestrator goroutine; nothing here is safe for concurrent use.
type Session struct {
	ChannelID string
	Roster    []*Tribute // fixed order, fixed size, set at creation
	Round     int
	Status    Status
	EndReason EndReason
	Winner    *Tribute
}

// NewSession builds a session over the given roster. The roster order is the
// turn order for every round.
func NewSession(channelID string, roster []*Tribute) *Session {
	return &Session{
		ChannelID: channelID,
		Roster:    roster,
		Round:     1,
		Status:    StatusInProgress,
	}
}

// Living returns the tributes still alive, in roster order.
func (s *Session) Living() []*Tribute {
	living := make([]*Tribute, 0, len(s.Roster))
	for _, t := range s.Roster {
		if t.Alive {
			living = append(living, t)
		}
	}
	return living
}

// KillLeader returns the tribute with the most kills, dead or alive.
// Ties favor the earlier roster position.
func (s *Session) KillLeader() *Tribute {
	if len(s.Roster) == 0 {
		return nil
	}
	leader := s.Roster[0]
	for _, t := range s.Roster[1:] {
		if t.Kills > leader.Kills {
			leader = t
		}
	}
	return leader
}

// Finish records a terminal outcome. The first terminal transition wins;
// later calls are ignored.
func (s *Session) Finish(reason EndReason, winner *Tribute) {
	if s.Status != StatusInProgress {
		return
	}
	if reason == EndCancelled {
		s.Status = StatusCancelled
	} else {
		s.Status = StatusEnded
	}
	s.EndReason = reason
	s.Winner = winner
}
