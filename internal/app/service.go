package app

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"hungergames/internal/config"
	"hungergames/internal/domain"
	"hungergames/internal/ports"
)

var (
	ErrAlreadyRunning = errors.New("a simulation is already running for this channel")
	ErrTooFewPlayers  = errors.New("not enough eligible players to start")
)

// Service orchestrates simulations. One instance serves every channel; each
// started simulation runs to completion on its own goroutine, and sessions
// share nothing but the match store.
type Service struct {
	roster    ports.RosterPort
	store     ports.MatchStorePort
	announcer ports.AnnouncerPort
	log       ports.Logger
	rng       *rand.Rand

	// Tuning, initialized from config. Tests override these directly.
	MaxPlayers int
	MaxRounds  int
	TurnDelay  time.Duration

	mu      sync.Mutex
	running map[string]bool
}

// NewService constructs the orchestrator with the required ports.
// log may be nil to discard; rng may be nil to seed each session from the
// clock, or non-nil to make every session draw from one deterministic source.
func NewService(roster ports.RosterPort, store ports.MatchStorePort, announcer ports.AnnouncerPort, log ports.Logger, rng *rand.Rand) *Service {
	if log == nil {
		log = noopLogger{}
	}
	return &Service{
		roster:     roster,
		store:      store,
		announcer:  announcer,
		log:        log,
		rng:        rng,
		MaxPlayers: config.MaxPlayers(),
		MaxRounds:  config.MaxRounds(),
		TurnDelay:  config.TurnDelay(),
		running:    make(map[string]bool),
	}
}

// StartSimulation validates a start request and, when it can proceed, kicks
// off the round loop asynchronously. Refusals produce no announcement and no
// store write; the returned error exists for the command layer's logs, not
// for the players.
func (s *Service) StartSimulation(ctx context.Context, channelID string) error {
	s.mu.Lock()
	if s.running[channelID] {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running[channelID] = true
	s.mu.Unlock()

	started := false
	defer func() {
		if !started {
			s.release(channelID)
		}
	}()

	// A record left active by another process also refuses the start.
	// Read errors fall through: no record on file means no running game.
	if rec, err := s.store.Get(ctx, channelID); err == nil && rec != nil && rec.Active {
		return ErrAlreadyRunning
	}

	members, err := s.roster.ListEligibleMembers(ctx, channelID)
	if err != nil {
		s.log.Warn("StartSimulation: roster lookup failed for %s: %v", channelID, err)
		members = nil
	}
	if len(members) > s.MaxPlayers {
		members = members[:s.MaxPlayers]
	}
	if len(members) < MinPlayersToStart {
		return ErrTooFewPlayers
	}

	roster := make([]*domain.Tribute, 0, len(members))
	for _, m := range members {
		roster = append(roster, domain.NewTribute(m.UserID, displayName(m)))
	}
	sess := domain.NewSession(channelID, roster)

	s.post(ctx, channelID, newMatchAnnouncement(sess), false)

	record := ports.MatchRecord{
		Active:    true,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Set(ctx, channelID, record); err != nil {
		// Best effort: a lost record only disables external cancellation.
		s.log.Warn("StartSimulation: match record write failed for %s: %v", channelID, err)
	}

	started = true
	go s.run(sess)
	return nil
}

// CancelSimulation flips an existing active record to inactive. The running
// loop discovers the change at its next round boundary. Returns whether a
// cancellation actually took effect.
func (s *Service) CancelSimulation(ctx context.Context, channelID string) bool {
	rec, err := s.store.Get(ctx, channelID)
	if err != nil || rec == nil || !rec.Active {
		return false
	}
	rec.Active = false
	if err := s.store.Set(ctx, channelID, *rec); err != nil {
		s.log.Warn("CancelSimulation: match record write failed for %s: %v", channelID, err)
		return false
	}
	return true
}

// run drives the round loop to a terminal state. It owns the session
// exclusively and never returns an error: collaborator failures degrade to
// safe defaults so one session can never take down another.
func (s *Service) run(sess *domain.Session) {
	ctx := context.Background()
	defer s.release(sess.ChannelID)

	rng := s.sessionRNG()

	for sess.Round = 1; sess.Round <= s.MaxRounds; sess.Round++ {
		rec, err := s.store.Get(ctx, sess.ChannelID)
		if err != nil {
			s.log.Warn("run: match record read failed for %s: %v", sess.ChannelID, err)
		} else if rec != nil && !rec.Active {
			sess.Finish(domain.EndCancelled, nil)
			s.post(ctx, sess.ChannelID, cancelledAnnouncement(), true)
			return
		}

		s.post(ctx, sess.ChannelID, roundAnnouncement(sess), true)

		for _, t := range sess.Roster {
			if !t.Alive {
				continue
			}

			living := sess.Living()
			if len(living) == 1 {
				sess.Finish(domain.EndVictory, living[0])
				s.finish(ctx, sess)
				return
			}
			if len(living) == 0 {
				sess.Finish(domain.EndAllDied, nil)
				s.finish(ctx, sess)
				return
			}

			outcome := t.Act(rng, living)
			s.post(ctx, sess.ChannelID, outcomeAnnouncement(outcome), true)
		}
	}

	sess.Finish(domain.EndTimedOut, nil)
	s.finish(ctx, sess)
}

// finish announces the terminal outcome and retires the match record.
func (s *Service) finish(ctx context.Context, sess *domain.Session) {
	s.post(ctx, sess.ChannelID, endAnnouncement(sess), true)
	if err := s.store.Clear(ctx, sess.ChannelID); err != nil {
		s.log.Warn("finish: match record clear failed for %s: %v", sess.ChannelID, err)
	}
}

// post applies the pacing delay and delivers one announcement. Delivery
// failures are logged and absorbed.
func (s *Service) post(ctx context.Context, channelID string, a ports.Announcement, pace bool) {
	if pace && s.TurnDelay > 0 {
		time.Sleep(s.TurnDelay)
	}
	if _, err := s.announcer.Post(ctx, channelID, a); err != nil {
		s.log.Warn("post: announcement failed for %s: %v", channelID, err)
	}
}

func (s *Service) release(channelID string) {
	s.mu.Lock()
	delete(s.running, channelID)
	s.mu.Unlock()
}

// sessionRNG returns the shared deterministic source when one was injected,
// or a fresh clock-seeded source owned by a single session goroutine.
func (s *Service) sessionRNG() *rand.Rand {
	if s.rng != nil {
		return s.rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func displayName(m ports.PlayerRef) string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	if m.Username != "" {
		return m.Username
	}
	return m.UserID
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
