package domain

import "math/rand"

// MaxHunger is the number of rounds a tribute survives without eating.
// Reaching it kills the tribute at the start of its next turn.
const MaxHunger = 8

// TurnAction identifies what a tribute chose to do on a turn.
type TurnAction string

const (
	ActionNone        TurnAction = "none"
	ActionIdle        TurnAction = "idle"
	ActionLookForFood TurnAction = "look_for_food"
	ActionGrabWeapon  TurnAction = "grab_weapon"
	ActionKill        TurnAction = "kill"
)

// Percentile thresholds checked against the single per-turn roll (0..99).
const (
	scavengeSuccessRoll = 70 // roll >= 70 succeeds: food and weapon searches
	observeOthersRoll   = 50 // roll >= 50 makes the idle variant watch someone
)

// Tribute holds the state of one combatant in a simulation.
type Tribute struct {
	UserID     string
	Name       string
	Alive      bool
	LastAction TurnAction
	Kills      int
	Weapon     Weapon
	Hunger     int
}

// NewTribute creates a living, unarmed tribute for the given player.
func NewTribute(userID, name string) *Tribute {
	return &Tribute{
		UserID:     userID,
		Name:       name,
		Alive:      true,
		LastAction: ActionNone,
	}
}

// OutcomeKind identifies how a turn resolved, for narration.
type OutcomeKind string

const (
	OutcomeStarved         OutcomeKind = "starved"
	OutcomeWaited          OutcomeKind = "waited"
	OutcomeRan             OutcomeKind = "ran"
	OutcomeHid             OutcomeKind = "hid"
	OutcomeWatched         OutcomeKind = "watched"
	OutcomeProwled         OutcomeKind = "prowled"
	OutcomeFoundFood       OutcomeKind = "found_food"
	OutcomeWentHungry      OutcomeKind = "went_hungry"
	OutcomeFoundWeapon     OutcomeKind = "found_weapon"
	OutcomeFoundNothing    OutcomeKind = "found_nothing"
	OutcomeSelfElimination OutcomeKind = "self_elimination"
	OutcomeKilled          OutcomeKind = "killed"
)

// Outcome is the narration record produced by one resolved turn.
type Outcome struct {
	Kind  OutcomeKind
	Actor *Tribute

	// Watched is set for OutcomeWatched.
	Watched *Tribute

	// Killer and Victim are set for OutcomeKilled. The killer is not
	// necessarily the actor: a stronger target turns the attempt around.
	Killer *Tribute
	Victim *Tribute

	// ArmedAtStart reports whether the actor held a weapon entering the
	// turn, before any scavenging resolved.
	ArmedAtStart bool
}

// Act resolves a single turn for the tribute. living must be the current
// living set of the session and may include the actor itself.
//
// Starvation is checked before anything else: a tribute entering its turn at
// MaxHunger dies without acting and without updating LastAction.
func (t *Tribute) Act(rng *rand.Rand, living []*Tribute) Outcome {
	if t.Hunger >= MaxHunger {
		t.Alive = false
		return Outcome{Kind: OutcomeStarved, Actor: t}
	}
	t.Hunger++

	// One percent roll per turn, shared by every chance check.
	roll := rng.Intn(100)

	legal := t.legalActions()
	action := legal[rng.Intn(len(legal))]

	out := Outcome{Actor: t, ArmedAtStart: t.Weapon != WeaponNone}

	switch action {
	case ActionIdle:
		switch rng.Intn(4) {
		case 1:
			out.Kind = OutcomeRan
		case 2:
			out.Kind = OutcomeHid
		case 3:
			other := living[rng.Intn(len(living))]
			if roll >= observeOthersRoll && other != t {
				out.Kind = OutcomeWatched
				out.Watched = other
			} else {
				out.Kind = OutcomeProwled
			}
		default:
			out.Kind = OutcomeWaited
		}
	case ActionLookForFood:
		if roll >= scavengeSuccessRoll {
			// A successful find pins hunger at the maximum instead of
			// clearing it; starvation still waits one full cycle.
			t.Hunger = MaxHunger
			out.Kind = OutcomeFoundFood
		} else {
			out.Kind = OutcomeWentHungry
		}
	case ActionGrabWeapon:
		if roll >= scavengeSuccessRoll {
			// The draw includes WeaponNone: a "find" can be empty-handed.
			t.Weapon = AllWeapons[rng.Intn(len(AllWeapons))]
			out.Kind = OutcomeFoundWeapon
		} else {
			out.Kind = OutcomeFoundNothing
		}
	case ActionKill:
		target := living[rng.Intn(len(living))]
		if target == t {
			t.Kills++
			t.Alive = false
			out.Kind = OutcomeSelfElimination
			break
		}
		killer, victim := t, target
		if t.Weapon.Rank() < target.Weapon.Rank() {
			killer, victim = target, t
		}
		killer.Kills++
		victim.Alive = false
		out.Kind = OutcomeKilled
		out.Killer = killer
		out.Victim = victim
	}

	t.LastAction = action
	return out
}

// legalActions computes the actions the tribute may draw this turn:
// no immediate repeats, no weapon search while armed, no food search until
// hunger passes the halfway mark. Kill is never excluded by state, so the
// result is never empty.
func (t *Tribute) legalActions() []TurnAction {
	legal := make([]TurnAction, 0, 4)
	for _, a := range []TurnAction{ActionIdle, ActionLookForFood, ActionGrabWeapon, ActionKill} {
		switch {
		case a == t.LastAction:
		case a == ActionGrabWeapon && t.Weapon != WeaponNone:
		case a == ActionLookForFood && float64(t.Hunger) <= float64(MaxHunger)*0.5:
		default:
			legal = append(legal, a)
		}
	}
	return legal
}
