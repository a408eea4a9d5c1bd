package app

import (
	"fmt"

	"hungergames/internal/domain"
	"hungergames/internal/ports"
)

// newMatchAnnouncement opens a simulation with the roster headcount.
func newMatchAnnouncement(sess *domain.Session) ports.Announcement {
	return ports.Announcement{
		Title: "New Hunger Games match (battle royale)",
		Body:  "Considering only online users",
		Fields: []ports.Field{
			{Name: "Alive", Value: fmt.Sprint(len(sess.Living()))},
			{Name: "Participants", Value: fmt.Sprint(len(sess.Roster))},
		},
		Footer: "Hunger Games & Battle Royale simulation",
		Tone:   ports.ToneGood,
	}
}

// roundAnnouncement is the per-round header: round number, headcounts, and
// the kill leader once somebody has more than one kill.
func roundAnnouncement(sess *domain.Session) ports.Announcement {
	a := ports.Announcement{
		Title: fmt.Sprintf("Round #%d", sess.Round),
		Fields: []ports.Field{
			{Name: "Alive", Value: fmt.Sprint(len(sess.Living()))},
			{Name: "Participants", Value: fmt.Sprint(len(sess.Roster))},
		},
	}
	if leader := sess.KillLeader(); leader != nil && leader.Kills > 1 {
		a.Fields = append(a.Fields, ports.Field{
			Name:  leader.Name,
			Value: fmt.Sprintf("leads the body count with %d kills", leader.Kills),
		})
	}
	return a
}

func cancelledAnnouncement() ports.Announcement {
	return ports.Announcement{
		Title: "Game cancelled",
		Tone:  ports.ToneWarn,
	}
}

// outcomeAnnouncement narrates one resolved turn.
func outcomeAnnouncement(o domain.Outcome) ports.Announcement {
	name := o.Actor.Name
	var a ports.Announcement

	switch o.Kind {
	case domain.OutcomeStarved:
		a = ports.Announcement{
			Title: fmt.Sprintf("%s starved to death!", name),
			Tone:  ports.ToneBad,
		}
		if o.Actor.Kills > 0 {
			a.Fields = append(a.Fields, ports.Field{Name: "Kill count", Value: fmt.Sprint(o.Actor.Kills)})
		}
		return a
	case domain.OutcomeWaited:
		a.Title = fmt.Sprintf("%s chose to wait...", name)
	case domain.OutcomeRan:
		a.Title = fmt.Sprintf("%s is running!", name)
	case domain.OutcomeHid:
		a.Title = fmt.Sprintf("%s went into hiding...", name)
	case domain.OutcomeWatched:
		a.Title = fmt.Sprintf("%s is watching %s...", name, o.Watched.Name)
	case domain.OutcomeProwled:
		a.Title = fmt.Sprintf("%s is looking for other players...", name)
	case domain.OutcomeFoundFood:
		a.Title = fmt.Sprintf("%s found food!", name)
	case domain.OutcomeWentHungry:
		a.Title = fmt.Sprintf("%s is getting hungry...", name)
		a.Fields = append(a.Fields, ports.Field{
			Name:  "Rounds without eating",
			Value: fmt.Sprintf("%d/%d", o.Actor.Hunger, domain.MaxHunger),
		})
	case domain.OutcomeFoundWeapon:
		a.Title = fmt.Sprintf("%s found a weapon!", name)
	case domain.OutcomeFoundNothing:
		a.Title = fmt.Sprintf("%s searched for a weapon but found nothing.", name)
	case domain.OutcomeSelfElimination:
		return ports.Announcement{
			Title: fmt.Sprintf("%s eliminated themselves!", name),
			Tone:  ports.ToneBad,
		}
	case domain.OutcomeKilled:
		a = ports.Announcement{
			Title:  fmt.Sprintf("%s killed %s.", o.Killer.Name, o.Victim.Name),
			Footer: fmt.Sprintf("%s died", o.Victim.Name),
			Tone:   ports.ToneBad,
		}
		if o.Killer.Kills > 1 {
			a.Fields = append(a.Fields, ports.Field{Name: "Kill count", Value: fmt.Sprint(o.Killer.Kills)})
		}
		return a
	}

	if o.ArmedAtStart {
		a.Footer = fmt.Sprintf("%s has a %s", name, o.Actor.Weapon.Name())
	}
	return a
}

// endAnnouncement reports the terminal outcome of a finished session.
func endAnnouncement(sess *domain.Session) ports.Announcement {
	a := ports.Announcement{Title: "Game over!"}

	switch sess.EndReason {
	case domain.EndVictory:
		a.Tone = ports.ToneGood
		if sess.Winner != nil {
			a.Fields = append(a.Fields, ports.Field{Name: "Winner", Value: sess.Winner.Name})
			if sess.Winner.Kills > 0 {
				a.Fields = append(a.Fields, ports.Field{
					Name:  "Kills",
					Value: fmt.Sprintf("Killed %d in total", sess.Winner.Kills),
				})
			} else {
				a.Fields = append(a.Fields, ports.Field{Name: "Kills", Value: "Won without killing anyone!"})
			}
		}
	case domain.EndTimedOut:
		a.Tone = ports.ToneWarn
		a.Fields = append(a.Fields, ports.Field{
			Name:  "Catastrophe!",
			Value: "An atomic bomb dropped and wiped out everyone left!",
		})
	default:
		a.Tone = ports.ToneWarn
		a.Fields = append(a.Fields, ports.Field{Name: "Everyone died", Value: "Nobody won"})
	}

	if leader := sess.KillLeader(); leader != nil && leader.Kills > 1 {
		a.Fields = append(a.Fields, ports.Field{
			Name:  "Top killer",
			Value: fmt.Sprintf("%s killed the most this match, with %d kills", leader.Name, leader.Kills),
		})
	}
	return a
}
