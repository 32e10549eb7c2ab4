package match

import "sort"

// Timeline is the displayable reconstruction of a match from its event rows.
// Events are ordered by minute ascending; ties keep insertion order. Goals
// and cards are additionally grouped per side. The stored match score is
// taken at face value: a missing goal event is rendered as-is, never
// reconciled.
type Timeline struct {
	Events        []Event
	HomeGoals     []Event
	AwayGoals     []Event
	HomeCards     []Event
	AwayCards     []Event
	Substitutions []Event
}

func BuildTimeline(m Match, events []Event) Timeline {
	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Minute < ordered[j].Minute
	})

	tl := Timeline{Events: ordered}
	for _, ev := range ordered {
		home := ev.TeamID == m.HomeTeamID
		switch ev.Type {
		case EventGoal:
			if home {
				tl.HomeGoals = append(tl.HomeGoals, ev)
			} else {
				tl.AwayGoals = append(tl.AwayGoals, ev)
			}
		case EventYellowCard, EventRedCard:
			if home {
				tl.HomeCards = append(tl.HomeCards, ev)
			} else {
				tl.AwayCards = append(tl.AwayCards, ev)
			}
		case EventSubstitution:
			tl.Substitutions = append(tl.Substitutions, ev)
		}
	}

	return tl
}

// SplitLineup partitions entries into starters and bench, each ordered by
// the fixed position precedence GK < DEF < MID < FWD.
func SplitLineup(entries []LineupEntry) (starters, bench []LineupEntry) {
	for _, e := range entries {
		if e.IsStarter {
			starters = append(starters, e)
		} else {
			bench = append(bench, e)
		}
	}

	byPosition := func(list []LineupEntry) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Position.Rank() < list[j].Position.Rank()
		})
	}
	byPosition(starters)
	byPosition(bench)

	return starters, bench
}
