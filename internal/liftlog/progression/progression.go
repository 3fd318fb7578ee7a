package progression

import (
	"github.com/2beens/liftlog/internal/liftlog/catalog"
	"github.com/2beens/liftlog/internal/liftlog/history"
)

const (
	// FallbackWeight is recommended when an exercise has neither
	// history nor a default weight.
	FallbackWeight = 10.0
	// Increment is added to the working weight after a completed session.
	Increment = 2.5
)

// Recommend computes the suggested working weight for the exercise,
// based on the last session before the current week.
//
// History is matched by exercise *name*, not id, so that clones made by
// swaps share one progression line with their source. Only entries of
// weeks strictly before currentWeek count. If the last such session
// reached the target set count, the weight goes up by Increment,
// otherwise it carries over unchanged.
//
// Pure function: same inputs, same result.
func Recommend(
	ex catalog.Exercise,
	cat []catalog.Exercise,
	h history.History,
	currentWeek int,
) float64 {
	var prior []history.Entry
	lastWeek := 0
	// iterate in catalog order so the "first set" of a session is
	// deterministic even when clones log under separate ids
	for _, c := range cat {
		if c.Name != ex.Name {
			continue
		}
		for _, e := range h[c.ID] {
			if e.Week >= currentWeek {
				continue
			}
			prior = append(prior, e)
			if e.Week > lastWeek {
				lastWeek = e.Week
			}
		}
	}

	if len(prior) == 0 {
		if ex.DefaultWeight != nil {
			return *ex.DefaultWeight
		}
		return FallbackWeight
	}

	var lastSession []history.Entry
	for _, e := range prior {
		if e.Week == lastWeek {
			lastSession = append(lastSession, e)
		}
	}
	if len(lastSession) == 0 {
		// unreachable given lastWeek comes from prior, kept as a guard
		if ex.DefaultWeight != nil {
			return *ex.DefaultWeight
		}
		return FallbackWeight
	}

	if len(lastSession) >= ex.DefaultSets {
		return lastSession[0].Weight + Increment
	}
	return lastSession[0].Weight
}
