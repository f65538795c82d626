package reservation

import "spotBooker/internal/models"

// Overlaps reports whether [s1, e1] and [s2, e2] share at least one day.
// Both ends are inclusive: a range ending on day D overlaps one starting on D.
func Overlaps(s1, e1, s2, e2 models.Date) bool {
	startHit, endHit := conflictingEnds(s1, e1, s2, e2)
	return startHit || endHit
}

// conflictingEnds reports which ends of the proposed range [s, e] collide
// with the existing range [es, ee]. Containment of the existing range marks both.
func conflictingEnds(s, e, es, ee models.Date) (startHit, endHit bool) {
	startHit = within(s, es, ee)
	endHit = within(e, es, ee)

	if !s.After(es) && !e.Before(ee) {
		startHit, endHit = true, true
	}

	return startHit, endHit
}

func within(d, from, to models.Date) bool {
	return !d.Before(from) && !d.After(to)
}
