package scheduler

import "strconv"

// ScheduledCount returns the store's count of cards due by adjusted-now,
// bumped up when learning ahead so the currently-queued cards are
// reflected too.
func (e *Engine) ScheduledCount() (int, error) {
	queueCount := 0
	if e.inLearnAhead {
		queueCount = len(e.cardIDsInQueue) + 1
	}
	dbCount, err := e.store.ScheduledCount(AdjustedNow(e.clock))
	if err != nil {
		return 0, err
	}
	if queueCount > dbCount {
		return queueCount, nil
	}
	return dbCount, nil
}

func (e *Engine) NonMemorisedCount() (int, error) {
	return e.store.NonMemorisedCount()
}

func (e *Engine) ActiveCount() (int, error) {
	return e.store.ActiveCount()
}

// CardCountScheduledNDaysFromNow: yesterday is n=-1, today n=0, tomorrow
// n=1, and so on.
func (e *Engine) CardCountScheduledNDaysFromNow(n int) (int, error) {
	now := AdjustedNow(e.clock)
	if n > 0 {
		return e.store.CardCountScheduledBetween(now+int64(n-1)*Day, now+int64(n)*Day)
	}
	return e.store.CardCountScheduledNDaysAgo(now, -n)
}

// NextRepToIntervalString renders next_rep relative to now as a short
// human-readable string ("tomorrow", "in 12 days", "3 days overdue"...).
func NextRepToIntervalString(nextRep, now int64) string {
	intervalDays := float64(nextRep-now) / Day
	switch {
	case intervalDays >= 1:
		return "in " + strconv.Itoa(int(intervalDays)+1) + " days"
	case intervalDays >= 0:
		return "tomorrow"
	case intervalDays >= -1:
		return "today"
	case intervalDays >= -2:
		return "1 day overdue"
	default:
		return strconv.Itoa(int(-intervalDays)-1) + " days overdue"
	}
}

// LastRepToIntervalString renders last_rep relative to now, snapping both
// through MidnightUTC after removing the day-start offset first.
func LastRepToIntervalString(lastRep, now int64, dayStartsAt int) string {
	if lastRep == -1 {
		return "Never"
	}
	nowSnapped := MidnightUTC(now - int64(dayStartsAt)*Hour)
	lastRepSnapped := MidnightUTC(lastRep - int64(dayStartsAt)*Hour)
	intervalDays := float64(lastRepSnapped-nowSnapped) / Day

	switch {
	case intervalDays > -1:
		return "Today"
	case intervalDays > -2:
		return "1 day ago"
	default:
		return strconv.Itoa(int(-intervalDays)) + " days ago"
	}
}
