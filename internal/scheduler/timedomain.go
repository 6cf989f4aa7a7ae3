package scheduler

import (
	"time"

	"github.com/jcalvez/srscore/internal/config"
	"github.com/jcalvez/srscore/pkg/clock"
)

// overflowFallback is the pinned date substituted when the platform cannot
// represent a local date (32-bit time_t overflow near 2038).
const overflowFallback = int64(1<<31 - 2)

// ZoneProvider abstracts the local UTC offset lookup so tests can pin it
// instead of depending on the host machine's time zone database.
type ZoneProvider interface {
	// Offset returns the number of seconds the local zone sits west of UTC
	// at the instant corresponding to the given POSIX timestamp (positive
	// west, mirroring Python's time.timezone/time.altzone).
	Offset(unix int64) int
}

// SystemZoneProvider derives the offset from the Go runtime's local
// location, distinguishing DST the way time.timezone/time.altzone do.
type SystemZoneProvider struct{}

func (SystemZoneProvider) Offset(unix int64) int {
	t := time.Unix(unix, 0)
	_, offsetEast := t.Local().Zone()
	return -offsetEast
}

var zoneProvider ZoneProvider = SystemZoneProvider{}

// SetZoneProvider overrides the zone provider, mainly for tests.
func SetZoneProvider(p ZoneProvider) {
	zoneProvider = p
}

// MidnightUTC rounds a timestamp interpreted as local time down to a
// timezone-independent POSIX timestamp corresponding to midnight UTC on
// that same calendar date.
//
// The input timestamp must carry the meaning of local time: calling
// MidnightUTC on its own output produces a different (and meaningless)
// result, since the output is no longer "local time" in the same sense.
func MidnightUTC(timestamp int64) int64 {
	t := time.Unix(timestamp, 0).Local()
	year, month, day := t.Date()
	if year < 0 || year > 9999 {
		// Mirrors the source's 2038 overflow guard for platforms that
		// cannot form the local date; time.Unix never actually overflows
		// on 64-bit Go, so this only guards pathological far-future input.
		t = time.Unix(overflowFallback, 0).Local()
		year, month, day = t.Date()
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

// AdjustedNow shifts the clock's current time by the configured day-start
// offset and the local UTC offset, so that a card becomes due exactly when
// adjusted-now crosses its next_rep boundary at the configured local hour.
func AdjustedNow(clk clock.Clock) int64 {
	now := clk.Now().Unix()
	now -= int64(config.CurrentConfig().DayStartsAt()) * Hour
	now -= int64(zoneProvider.Offset(now))
	return now
}

// TrueScheduledInterval undoes the day-start/zone shift baked into a
// card's stored next_rep, to recover the interval length the grading
// branch actually scheduled. It reports ok=false for a FORGOT card whose
// stored interval is non-zero (it should always be zero) — the caller
// decides how to surface that as the engine's internal-error signal.
func TrueScheduledInterval(card *Card) (interval int64, ok bool) {
	interval = card.NextRep - card.LastRep
	if card.Grade == Forgot {
		return interval, interval == 0
	}
	interval += int64(config.CurrentConfig().DayStartsAt()) * Hour
	interval += int64(zoneProvider.Offset(time.Now().Unix()))
	return interval, true
}
