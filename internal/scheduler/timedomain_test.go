package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcalvez/srscore/internal/config"
	"github.com/jcalvez/srscore/internal/scheduler"
	"github.com/jcalvez/srscore/pkg/clock"
)

func TestMidnightUTC_FixedForSameLocalDate(t *testing.T) {
	setupDeterministicEnvironment()

	base := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC).Unix()
	later := time.Date(2023, 6, 15, 23, 59, 0, 0, time.UTC).Unix()

	assert.Equal(t, scheduler.MidnightUTC(base), scheduler.MidnightUTC(later))
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC).Unix(), scheduler.MidnightUTC(base))
}

// MidnightUTC reads time.Local to interpret its input as local time.
// Under a west-of-UTC zone, a UTC-midnight output reinterpreted as local
// time falls in the previous evening, so re-applying MidnightUTC to its
// own output snaps to the previous day instead of returning it unchanged.
func TestMidnightUTC_NotMeantToBeReapplied(t *testing.T) {
	setupDeterministicEnvironment()

	originalLocal := time.Local
	time.Local = time.FixedZone("fixed-west", -5*3600)
	defer func() { time.Local = originalLocal }()

	t1 := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC).Unix()
	once := scheduler.MidnightUTC(t1)
	twice := scheduler.MidnightUTC(once)

	assert.NotEqual(t, once, twice, "re-applying MidnightUTC to its own output must not be a no-op under a non-UTC local zone")
	assert.Equal(t, once-scheduler.Day, twice)
}

func TestAdjustedNow_SubtractsDayStartAndOffset(t *testing.T) {
	config.SetCurrentConfig(&config.Config{
		ConfigFile: config.ConfigFile{Core: config.ConfigCore{DayStartsAt: 3}},
	})
	scheduler.SetZoneProvider(zeroOffsetProvider{})

	now := int64(1_700_000_000)
	clk := clock.NewTestClockAt(time.Unix(now, 0).UTC())

	adjusted := scheduler.AdjustedNow(clk)
	assert.Equal(t, now-3*scheduler.Hour, adjusted)
}

func TestTrueScheduledInterval_ForgotMustBeZero(t *testing.T) {
	setupDeterministicEnvironment()

	card := &scheduler.Card{Grade: scheduler.Forgot, LastRep: 100, NextRep: 100}
	interval, ok := scheduler.TrueScheduledInterval(card)
	assert.Equal(t, int64(0), interval)
	assert.True(t, ok)
}

func TestTrueScheduledInterval_ForgotViolation(t *testing.T) {
	setupDeterministicEnvironment()

	card := &scheduler.Card{Grade: scheduler.Forgot, LastRep: 100, NextRep: 200}
	interval, ok := scheduler.TrueScheduledInterval(card)
	assert.Equal(t, int64(100), interval)
	assert.False(t, ok, "a FORGOT card should never carry a non-zero interval")
}
