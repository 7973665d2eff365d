package goal

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goalcast/stats"
	"github.com/sartorproj/goalcast/timeseries"
)

var final = civil.Date{Year: 2021, Month: 4, Day: 1}

// groupAt builds a group whose final date is final and whose level there is
// the sum of levels, one series per level.
func groupAt(t *testing.T, levels ...int64) *timeseries.Group {
	t.Helper()
	var members []*timeseries.Series
	for i, level := range levels {
		p := timeseries.NewPoints()
		p.Set(final.AddDays(-1), level/2)
		p.Set(final, level)
		members = append(members, timeseries.New([]string{string(rune('a' + i))}, p))
	}
	g, err := timeseries.NewGroup(members...)
	require.NoError(t, err)
	return g
}

func constant(v int64) timeseries.ValueFunc {
	return func(*timeseries.Series, civil.Date) int64 { return v }
}

func lastSeries(g *timeseries.Group) *timeseries.Series {
	members := g.Series()
	return members[len(members)-1]
}

func TestFutureGoalLinearPath(t *testing.T) {
	g := groupAt(t, 100)

	out, err := FutureGoal(g, "Phase 1", final.AddDays(10), Fixed(200), 1, stats.ValueAt)
	require.NoError(t, err)

	require.Equal(t, 2, out.Len())
	projection := lastSeries(out)
	assert.Equal(t, []string{"Phase 1"}, projection.Tags())
	assert.Equal(t, 10, projection.Len())
	for i := 1; i <= 10; i++ {
		assert.Equal(t, int64(100+10*i), projection.Value(final.AddDays(i)), "day %d", i)
	}

	last, err := projection.LatestDate()
	require.NoError(t, err)
	assert.Equal(t, final.AddDays(10), last)
	assert.Equal(t, int64(200), projection.Value(last))

	assert.Equal(t, 1, g.Len(), "input group must not change")
	assert.Equal(t, g.Updated(), out.Updated())
}

func TestFutureGoalTruncates(t *testing.T) {
	g := groupAt(t, 0)

	out, err := FutureGoal(g, "goal", final.AddDays(3), Fixed(10), 1, stats.ValueAt)
	require.NoError(t, err)

	want := map[civil.Date]int64{
		final.AddDays(1): 3,
		final.AddDays(2): 6,
		final.AddDays(3): 10,
	}
	if diff := cmp.Diff(want, lastSeries(out).Points().Map()); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestFutureGoalDescending(t *testing.T) {
	g := groupAt(t, 50)

	out, err := FutureGoal(g, "zero", final.AddDays(4), Fixed(0), 1, stats.ValueAt)
	require.NoError(t, err)

	projection := lastSeries(out)
	assert.Equal(t, int64(38), projection.Value(final.AddDays(1)))
	assert.Equal(t, int64(0), projection.Value(final.AddDays(4)))
}

func TestFutureGoalStepOvershootsTarget(t *testing.T) {
	g := groupAt(t, 0)

	out, err := FutureGoal(g, "weekly", final.AddDays(10), Fixed(100), 3, stats.ValueAt)
	require.NoError(t, err)

	projection := lastSeries(out)
	want := []civil.Date{final.AddDays(3), final.AddDays(6), final.AddDays(9), final.AddDays(12)}
	if diff := cmp.Diff(want, projection.Dates()); diff != "" {
		t.Errorf("Dates() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(120), projection.Value(final.AddDays(12)))
}

func TestFutureGoalEmptyWindow(t *testing.T) {
	g := groupAt(t, 100)

	for _, target := range []civil.Date{final, final.AddDays(-5)} {
		out, err := FutureGoal(g, "past", target, Fixed(200), 1, stats.ValueAt)
		require.NoError(t, err)
		assert.Equal(t, g.Len(), out.Len())
	}
}

func TestFutureGoalUsesGoalFunc(t *testing.T) {
	g := groupAt(t, 300, 100)

	var seen int64
	goalFn := func(current int64) int64 {
		seen = current
		return current + 40
	}

	out, err := FutureGoal(g, "blend", final.AddDays(4), goalFn, 1, stats.ValueAt)
	require.NoError(t, err)
	assert.Equal(t, int64(400), seen)
	assert.Equal(t, int64(440), lastSeries(out).Value(final.AddDays(4)))
}

func TestFutureGoalInvalidStep(t *testing.T) {
	g := groupAt(t, 1)

	_, err := FutureGoal(g, "bad", final.AddDays(4), Fixed(2), 0, stats.ValueAt)
	assert.True(t, errors.Is(err, timeseries.ErrInvalidStep))
}

func TestFutureGoalExtrapolate(t *testing.T) {
	g := groupAt(t, 50)

	out, est, err := FutureGoalExtrapolate(g, "pace", 150, 1, constant(10), stats.ValueAt)
	require.NoError(t, err)

	assert.True(t, est.Reachable())
	assert.Equal(t, final, est.FinalDate)
	assert.Equal(t, int64(50), est.Current)
	assert.Equal(t, int64(10), est.Speed)
	assert.Equal(t, final.AddDays(10), est.EndDate)

	projection := lastSeries(out)
	last, err := projection.LatestDate()
	require.NoError(t, err)
	assert.Equal(t, est.EndDate, last)
	assert.Equal(t, int64(150), projection.Value(last))
}

func TestFutureGoalExtrapolateSumsSpeedOverMembers(t *testing.T) {
	g := groupAt(t, 20, 30)

	_, est, err := FutureGoalExtrapolate(g, "pace", 150, 2, constant(5), stats.ValueAt)
	require.NoError(t, err)

	// Speed 10, 100 to go: 10 steps of 2 days.
	assert.Equal(t, int64(10), est.Speed)
	assert.Equal(t, final.AddDays(20), est.EndDate)
}

func TestFutureGoalExtrapolateAlreadyMet(t *testing.T) {
	g := groupAt(t, 500)

	out, est, err := FutureGoalExtrapolate(g, "done", 500, 1, constant(10), stats.ValueAt)
	require.NoError(t, err)

	assert.True(t, est.Met)
	assert.False(t, est.Reachable())
	assert.True(t, est.EndDate.IsZero())
	assert.Equal(t, g.Len(), out.Len())
}

func TestFutureGoalExtrapolateNoTrend(t *testing.T) {
	g := groupAt(t, 50)

	for _, speed := range []int64{0, -3} {
		out, est, err := FutureGoalExtrapolate(g, "stalled", 150, 1, constant(speed), stats.ValueAt)
		require.NoError(t, err)
		assert.True(t, est.Unreachable)
		assert.True(t, est.EndDate.IsZero())
		assert.Equal(t, g.Len(), out.Len())
	}
}

func TestFutureGoalExtrapolateWithinOneStep(t *testing.T) {
	g := groupAt(t, 95)

	out, est, err := FutureGoalExtrapolate(g, "close", 100, 1, constant(10), stats.ValueAt)
	require.NoError(t, err)

	// Five to go at ten a day truncates to zero days: nothing to draw.
	assert.True(t, est.Reachable())
	assert.Equal(t, final, est.EndDate)
	assert.Equal(t, g.Len(), out.Len())
}

func TestProjector(t *testing.T) {
	g := groupAt(t, 100)

	p := New()

	out, err := p.FutureGoal(g, "fixed", final.AddDays(2), Fixed(110))
	require.NoError(t, err)
	assert.Equal(t, int64(110), lastSeries(out).Value(final.AddDays(2)))

	p = New(WithStep(1), WithSpeed(constant(25)), WithStart(stats.ValueAt))
	out, est, err := p.Extrapolate(g, "pace", 200)
	require.NoError(t, err)
	assert.Equal(t, final.AddDays(4), est.EndDate)
	assert.Equal(t, int64(200), lastSeries(out).Value(est.EndDate))
}

func TestTrajectoryInvalidStep(t *testing.T) {
	assert.Equal(t, 0, Trajectory(final, 0, final.AddDays(5), 10, 0).Len())
}
