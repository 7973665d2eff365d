package goal

import (
	"cloud.google.com/go/civil"

	"github.com/sartorproj/goalcast/stats"
	"github.com/sartorproj/goalcast/timeseries"
)

// Projector bundles the step and the policies shared by several projections
// of one dataset.
type Projector struct {
	step  int
	start timeseries.ValueFunc
	speed timeseries.ValueFunc
}

// Option configures a Projector.
type Option func(*Projector)

// WithStep sets the distance in days between projected points.
func WithStep(days int) Option {
	return func(p *Projector) { p.step = days }
}

// WithStart sets the level estimate.
func WithStart(f timeseries.ValueFunc) Option {
	return func(p *Projector) { p.start = f }
}

// WithSpeed sets the velocity estimate.
func WithSpeed(f timeseries.ValueFunc) Option {
	return func(p *Projector) { p.speed = f }
}

// New creates a projector stepping one day at a time from the exact value at
// the final date, with a weekly velocity.
func New(opts ...Option) *Projector {
	p := &Projector{
		step:  1,
		start: stats.ValueAt,
		speed: stats.WeeklyRate,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FutureGoal projects g toward goal at target.
func (p *Projector) FutureGoal(g *timeseries.Group, title string, target civil.Date, goal Func) (*timeseries.Group, error) {
	return FutureGoal(g, title, target, goal, p.step, p.start)
}

// Extrapolate projects g toward goal at its current velocity.
func (p *Projector) Extrapolate(g *timeseries.Group, title string, goal int64) (*timeseries.Group, Estimate, error) {
	return FutureGoalExtrapolate(g, title, goal, p.step, p.speed, p.start)
}
