package goal

// Func computes the goal value from the group's current total.
type Func func(current int64) int64

// Fixed always aims at v.
func Fixed(v int64) Func {
	return func(int64) int64 { return v }
}

// Remaining aims at the current total plus whatever is still missing of a
// target tracked elsewhere, where achieved has been reached so far. Used to
// project a second dose toward the number of people who had a first one.
func Remaining(target, achieved int64) Func {
	return func(current int64) int64 {
		return current + target - achieved
	}
}

// Percent aims at pct percent of base, truncated.
func Percent(base int64, pct float64) Func {
	v := int64(float64(base) * pct / 100)
	return Fixed(v)
}
