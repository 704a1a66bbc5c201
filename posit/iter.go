package posit

// ForEach visits every pattern of P<n,es> exactly once, in ascending
// value order starting from the most negative posit and wrapping through
// NaR last, until f returns false.
func ForEach(n, es int, f func(Posit) bool) {
	checkShape(n, es)
	start := Min(n, es)
	cur := start
	for {
		if !f(cur) {
			return
		}
		cur = cur.Next()
		if cur.Equal(start) {
			return
		}
	}
}

// ForEachRegular visits every non-NaR posit of P<n,es> in ascending
// value order until f returns false.
func ForEachRegular(n, es int, f func(Posit) bool) {
	ForEach(n, es, func(p Posit) bool {
		if p.IsNaR() {
			return true
		}
		return f(p)
	})
}

// ForEachValid visits every valid of P<n,es>: all endpoint pairs under
// all four bound combinations. The walk is lazy but large (4 * 2^2n
// valids); callers stop it early by returning false.
func ForEachValid(n, es int, f func(Valid) bool) {
	done := false
	ForEach(n, es, func(p Posit) bool {
		ForEach(n, es, func(q Posit) bool {
			for _, sb := range []IntervalBound{Open, Closed} {
				for _, eb := range []IntervalBound{Open, Closed} {
					if !f(NewValid(p, sb, q, eb)) {
						done = true
						return false
					}
				}
			}
			return true
		})
		return !done
	})
}

// ForEachRegularValid visits every regular valid of P<n,es>.
func ForEachRegularValid(n, es int, f func(Valid) bool) {
	ForEachValid(n, es, func(v Valid) bool {
		if !v.IsRegular() {
			return true
		}
		return f(v)
	})
}
