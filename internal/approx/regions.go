package approx

// PositiveRegion returns Lower(U) together with the dominance cones
// anchored at each of its members: D+ for an AtLeast union, D- for an
// AtMost union. This is the cone-based definition (SPEC_FULL.md §3 C4
// records the choice between this and an "inconsistent-objects" based
// definition; this package always uses the cone-based one, uniformly
// for both the classical and the variable-consistency calculator).
func (u *Union) PositiveRegion() []int {
	u.posRegionOnce.Do(func() {
		seen := map[int]bool{}
		var region []int
		for _, i := range u.Lower() {
			for _, j := range u.cone(i) {
				if !seen[j] {
					seen[j] = true
					region = append(region, j)
				}
			}
		}
		u.posRegion = region
	})
	return u.posRegion
}

// NegativeRegion returns the positive region of the complementary
// union. SetComplementaryUnion must have been called first.
func (u *Union) NegativeRegion() []int {
	u.negRegionOnce.Do(func() {
		if u.complement == nil {
			u.negRegion = nil
			return
		}
		u.negRegion = u.complement.PositiveRegion()
	})
	return u.negRegion
}

// BoundaryRegion returns every object not in the positive or the
// negative region.
func (u *Union) BoundaryRegion() []int {
	u.boundaryRegionOnce.Do(func() {
		pos := toSet(u.PositiveRegion())
		neg := toSet(u.NegativeRegion())
		n := u.table.NumObjects()
		var boundary []int
		for i := 0; i < n; i++ {
			if !pos[i] && !neg[i] {
				boundary = append(boundary, i)
			}
		}
		u.boundaryRegion = boundary
	})
	return u.boundaryRegion
}

// cone returns the standard dominance cone used to expand the positive
// region at object i: D+(i) for an AtLeast union, D-(i) for an AtMost
// union.
func (u *Union) cone(i int) []int {
	if u.unionType == AtLeast {
		return u.cones.PositiveStandardCone(i)
	}
	return u.cones.NegativeStandardCone(i)
}
