package approx

// ClassicalCalculator computes the classical DRSA lower approximation:
// an object belongs to Lower(U) iff its standard dominance cone (D+ for
// an AtLeast union, D- for an AtMost union) lies entirely within U's
// members plus its neutral objects.
type ClassicalCalculator struct{}

// Lower implements RoughSetCalculator.
func (ClassicalCalculator) Lower(u *Union) []int {
	allowed := toSet(u.Objects())
	for _, i := range u.NeutralObjects() {
		allowed[i] = true
	}

	var lower []int
	for _, i := range u.Objects() {
		if coneSubset(u.cone(i), allowed) {
			lower = append(lower, i)
		}
	}
	return lower
}

func coneSubset(cone []int, allowed map[int]bool) bool {
	for _, j := range cone {
		if !allowed[j] {
			return false
		}
	}
	return true
}

// VCRoughSetCalculator computes the variable-consistency lower
// approximation: an object of U belongs to Lower(U) only if every
// configured consistency measure satisfies its threshold, under the
// measure's own sense (Gain requires >=, Cost requires <=).
type VCRoughSetCalculator struct {
	measures   []ObjectConsistencyMeasure
	thresholds []float64
}

// NewVCRoughSetCalculator pairs each measure with its threshold,
// positionally. At least one measure is required, and the two lists
// must be the same length.
func NewVCRoughSetCalculator(measures []ObjectConsistencyMeasure, thresholds []float64) (*VCRoughSetCalculator, error) {
	if len(measures) == 0 {
		return nil, invalidInput(ErrNoMeasures, "variable-consistency calculator requires at least one measure")
	}
	if len(measures) != len(thresholds) {
		return nil, invalidInput(ErrMeasureThresholdCountMismatch,
			"got %d measures and %d thresholds", len(measures), len(thresholds))
	}
	return &VCRoughSetCalculator{measures: measures, thresholds: thresholds}, nil
}

// Lower implements RoughSetCalculator.
func (c *VCRoughSetCalculator) Lower(u *Union) []int {
	var lower []int
	for _, i := range u.Objects() {
		if c.satisfiesAll(i, u) {
			lower = append(lower, i)
		}
	}
	return lower
}

func (c *VCRoughSetCalculator) satisfiesAll(objectIndex int, u *Union) bool {
	for k, m := range c.measures {
		value := m.Calculate(objectIndex, u)
		threshold := c.thresholds[k]
		switch m.Sense() {
		case Gain:
			if value < threshold {
				return false
			}
		case Cost:
			if value > threshold {
				return false
			}
		}
	}
	return true
}
