package dominance

import (
	"sync"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// dominatesOnAttrStd reports whether a dominates b on a single attribute
// under the attribute's preference direction: a is at least as good as
// b. std is the plain AtLeastAsGoodAs test used by the standard cones.
func dominatesOnAttrStd(a, b values.Value, pref values.PreferenceType) values.TriLogic {
	return values.AtLeastAsGoodAs(a, b, pref)
}

// dominatesOnAttrInv is the conservative variant used to build the
// inverted cones consumed by variable-consistency evidence counting: an
// MV2 missing value compared against a present value, which the
// standard test leaves Uncomparable, is instead treated as dominance
// evidence (True). This makes the inverted cones supersets of their
// standard counterparts, which is what lets the epsilon measure count
// "negative" evidence without losing objects the standard cone would
// have excluded solely because one side held a conservative missing
// value.
func dominatesOnAttrInv(a, b values.Value, pref values.PreferenceType) values.TriLogic {
	std := dominatesOnAttrStd(a, b, pref)
	if std != values.Uncomparable {
		return std
	}
	if isMV2(a) || isMV2(b) {
		return values.True
	}
	return values.Uncomparable
}

func isMV2(v values.Value) bool {
	m, ok := v.(values.MissingValue)
	return ok && m.Flavor == values.MV2
}

// dominatesRow reports whether object a dominates object b across every
// active condition attribute of table, using the supplied per-attribute
// test.
func dominatesRow(table *data.InformationTable, a, b int, test func(x, y values.Value, pref values.PreferenceType) values.TriLogic) bool {
	for _, attrIdx := range table.ActiveConditionAttributeIndices() {
		attr := table.Attribute(attrIdx)
		va := table.GetField(a, attrIdx)
		vb := table.GetField(b, attrIdx)
		if test(va, vb, attr.Preference) != values.True {
			return false
		}
	}
	return true
}

// Cones computes and caches, per object, the four dominance cones of an
// InformationTable and their decision-class distributions. A Cones
// value is bound to one table, computes everything on first use, and is
// safe for concurrent reads afterward.
type Cones struct {
	table *data.InformationTable

	once sync.Once

	posStd [][]int
	negStd [][]int
	posInv [][]int
	negInv [][]int

	posStdDist []*Distribution
	negStdDist []*Distribution
	posInvDist []*Distribution
	negInvDist []*Distribution
}

// NewCones binds a Cones cache to table. Nothing is computed until the
// first accessor call.
func NewCones(table *data.InformationTable) *Cones {
	return &Cones{table: table}
}

func (c *Cones) ensure() {
	c.once.Do(c.compute)
}

func (c *Cones) compute() {
	n := c.table.NumObjects()
	c.posStd = make([][]int, n)
	c.negStd = make([][]int, n)
	c.posInv = make([][]int, n)
	c.negInv = make([][]int, n)
	c.posStdDist = make([]*Distribution, n)
	c.negStdDist = make([]*Distribution, n)
	c.posInvDist = make([]*Distribution, n)
	c.negInvDist = make([]*Distribution, n)

	for i := 0; i < n; i++ {
		c.posStdDist[i] = newDistribution()
		c.negStdDist[i] = newDistribution()
		c.posInvDist[i] = newDistribution()
		c.negInvDist[i] = newDistribution()

		for j := 0; j < n; j++ {
			// D+(i): objects j that dominate i.
			if dominatesRow(c.table, j, i, dominatesOnAttrStd) {
				c.posStd[i] = append(c.posStd[i], j)
				c.addDecision(c.posStdDist[i], j)
			}
			// D-(i): objects j dominated by i.
			if dominatesRow(c.table, i, j, dominatesOnAttrStd) {
				c.negStd[i] = append(c.negStd[i], j)
				c.addDecision(c.negStdDist[i], j)
			}
			// D+inv(i): conservative superset of D+(i).
			if dominatesRow(c.table, j, i, dominatesOnAttrInv) {
				c.posInv[i] = append(c.posInv[i], j)
				c.addDecision(c.posInvDist[i], j)
			}
			// D-inv(i): conservative superset of D-(i).
			if dominatesRow(c.table, i, j, dominatesOnAttrInv) {
				c.negInv[i] = append(c.negInv[i], j)
				c.addDecision(c.negInvDist[i], j)
			}
		}
	}
}

func (c *Cones) addDecision(dist *Distribution, obj int) {
	dec, ok := c.table.GetDecision(obj)
	if !ok {
		return
	}
	dist.add(dec)
}

// PositiveStandardCone returns D+(i): the indices of objects dominating
// object i, including i itself.
func (c *Cones) PositiveStandardCone(i int) []int {
	c.ensure()
	return c.posStd[i]
}

// NegativeStandardCone returns D-(i): the indices of objects dominated
// by object i, including i itself.
func (c *Cones) NegativeStandardCone(i int) []int {
	c.ensure()
	return c.negStd[i]
}

// PositiveInvertedCone returns D+inv(i), the conservative superset of
// D+(i) used for variable-consistency evidence counting.
func (c *Cones) PositiveInvertedCone(i int) []int {
	c.ensure()
	return c.posInv[i]
}

// NegativeInvertedCone returns D-inv(i), the conservative superset of
// D-(i) used for variable-consistency evidence counting.
func (c *Cones) NegativeInvertedCone(i int) []int {
	c.ensure()
	return c.negInv[i]
}

// PositiveStandardConeDecisionClassDistribution returns the decision
// class distribution over D+(i).
func (c *Cones) PositiveStandardConeDecisionClassDistribution(i int) *Distribution {
	c.ensure()
	return c.posStdDist[i]
}

// NegativeStandardConeDecisionClassDistribution returns the decision
// class distribution over D-(i).
func (c *Cones) NegativeStandardConeDecisionClassDistribution(i int) *Distribution {
	c.ensure()
	return c.negStdDist[i]
}

// PositiveInvertedConeDecisionClassDistribution returns the decision
// class distribution over D+inv(i).
func (c *Cones) PositiveInvertedConeDecisionClassDistribution(i int) *Distribution {
	c.ensure()
	return c.posInvDist[i]
}

// NegativeInvertedConeDecisionClassDistribution returns the decision
// class distribution over D-inv(i).
func (c *Cones) NegativeInvertedConeDecisionClassDistribution(i int) *Distribution {
	c.ensure()
	return c.negInvDist[i]
}
