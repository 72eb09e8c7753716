// Package consistency implements object consistency measures: per-object
// scores of how well an object's presence in a union respects the
// dominance principle. They drive the variable-consistency rough set
// calculator (internal/approx).
package consistency
