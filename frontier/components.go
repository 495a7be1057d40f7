package frontier

import (
	"sort"

	"github.com/minemind-go/minemind/dsu"
	"github.com/minemind-go/minemind/mask"
)

// Components decomposes the frontier's constraints into independent
// components: a DSU over constraint indices 0..C-1, unioning i and j
// whenever their scopes share a variable. O(C^2), acceptable because C
// is bounded by the number of revealed numbered cells on the frontier —
// a few dozen in typical play.
//
// Components are returned in a deterministic order: sorted by the
// smallest original constraint index each component contains, so two
// calls on an unchanged frontier produce identical output.
func (f *Frontier) Components() []Component {
	n := len(f.Constraints)
	if n == 0 {
		return nil
	}

	// n is len(f.Constraints), always >= 0; the error is unreachable here.
	uf, _ := dsu.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if f.Constraints[i].Scope.Intersects(f.Constraints[j].Scope) {
				uf.Union(i, j)
			}
		}
	}

	grouped := uf.Components()
	components := make([]Component, 0, len(grouped))
	for _, memberIdx := range grouped {
		members := sortedInts(memberIdx)

		comp := Component{Constraints: make([]Constraint, 0, len(members))}
		var vars mask.Set
		for _, i := range members {
			comp.Constraints = append(comp.Constraints, f.Constraints[i])
			vars = vars.Union(f.Constraints[i].Scope)
		}
		comp.Variables = vars.Bits()
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool {
		a, b := components[i].Constraints[0].Origin, components[j].Constraints[0].Origin
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return components
}
