// This file contains the similar-triangle and congruent-triangle class
// stores. Both share one insertion algorithm; the subtlety is that triangle
// correspondence is ordered, so an incoming pair must be permuted to align
// with the vertex order of the class it joins, and classes merged into it
// must be re-expressed in the same frame.

package database

import "github.com/mikenye/geomdb/fact"

// triangleClass is one equivalence class of triangles under a consistent
// vertex correspondence: vertex i of every member corresponds to vertex i
// of every other.
type triangleClass map[fact.Triangle]struct{}

func (c triangleClass) add(t fact.Triangle)           { c[t] = struct{}{} }
func (c triangleClass) contains(t fact.Triangle) bool { _, ok := c[t]; return ok }

// align finds a stored member with the same vertex set as t and returns the
// permutation carrying t onto it.
func (c triangleClass) align(t fact.Triangle) (fact.Perm3, bool) {
	for member := range c {
		if sigma, ok := fact.AlignPerm(t, member); ok {
			return sigma, true
		}
	}
	return fact.IdentityPerm, false
}

// addTrianglePair inserts the correspondence (t1, t2) into the class list
// and returns the updated list.
//
// A class matches when it holds either incoming triangle up to vertex
// order. The first matching class fixes the frame: the permutation aligning
// the matched triangle with its stored copy is applied to both incoming
// triangles before they join. Any further matching class is merged in, its
// members re-permuted from their own frame into the first class's frame so
// the common correspondence order survives.
func addTrianglePair(classes []triangleClass, t1, t2 fact.Triangle) []triangleClass {
	type match struct {
		class int
		sigma fact.Perm3
	}
	var matches []match
	for i, class := range classes {
		if sigma, ok := class.align(t1); ok {
			matches = append(matches, match{class: i, sigma: sigma})
			continue
		}
		if sigma, ok := class.align(t2); ok {
			matches = append(matches, match{class: i, sigma: sigma})
		}
	}

	if len(matches) == 0 {
		class := make(triangleClass, 2)
		class.add(t1)
		class.add(t2)
		return append(classes, class)
	}

	first := matches[0]
	keep := classes[first.class]
	keep.add(t1.Permute(first.sigma))
	keep.add(t2.Permute(first.sigma))

	if len(matches) == 1 {
		return classes
	}

	drop := make(map[int]bool, len(matches)-1)
	for _, m := range matches[1:] {
		// Members of the merged class sit in that class's frame; carry
		// them over through the incoming pair's alignment with each.
		rho := m.sigma.Inverse().Compose(first.sigma)
		for member := range classes[m.class] {
			keep.add(member.Permute(rho))
		}
		drop[m.class] = true
	}

	merged := classes[:0]
	for i, class := range classes {
		if !drop[i] {
			merged = append(merged, class)
		}
	}
	return merged
}

// containsTrianglePair reports whether some class holds both triangles
// under one common relabelling: a permutation applied to both carries them
// onto literal members of a single class.
func containsTrianglePair(classes []triangleClass, t1, t2 fact.Triangle) bool {
	for _, class := range classes {
		for _, sigma := range fact.S3 {
			if class.contains(t1.Permute(sigma)) && class.contains(t2.Permute(sigma)) {
				return true
			}
		}
	}
	return false
}
