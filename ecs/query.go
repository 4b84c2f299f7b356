package ecs

// intersect returns slot ids present in every set, iterating the smallest.
func intersect(sets ...*SparseSet) []entityID {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil || s.Len() == 0 {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]entityID, 0, sets[smallest].Len())
	for _, id := range sets[smallest].ids() {
		ok := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}
