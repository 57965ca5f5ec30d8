package neuron

// List is an ordered collection of neurons.
type List []Neuron

// Len returns the number of neurons in the list.
func (l List) Len() int { return len(l) }

// IDs returns the neuron IDs in order.
func (l List) IDs() []string {
	ids := make([]string, len(l))
	for i, n := range l {
		ids[i] = n.ID()
	}
	return ids
}

// Combine flattens batch results back into a single List: every result must
// be a Neuron or a List (nested lists are spliced in order). It reports
// ok=false when any result is neither, leaving assembly to the caller. This
// satisfies the batch package's Combiner without importing it.
func (l List) Combine(results []any) (any, bool) {
	flat := make(List, 0, len(results))
	for _, r := range results {
		switch v := r.(type) {
		case Neuron:
			flat = append(flat, v)
		case List:
			flat = append(flat, v...)
		default:
			return nil, false
		}
	}
	return flat, true
}
