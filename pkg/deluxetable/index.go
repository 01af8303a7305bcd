package deluxetable

// Index assigns 1-based ranks to citation keys in order of first appearance.
// A fresh Index is built for every conversion.
type Index struct {
	ranks  map[string]int
	keys   []string
	counts []int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{ranks: make(map[string]int)}
}

// BuildIndex ranks the keys of sets, which are ordered row by row and,
// within a row, column by column.
func BuildIndex(sets [][][]string) *Index {
	idx := NewIndex()
	for _, row := range sets {
		for _, keys := range row {
			for _, key := range keys {
				idx.Add(key)
			}
		}
	}
	return idx
}

// Add returns the rank of key, assigning the next one if the key is new.
func (x *Index) Add(key string) int {
	if rank, ok := x.ranks[key]; ok {
		x.counts[rank-1]++
		return rank
	}
	x.keys = append(x.keys, key)
	x.counts = append(x.counts, 1)
	x.ranks[key] = len(x.keys)
	return len(x.keys)
}

// Rank looks up the rank of key.
func (x *Index) Rank(key string) (int, bool) {
	rank, ok := x.ranks[key]
	return rank, ok
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	return len(x.keys)
}

// Entries returns the references in rank order.
func (x *Index) Entries() []Reference {
	refs := make([]Reference, len(x.keys))
	for i, key := range x.keys {
		refs[i] = Reference{Rank: i + 1, Key: key, Count: x.counts[i]}
	}
	return refs
}
