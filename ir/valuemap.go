package ir

// ValueMap is an associative view over a map Value, keyed by whole Values
// via Hash and Equal. Building one resolves duplicate keys: the last
// entry for a key wins. The view borrows the source tree; it copies
// nothing and must not outlive mutation of the source.
type ValueMap struct {
	buckets map[uint64][]KeyVal
	size    int
}

// NewValueMap builds the view. ok is false when v is not a map.
func NewValueMap(v *Value) (*ValueMap, bool) {
	if v.Type != MapType {
		return nil, false
	}
	m := &ValueMap{buckets: make(map[uint64][]KeyVal, len(v.Pairs))}
	for i := range v.Pairs {
		m.put(v.Pairs[i])
	}
	return m, true
}

func (m *ValueMap) put(kv KeyVal) {
	h := kv.Key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if Equal(bucket[i].Key, kv.Key) {
			bucket[i].Val = kv.Val
			return
		}
	}
	m.buckets[h] = append(bucket, kv)
	m.size++
}

// Get returns the value stored under key.
func (m *ValueMap) Get(key *Value) (*Value, bool) {
	bucket := m.buckets[key.Hash()]
	for i := range bucket {
		if Equal(bucket[i].Key, key) {
			return bucket[i].Val, true
		}
	}
	return nil, false
}

// Len returns the number of distinct keys.
func (m *ValueMap) Len() int {
	return m.size
}
