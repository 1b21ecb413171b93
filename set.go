package boolexpr

import "math/big"

// Bucket counts for the hashed containers come from an ascending primes
// table, computed once at startup and bounded at a maximum index.

const maxPrimeIndex = 28

var primes [maxPrimeIndex + 1]int

func init() {
	p := 7
	for i := range primes {
		primes[i] = p
		p = primeGTE(2*p + 1)
	}
}

func hasFactor(src int, n int) bool {
	return src != n && src%n == 0
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) ||
		hasFactor(src, 11) || hasFactor(src, 13)
}

// primeGTE returns the smallest prime greater than or equal to src.
func primeGTE(src int) int {
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src += 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}

// entry is one link of a bucket chain. The container owns one reference to
// the key and, for Dict entries, one to the value.
type entry struct {
	key   *BoolExpr
	value *BoolExpr
	next  *entry
}

// table is the chained hash table shared by Set and Dict. Keys are hashed and
// compared by node identity: two keys collide only if they are the same node.
type table struct {
	buckets  []*entry
	length   int
	primeIdx int
}

func newTable() table {
	return table{buckets: make([]*entry, primes[0])}
}

func (t *table) bucket(key *BoolExpr) int {
	return int(key.id % uint64(len(t.buckets)))
}

func (t *table) search(key *BoolExpr) *entry {
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// insert adds or overwrites the entry for key. hasValue distinguishes Dict
// entries, which own a value reference, from Set entries, which carry none.
func (t *table) insert(key, value *BoolExpr, hasValue bool) {
	if e := t.search(key); e != nil {
		if hasValue && e.value != value {
			value.IncRef()
			e.value.DecRef()
			e.value = value
		}
		return
	}
	e := &entry{key: key.IncRef()}
	if hasValue {
		e.value = value.IncRef()
	}
	i := t.bucket(key)
	e.next = t.buckets[i]
	t.buckets[i] = e
	t.length++
	if 2*t.length > 3*len(t.buckets) && t.primeIdx < maxPrimeIndex {
		t.grow()
	}
}

func (t *table) grow() {
	t.primeIdx++
	old := t.buckets
	t.buckets = make([]*entry, primes[t.primeIdx])
	for _, e := range old {
		for e != nil {
			next := e.next
			i := t.bucket(e.key)
			e.next = t.buckets[i]
			t.buckets[i] = e
			e = next
		}
	}
}

func (t *table) remove(key *BoolExpr) bool {
	i := t.bucket(key)
	for p := &t.buckets[i]; *p != nil; p = &(*p).next {
		e := *p
		if e.key == key {
			*p = e.next
			e.key.DecRef()
			if e.value != nil {
				e.value.DecRef()
			}
			t.length--
			return true
		}
	}
	return false
}

func (t *table) clear() {
	for i, e := range t.buckets {
		for e != nil {
			e.key.DecRef()
			if e.value != nil {
				e.value.DecRef()
			}
			e = e.next
		}
		t.buckets[i] = nil
	}
	t.length = 0
}

// Set is a hashed set of nodes keyed by identity. The set owns one reference
// to every member.
type Set struct {
	t table
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{t: newTable()}
}

// Len returns the number of members.
func (s *Set) Len() int { return s.t.length }

// Insert adds x to the set. Inserting a member again is a no-op.
func (s *Set) Insert(x *BoolExpr) {
	s.t.insert(x, nil, false)
}

// Remove deletes x from the set, releasing the set's reference. It returns
// false if x was not a member.
func (s *Set) Remove(x *BoolExpr) bool {
	return s.t.remove(x)
}

// Contains returns true if x is a member.
func (s *Set) Contains(x *BoolExpr) bool {
	return s.t.search(x) != nil
}

// Clear removes all members, releasing the set's references.
func (s *Set) Clear() {
	s.t.clear()
}

// Range calls f for every member until f returns false. The order is
// unspecified but stable for a given table state. The only mutation allowed
// during iteration is Remove of the current member.
func (s *Set) Range(f func(x *BoolExpr) bool) {
	for _, e := range s.t.buckets {
		for e != nil {
			next := e.next
			if !f(e.key) {
				return
			}
			e = next
		}
	}
}

// items returns a snapshot of the members in iteration order.
func (s *Set) items() []*BoolExpr {
	a := make([]*BoolExpr, 0, s.t.length)
	s.Range(func(x *BoolExpr) bool {
		a = append(a, x)
		return true
	})
	return a
}

// LTE returns true if s is a subset of other.
func (s *Set) LTE(other *Set) bool {
	if s.Len() > other.Len() {
		return false
	}
	ok := true
	s.Range(func(x *BoolExpr) bool {
		if !other.Contains(x) {
			ok = false
		}
		return ok
	})
	return ok
}

// EQ returns true if s and other hold the same members.
func (s *Set) EQ(other *Set) bool {
	return s.Len() == other.Len() && s.LTE(other)
}

// NE returns true if s and other differ.
func (s *Set) NE(other *Set) bool { return !s.EQ(other) }

// LT returns true if s is a proper subset of other.
func (s *Set) LT(other *Set) bool {
	return s.Len() < other.Len() && s.LTE(other)
}

// GTE returns true if s is a superset of other.
func (s *Set) GTE(other *Set) bool { return other.LTE(s) }

// GT returns true if s is a proper superset of other.
func (s *Set) GT(other *Set) bool { return other.LT(s) }

// Dict is a hashed map from node to node keyed by identity. The dict owns one
// reference to every key and every value.
type Dict struct {
	t table
}

// NewDict returns an empty dict.
func NewDict() *Dict {
	return &Dict{t: newTable()}
}

// Len returns the number of entries.
func (d *Dict) Len() int { return d.t.length }

// Insert maps key to value, overwriting any previous value for key.
func (d *Dict) Insert(key, value *BoolExpr) {
	d.t.insert(key, value, true)
}

// Get returns the value mapped to key.
func (d *Dict) Get(key *BoolExpr) (*BoolExpr, bool) {
	if e := d.t.search(key); e != nil {
		return e.value, true
	}
	return nil, false
}

// Remove deletes the entry for key. It returns false if key was not present.
func (d *Dict) Remove(key *BoolExpr) bool {
	return d.t.remove(key)
}

// Contains returns true if key has an entry.
func (d *Dict) Contains(key *BoolExpr) bool {
	return d.t.search(key) != nil
}

// Clear removes all entries, releasing the dict's references.
func (d *Dict) Clear() {
	d.t.clear()
}

// Range calls f for every entry until f returns false.
func (d *Dict) Range(f func(key, value *BoolExpr) bool) {
	for _, e := range d.t.buckets {
		for e != nil {
			next := e.next
			if !f(e.key, e.value) {
				return
			}
			e = next
		}
	}
}
