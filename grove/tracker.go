package grove

// trackerMinBuckets is the smallest bucket count the index is ever sized
// to. Bucket counts are always powers of two so digest hashes reduce by
// masking.
const trackerMinBuckets = 16

// 64 bit FNV-1a parameters, applied over digest bytes for bucket placement.
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// tracker indexes every node ever created, keyed by digest. It owns the
// node arena for the life of the accumulator: nodes are never individually
// released, so ancestry stays addressable after roots merge away.
type tracker struct {
	nodes   []node
	buckets []ref
}

func newTracker() tracker {
	t := tracker{buckets: make([]ref, trackerMinBuckets)}
	for i := range t.buckets {
		t.buckets[i] = noRef
	}
	return t
}

func digestBucket(d Digest, nbuckets int) int {
	h := fnvOffsetBasis
	for _, b := range d {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return int(h & uint64(nbuckets-1))
}

// newNode appends a node record to the arena and indexes it by digest. The
// record is inert until the caller links it: no parent, no children, not on
// the root list.
func (t *tracker) newNode(d Digest, weight uint64) (ref, error) {
	// noRef is reserved as the absent sentinel.
	if uint64(len(t.nodes)) >= uint64(noRef) {
		return noRef, ErrAllocationFailed
	}
	r := ref(len(t.nodes))
	t.nodes = append(t.nodes, node{
		digest:   d,
		weight:   weight,
		parent:   noRef,
		left:     noRef,
		right:    noRef,
		next:     noRef,
		nextRoot: noRef,
	})
	return t.insert(r), nil
}

// insert links the record at r into the digest index, growing the table
// first if occupancy exceeds three quarters of the bucket count. Inserting
// a ref that is already linked returns the existing ref unchanged, so
// repeated registration of the same record is harmless.
func (t *tracker) insert(r ref) ref {
	if len(t.nodes)*4 > len(t.buckets)*3 {
		t.grow()
	}
	b := digestBucket(t.nodes[r].digest, len(t.buckets))
	for cur := t.buckets[b]; cur != noRef; cur = t.nodes[cur].next {
		if cur == r {
			return cur
		}
	}
	t.nodes[r].next = t.buckets[b]
	t.buckets[b] = r
	return r
}

// lookup returns the newest node recorded with digest d.
func (t *tracker) lookup(d Digest) (ref, bool) {
	if len(t.buckets) == 0 {
		return noRef, false
	}
	b := digestBucket(d, len(t.buckets))
	for cur := t.buckets[b]; cur != noRef; cur = t.nodes[cur].next {
		if t.nodes[cur].digest == d {
			return cur, true
		}
	}
	return noRef, false
}

// isCurrentRoot reports whether any node recorded with digest d currently
// has no parent. This is a bucket probe, not a root list walk, so the
// answer costs O(1) regardless of forest shape.
func (t *tracker) isCurrentRoot(d Digest) bool {
	if len(t.buckets) == 0 {
		return false
	}
	b := digestBucket(d, len(t.buckets))
	for cur := t.buckets[b]; cur != noRef; cur = t.nodes[cur].next {
		if t.nodes[cur].digest == d && t.nodes[cur].parent == noRef {
			return true
		}
	}
	return false
}

// cacheWitness records w as the cached witness for the node at r, replacing
// any previous one.
func (t *tracker) cacheWitness(r ref, w *Witness) {
	t.nodes[r].cached = w
}

// grow doubles the bucket count and rehashes every record. Records are
// relinked in arena order, so the newest record with a given digest stays
// first in its chain. The table never shrinks.
func (t *tracker) grow() {
	nbuckets := 2 * len(t.buckets)
	if nbuckets < trackerMinBuckets {
		nbuckets = trackerMinBuckets
	}
	buckets := make([]ref, nbuckets)
	for i := range buckets {
		buckets[i] = noRef
	}
	for i := range t.nodes {
		b := digestBucket(t.nodes[i].digest, nbuckets)
		t.nodes[i].next = buckets[b]
		buckets[b] = ref(i)
	}
	t.buckets = buckets
}

// release drops the arena and the index. Witness values already handed out
// are unaffected.
func (t *tracker) release() {
	t.nodes = nil
	t.buckets = nil
}
