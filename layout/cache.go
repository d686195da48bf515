package layout

// cacheCapacity is the number of measurement entries retained per item.
// Flexbox measures a stable child at most three times (flex-basis, flex
// resolution, cross-axis stretch) per layout pass; 16 is carried over from
// the upstream engine's empirical sizing (spec.md §4.3, §9) rather than
// re-derived here.
const cacheCapacity = 16

// cacheTolerance is the maximum per-constraint delta for a cache hit
// (spec.md §3's invariant on measurement cache keys).
const cacheTolerance = 0.0001

// measureCacheEntry is one memoized (constraints -> result) record.
type measureCacheEntry struct {
	minW, maxW, minH, maxH float32
	out                    MeasureOutput
	valid                  bool
}

// measureCache holds up to cacheCapacity entries for a single item, evicted
// round-robin (spec.md §4.3).
type measureCache struct {
	entries  [cacheCapacity]measureCacheEntry
	next     int
	measured bool // at least one successful measurement recorded
}

func closeEnough(a, b float32) bool {
	if !IsDefined(a) && !IsDefined(b) {
		return true
	}
	if IsDefined(a) != IsDefined(b) {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < cacheTolerance
}

// lookup returns a cached result for the given bounds, if present.
func (c *measureCache) lookup(minW, maxW, minH, maxH float32) (MeasureOutput, bool) {
	for _, e := range c.entries {
		if !e.valid {
			continue
		}
		if closeEnough(e.minW, minW) && closeEnough(e.maxW, maxW) &&
			closeEnough(e.minH, minH) && closeEnough(e.maxH, maxH) {
			return e.out, true
		}
	}
	return MeasureOutput{}, false
}

// store records a fresh measurement, evicting the oldest slot round-robin.
func (c *measureCache) store(minW, maxW, minH, maxH float32, out MeasureOutput) {
	c.entries[c.next] = measureCacheEntry{
		minW: minW, maxW: maxW, minH: minH, maxH: maxH,
		out: out, valid: true,
	}
	c.next = (c.next + 1) % cacheCapacity
	c.measured = true
}
