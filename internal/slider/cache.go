package slider

// OffsetCache holds the thumb offset between layout passes. It starts
// Uninitialized and becomes Synced once a non-zero drawable width is known.
type OffsetCache struct {
	offset float64
	synced bool
}

// Offset returns the cached offset and whether the cache is Synced.
func (c OffsetCache) Offset() (float64, bool) {
	return c.offset, c.synced
}

// Synced reports whether an offset has been computed.
func (c OffsetCache) Synced() bool {
	return c.synced
}

// Initialize performs the Uninitialized → Synced transition. It is a no-op
// when the cache is already Synced or the width is still zero, and reports
// whether the transition happened.
func (c *OffsetCache) Initialize(value float64, r Range, width float64) bool {
	if c.synced || !usableWidth(width) {
		return false
	}
	c.offset = ValueToOffset(value, r, width)
	c.synced = true
	return true
}

// Resync recomputes the offset after a value or width change. A zero width
// resets the cache so the next usable width snaps the thumb again.
func (c *OffsetCache) Resync(value float64, r Range, width float64) {
	if !usableWidth(width) {
		c.Reset()
		return
	}
	c.offset = ValueToOffset(value, r, width)
	c.synced = true
}

// Reset returns the cache to Uninitialized.
func (c *OffsetCache) Reset() {
	c.offset = 0
	c.synced = false
}
