package generator

// ColorFromNoise maps a noise byte onto a smooth 3-segment hue ramp,
// producing the RGB color used to paint terrain by noise density. This
// is a direct port of original_source/core/voxels.c's
// getColorFromNoise — see spec.md §6 and DESIGN.md's "Open Question
// resolutions" for the boundary-value discrepancy this port resolves in
// favor of the formula.
func ColorFromNoise(b byte) uint32 {
	c := int(255 - b)
	switch {
	case c < 85:
		return uint32(255-3*c)<<16 | uint32(3*c)
	case c < 170:
		c2 := c - 85
		return uint32(3*c2)<<8 | uint32(255-3*c2)
	default:
		c2 := c - 170
		return uint32(3*c2)<<16 | uint32(255-3*c2)<<8
	}
}
