package canvas

// ClampAxis applies the bounds policy along one axis. An image smaller than
// the view is centred; a larger one may not expose space past its edges.
// Returns offset unchanged when the image size is unknown.
func ClampAxis(offset, scale, imageSize, viewSize float64) float64 {
	if imageSize <= 0 {
		return offset
	}
	extent := imageSize * scale
	if extent <= viewSize {
		return (viewSize - extent) / 2
	}
	return clamp(offset, viewSize-extent, 0)
}

// ClampOffsets applies ClampAxis to both axes. It is a no-op until both
// natural image dimensions are known.
func ClampOffsets(offsetX, offsetY, scale, imageW, imageH, viewW, viewH float64) (float64, float64) {
	if imageW <= 0 || imageH <= 0 {
		return offsetX, offsetY
	}
	return ClampAxis(offsetX, scale, imageW, viewW), ClampAxis(offsetY, scale, imageH, viewH)
}
