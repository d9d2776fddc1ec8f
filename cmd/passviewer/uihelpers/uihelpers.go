package uihelpers

// ComputeChartDimensions scales the base chart size to the available window
// width, keeping its aspect ratio. The result never drops below minW wide.
func ComputeChartDimensions(rawW, baseW, baseH, minW int) (int, int) {
	if baseW <= 0 || baseH <= 0 {
		return 0, 0
	}
	w := rawW
	if w < minW {
		w = minW
	}
	h := int(float64(w) * float64(baseH) / float64(baseW))
	if h < 1 {
		h = 1
	}
	return w, h
}

// ContainRect computes where an imgW×imgH image lands inside a viewW×viewH
// box when drawn with contain-fit: offset, drawn size and scale factor.
func ContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}

// ViewToScene maps a point in view coordinates back into image pixel
// coordinates. ok is false when the point falls outside the drawn image.
func ViewToScene(px, py, imgW, imgH, viewW, viewH float32) (sx, sy float64, ok bool) {
	x, y, w, h, scale := ContainRect(imgW, imgH, viewW, viewH)
	if scale == 0 {
		return 0, 0, false
	}
	if px < x || px > x+w || py < y || py > y+h {
		return 0, 0, false
	}
	return float64((px - x) / scale), float64((py - y) / scale), true
}

// TruncatePath shortens p to at most n runes, keeping the tail.
func TruncatePath(p string, n int) string {
	r := []rune(p)
	if n <= 3 || len(r) <= n {
		return p
	}
	return "..." + string(r[len(r)-(n-3):])
}
