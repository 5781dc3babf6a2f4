package engine

import "github.com/lixenwraith/actcore/core"

// SortDrawOrder returns the active slots ordered by ascending z-priority
// Insertion sort keeps equal priorities in table order; the result aliases an internal buffer valid until the next call
func (w *World) SortDrawOrder() []core.Slot {
	n := w.active
	buf := w.drawBuf[:n]
	copy(buf, w.order[:n])

	for i := 1; i < n; i++ {
		s := buf[i]
		z := w.z[s]
		j := i - 1
		for j >= 0 && w.z[buf[j]] > z {
			buf[j+1] = buf[j]
			j--
		}
		buf[j+1] = s
	}
	return buf
}

// Draw invokes the draw behavior of slot against the configured sprite sink
func (w *World) Draw(slot core.Slot) {
	w.behaviors[w.typ[slot]].Draw(Actor{w: w, slot: slot}, w.sprites)
}

// DrawAll sorts and draws every active entity
func (w *World) DrawAll() {
	for _, slot := range w.SortDrawOrder() {
		w.Draw(slot)
	}
}
