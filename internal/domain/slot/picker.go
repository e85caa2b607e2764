package slot

// Picker implements click-to-extend range selection over one day's slots.
//
// The first click on an available slot anchors a single-slot selection.
// Each later click recomputes the inclusive span between the anchor and
// the clicked slot; if that span contains any unavailable slot the click
// is rejected and the selection kept, unless the clicked slot is the
// current opposite boundary, in which case the selection collapses back
// to empty. A user can therefore shrink a selection that became invalid
// but never jump over a gap.
type Picker struct {
	slots  []Slot
	anchor int
	end    int
}

func NewPicker(slots []Slot) *Picker {
	return &Picker{slots: slots, anchor: -1, end: -1}
}

// Reset swaps in a new slot list (e.g. after a date change) and clears
// any selection.
func (p *Picker) Reset(slots []Slot) {
	p.slots = slots
	p.Clear()
}

func (p *Picker) Clear() {
	p.anchor = -1
	p.end = -1
}

func (p *Picker) HasSelection() bool {
	return p.anchor >= 0 && p.end >= 0
}

// Bounds returns the inclusive low/high index range of the selection.
func (p *Picker) Bounds() (low, high int, ok bool) {
	if !p.HasSelection() {
		return 0, 0, false
	}
	low, high = p.anchor, p.end
	if low > high {
		low, high = high, low
	}
	return low, high, true
}

// Click processes a user click on slot index i. Clicks outside the list
// or on unavailable slots are ignored.
func (p *Picker) Click(i int) {
	if i < 0 || i >= len(p.slots) || !p.slots[i].Available {
		return
	}

	if p.anchor < 0 {
		p.anchor = i
		p.end = i
		return
	}

	low, high := p.anchor, i
	if low > high {
		low, high = high, low
	}
	for j := low; j <= high; j++ {
		if !p.slots[j].Available {
			if i == p.end {
				p.Clear()
			}
			return
		}
	}
	p.end = i
}

// Selection materializes the current range, or nil when nothing is
// selected. The picker only ever holds fully-available spans, so the
// result has AllFree=true by construction.
func (p *Picker) Selection() *Selection {
	low, high, ok := p.Bounds()
	if !ok {
		return nil
	}
	return NewSelection(p.slots, p.slots[low].Start, p.slots[high].End)
}
