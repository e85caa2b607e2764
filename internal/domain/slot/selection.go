package slot

import "time"

// DefaultCurrency is assumed when no slot in a selection carries one.
const DefaultCurrency = "ARS"

// Selection is a contiguous run of slots chosen as a single prospective
// booking. It is derived and transient: recomputed from scratch on every
// change to the slot list or the boundary instants, never mutated.
type Selection struct {
	Start      time.Time
	End        time.Time
	Count      int
	AllFree    bool
	TotalPrice *float64
	Currency   string
	Items      []Slot
}

// NewSelection derives a Selection from two boundary instants. The
// boundaries are matched by value against slot Start/End timestamps, in
// either order, so a caller can anchor on either end of the range. A
// boundary that matches no slot means "nothing selected" and yields nil;
// malformed input is never an error.
//
// AllFree is computed over the entire candidate range: an unavailable
// slot strictly inside the range surfaces as AllFree=false so the caller
// can block submission, distinct from the nil "no selection" case.
// TotalPrice is nil unless every slot in range carries a price; a
// partial sum would understate the real total.
func NewSelection(slots []Slot, startBoundary, endBoundary time.Time) *Selection {
	if len(slots) == 0 {
		return nil
	}

	startIdx, endIdx := -1, -1
	for i, s := range slots {
		if startIdx < 0 && s.Start.Equal(startBoundary) {
			startIdx = i
		}
		if endIdx < 0 && s.End.Equal(endBoundary) {
			endIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 {
		return nil
	}

	low, high := startIdx, endIdx
	if low > high {
		low, high = high, low
	}

	items := make([]Slot, high-low+1)
	copy(items, slots[low:high+1])

	allFree := true
	var total float64
	pricedCount := 0
	currency := ""
	for _, s := range items {
		if !s.Available {
			allFree = false
		}
		if s.PricePerSlot != nil {
			total += *s.PricePerSlot
			pricedCount++
		}
		if currency == "" && s.Currency != "" {
			currency = s.Currency
		}
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	var totalPrice *float64
	if pricedCount == len(items) {
		totalPrice = &total
	}

	return &Selection{
		Start:      items[0].Start,
		End:        items[len(items)-1].End,
		Count:      len(items),
		AllFree:    allFree,
		TotalPrice: totalPrice,
		Currency:   currency,
		Items:      items,
	}
}

func (s *Selection) Duration() time.Duration {
	if s == nil {
		return 0
	}
	return s.End.Sub(s.Start)
}
