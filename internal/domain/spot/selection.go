package spot

// Selection keeps the fetched spots in backend order together with their selection state.
type Selection struct {
	items []SelectableSpot
}

func NewSelection(spots []Spot) Selection {
	items := make([]SelectableSpot, len(spots))
	for i, s := range spots {
		items[i] = SelectableSpot{Spot: s}
	}
	return Selection{items: items}
}

// Toggle flips the selection of the spot with the given id.
// Full spots cannot be toggled on; an already selected spot that became full can still be released.
func (s *Selection) Toggle(id int64) error {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].IsFull && !s.items[i].Selected {
			return ErrSpotFull
		}
		s.items[i].Selected = !s.items[i].Selected
		return nil
	}
	return ErrSpotNotFound
}

func (s Selection) Items() []SelectableSpot {
	out := make([]SelectableSpot, len(s.items))
	copy(out, s.items)
	return out
}

func (s Selection) Clone() Selection {
	return Selection{items: s.Items()}
}

func (s Selection) Count() int {
	n := 0
	for _, it := range s.items {
		if it.Selected {
			n++
		}
	}
	return n
}

func (s Selection) IDs() []int64 {
	ids := make([]int64, 0, len(s.items))
	for _, it := range s.items {
		if it.Selected {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func (s *Selection) Clear() {
	for i := range s.items {
		s.items[i].Selected = false
	}
}

// Refresh replaces the spot data with a newer fetch, keeping the selection of spots
// that are still listed and not full.
func (s *Selection) Refresh(spots []Spot) {
	prev := make(map[int64]bool, len(s.items))
	for _, it := range s.items {
		if it.Selected {
			prev[it.ID] = true
		}
	}
	next := NewSelection(spots)
	for i := range next.items {
		if prev[next.items[i].ID] && !next.items[i].IsFull {
			next.items[i].Selected = true
		}
	}
	*s = next
}

type Group struct {
	Label string
	Spots []SelectableSpot
}

// GroupByShow buckets spots under their GroupKey, in first-seen order.
func (s Selection) GroupByShow() []Group {
	var groups []Group
	index := make(map[string]int)
	for _, it := range s.items {
		key := it.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Label: key})
		}
		groups[i].Spots = append(groups[i].Spots, it)
	}
	return groups
}
