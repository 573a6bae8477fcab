package poll

import "waitlist-engine/internal/domain"

type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeMoved   ChangeKind = "moved"
)

type Change struct {
	Key           domain.ApartmentKey `json:"key"`
	Kind          ChangeKind          `json:"kind"`
	OldPosition   int                 `json:"old_position"`
	NewPosition   int                 `json:"new_position"`
	VariantString string              `json:"variant_string"`
}

// Diff lists position changes from prev to next: added and moved entries in
// next's order, then removed entries in prev's order. A nil prev means
// everything in next is added.
func Diff(prev, next *domain.Apartments) []Change {
	var out []Change
	for _, e := range next.Entries() {
		old, ok := prev.Get(e.Key)
		switch {
		case !ok:
			out = append(out, Change{Key: e.Key, Kind: ChangeAdded, NewPosition: e.Record.Position, VariantString: e.Record.VariantString})
		case old.Position != e.Record.Position:
			out = append(out, Change{Key: e.Key, Kind: ChangeMoved, OldPosition: old.Position, NewPosition: e.Record.Position, VariantString: e.Record.VariantString})
		}
	}
	for _, e := range prev.Entries() {
		if _, ok := next.Get(e.Key); !ok {
			out = append(out, Change{Key: e.Key, Kind: ChangeRemoved, OldPosition: e.Record.Position, VariantString: e.Record.VariantString})
		}
	}
	return out
}
