package gestures

import "github.com/google/btree"

// contactTreeDegree tunes the backing b-tree for the expected contact
// count (a human hand tops out around 10 simultaneous touches).
const contactTreeDegree = 4

// Contact is a live touch point identified by slot: a caller-supplied
// integer that stays stable across Down and the matching Up.
type Contact struct {
	Slot    int
	Start   Point
	Current Point
}

// Less implements btree.Item, ordering contacts by slot.
func (c *Contact) Less(than btree.Item) bool {
	return c.Slot < than.(*Contact).Slot
}

// contactSet is a small ordered container of live contacts keyed by slot,
// giving ordered iteration over an "expected size ~10" working set for
// free, with O(log n) insert/remove on Down/Up.
type contactSet struct {
	tree *btree.BTree
}

func newContactSet() *contactSet {
	return &contactSet{tree: btree.New(contactTreeDegree)}
}

func (s *contactSet) insert(c *Contact) {
	s.tree.ReplaceOrInsert(c)
}

func (s *contactSet) remove(slot int) {
	s.tree.Delete(&Contact{Slot: slot})
}

func (s *contactSet) get(slot int) (*Contact, bool) {
	item := s.tree.Get(&Contact{Slot: slot})
	if item == nil {
		return nil, false
	}
	return item.(*Contact), true
}

func (s *contactSet) len() int {
	return s.tree.Len()
}

func (s *contactSet) reset() {
	s.tree = btree.New(contactTreeDegree)
}

// slice returns the live contacts ordered by slot.
func (s *contactSet) slice() []*Contact {
	out := make([]*Contact, 0, s.tree.Len())
	s.tree.Ascend(func(item btree.Item) bool {
		out = append(out, item.(*Contact))
		return true
	})
	return out
}
