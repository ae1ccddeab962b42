package feed

import (
	"sync"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
)

// likedSet is shared by value copies of Model; Bubble Tea copies the model
// on every update but the set must not fork.
type likedSet struct {
	order []domain.ProductID
	set   map[domain.ProductID]bool
	rev   uint64 // bumped on every change

	// Saves run on command goroutines in any order; savedRev drops a
	// snapshot older than one already written.
	saveMu   sync.Mutex
	savedRev uint64
}

func loadLikedSet(store app.LikeStore) *likedSet {
	s := &likedSet{set: map[domain.ProductID]bool{}}
	if store == nil {
		return s
	}
	for _, id := range store.Load() {
		s.add(id)
	}
	return s
}

func (s *likedSet) has(id domain.ProductID) bool {
	return s.set[id]
}

// add reports whether id was newly added.
func (s *likedSet) add(id domain.ProductID) bool {
	if id == "" || s.set[id] {
		return false
	}
	s.set[id] = true
	s.order = append(s.order, id)
	s.rev++
	return true
}

func (s *likedSet) remove(id domain.ProductID) {
	if !s.set[id] {
		return
	}
	delete(s.set, id)
	s.rev++
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// toggle flips id and reports whether it is now liked.
func (s *likedSet) toggle(id domain.ProductID) bool {
	if s.has(id) {
		s.remove(id)
		return false
	}
	return s.add(id)
}

func (s *likedSet) ids() []domain.ProductID {
	return append([]domain.ProductID(nil), s.order...)
}

// snapshot captures the ids with the revision they belong to.
func (s *likedSet) snapshot() likesSnapshot {
	return likesSnapshot{ids: s.ids(), rev: s.rev}
}

type likesSnapshot struct {
	ids []domain.ProductID
	rev uint64
}

// save writes snap unless a newer snapshot was already written. Writes are
// serialized, so the store always ends on the latest revision.
func (s *likedSet) save(store app.LikeStore, snap likesSnapshot) (written bool, err error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if snap.rev <= s.savedRev {
		return false, nil
	}
	s.savedRev = snap.rev
	return true, store.Save(snap.ids)
}

// displayedLikes adds the viewer's own like to the seeded count.
func displayedLikes(p domain.Product, liked bool) int {
	n := domain.SeededEngagement(p).Likes
	if liked {
		n++
	}
	return n
}
