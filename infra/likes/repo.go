// Package likes persists the liked product set.
package likes

import (
	"encoding/json"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/logging"
)

// Key is the store key holding the liked set.
const Key = "likedProducts"

// Repo stores liked ids as a JSON array of strings.
type Repo struct {
	kv app.KeyValueStore
}

func NewRepo(kv app.KeyValueStore) *Repo {
	return &Repo{kv: kv}
}

// Load returns the saved ids in order. Missing, unreadable or corrupt data
// loads as the empty set.
func (r *Repo) Load() []domain.ProductID {
	raw, ok, err := r.kv.Get(Key)
	if err != nil {
		logging.Warn("liked set unreadable", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	var ids []domain.ProductID
	if err := json.Unmarshal(raw, &ids); err != nil {
		logging.Warn("liked set corrupt, starting empty", "err", err)
		return nil
	}
	seen := make(map[domain.ProductID]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (r *Repo) Save(ids []domain.ProductID) error {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, string(id))
	}
	data, err := json.Marshal(strs)
	if err != nil {
		return err
	}
	return r.kv.Set(Key, data)
}
