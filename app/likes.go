package app

import "github.com/productfinder/productfinder/domain"

// KeyValueStore is a small persistent keyed store.
type KeyValueStore interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// LikeStore persists the ordered set of liked product ids.
type LikeStore interface {
	// Load never fails on corrupt data; it returns an empty set instead.
	Load() []domain.ProductID
	Save(ids []domain.ProductID) error
}
