package likes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
)

type memStore struct {
	values map[string][]byte
	getErr error
}

func (m *memStore) Get(key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(key string, value []byte) error {
	if m.values == nil {
		m.values = map[string][]byte{}
	}
	m.values[key] = value
	return nil
}

var _ app.LikeStore = (*Repo)(nil)

func TestRepo_SaveAndLoad(t *testing.T) {
	kv := &memStore{}
	r := NewRepo(kv)
	want := []domain.ProductID{"3", "1", "abc"}
	if err := r.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if string(kv.values[Key]) != `["3","1","abc"]` {
		t.Fatalf("unexpected stored form %q", kv.values[Key])
	}
	if diff := cmp.Diff(want, r.Load()); diff != "" {
		t.Fatalf("load mismatch (-want +got):\n%s", diff)
	}
}

func TestRepo_ToleratesBadData(t *testing.T) {
	cases := map[string]*memStore{
		"missing":   {},
		"corrupt":   {values: map[string][]byte{Key: []byte("{nope")}},
		"wrongType": {values: map[string][]byte{Key: []byte(`{"a":1}`)}},
		"readErr":   {getErr: errors.New("disk gone")},
	}
	for name, kv := range cases {
		if got := NewRepo(kv).Load(); len(got) != 0 {
			t.Fatalf("%s: expected empty set, got %v", name, got)
		}
	}
}

func TestRepo_NumericIDsAndDuplicates(t *testing.T) {
	kv := &memStore{values: map[string][]byte{Key: []byte(`[1,"1",2,null]`)}}
	got := NewRepo(kv).Load()
	if diff := cmp.Diff([]domain.ProductID{"1", "2"}, got); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}
