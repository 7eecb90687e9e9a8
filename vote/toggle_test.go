package vote

import (
	"errors"
	"testing"
)

// fakeStore is an in-memory Store with error injection for the toggle tests.
type fakeStore struct {
	records map[string]Kind // key: userID + "|" + songID

	createErr error // returned by the next Create, then cleared
	getErr    error
	listErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]Kind)}
}

func key(userID, songID string) string { return userID + "|" + songID }

func (f *fakeStore) Get(userID, songID string) (Kind, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	k, ok := f.records[key(userID, songID)]
	return k, ok, nil
}

func (f *fakeStore) Create(userID, songID string, k Kind) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	if _, exists := f.records[key(userID, songID)]; exists {
		return ErrConflict
	}
	f.records[key(userID, songID)] = k
	return nil
}

func (f *fakeStore) Update(userID, songID string, k Kind) error {
	f.records[key(userID, songID)] = k
	return nil
}

func (f *fakeStore) Delete(userID, songID string) error {
	delete(f.records, key(userID, songID))
	return nil
}

func (f *fakeStore) ListBySong(songID string) ([]Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Record
	for k, kind := range f.records {
		rec := recordFromKey(k, kind)
		if rec.SongID == songID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByUser(userID string) ([]Record, error) {
	var out []Record
	for k, kind := range f.records {
		rec := recordFromKey(k, kind)
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAll() ([]Record, error) {
	var out []Record
	for k, kind := range f.records {
		out = append(out, recordFromKey(k, kind))
	}
	return out, nil
}

func recordFromKey(k string, kind Kind) Record {
	for i := 0; i < len(k); i++ {
		if k[i] == '|' {
			return Record{UserID: k[:i], SongID: k[i+1:], Kind: kind}
		}
	}
	return Record{}
}

func TestToggleCreatesThenRemoves(t *testing.T) {
	store := newFakeStore()

	res, err := Toggle(store, "u1", "s1", Like)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if res.Likes != 1 || res.Dislikes != 0 {
		t.Errorf("Expected counts 1/0, got %d/%d", res.Likes, res.Dislikes)
	}
	if res.UserVote == nil || *res.UserVote != Like {
		t.Errorf("Expected userVote like, got %v", res.UserVote)
	}

	// Same action again toggles the vote off
	res, err = Toggle(store, "u1", "s1", Like)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if res.Likes != 0 || res.Dislikes != 0 {
		t.Errorf("Expected counts 0/0, got %d/%d", res.Likes, res.Dislikes)
	}
	if res.UserVote != nil {
		t.Errorf("Expected no userVote after toggle-off, got %v", *res.UserVote)
	}
	if len(store.records) != 0 {
		t.Errorf("Expected no stored records, got %d", len(store.records))
	}
}

func TestToggleSwitchReplaces(t *testing.T) {
	store := newFakeStore()

	if _, err := Toggle(store, "u1", "s1", Like); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	res, err := Toggle(store, "u1", "s1", Dislike)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if res.Likes != 0 || res.Dislikes != 1 {
		t.Errorf("Expected counts 0/1, got %d/%d", res.Likes, res.Dislikes)
	}
	if res.UserVote == nil || *res.UserVote != Dislike {
		t.Errorf("Expected userVote dislike, got %v", res.UserVote)
	}
	if len(store.records) != 1 {
		t.Errorf("Expected exactly one stored record, got %d", len(store.records))
	}
}

func TestToggleRecoversFromConflict(t *testing.T) {
	store := newFakeStore()

	// Simulate a concurrent create landing between Get and Create: the
	// first Create collides, and the record is already there for the retry.
	store.createErr = ErrConflict
	store.records[key("u1", "s1")] = Like

	res, err := Toggle(store, "u1", "s1", Like)
	if err != nil {
		t.Fatalf("Toggle should recover from one conflict: %v", err)
	}

	// The retry re-reads Liked and the like action now toggles off.
	if res.UserVote != nil {
		t.Errorf("Expected toggle-off after retry, got userVote %v", *res.UserVote)
	}
	if len(store.records) != 0 {
		t.Errorf("Expected no stored records after retry, got %d", len(store.records))
	}
}

func TestTogglePropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection lost")

	if _, err := Toggle(store, "u1", "s1", Like); err == nil {
		t.Error("Expected error when Get fails")
	}

	store = newFakeStore()
	store.listErr = errors.New("connection lost")

	if _, err := Toggle(store, "u1", "s1", Like); err == nil {
		t.Error("Expected error when the recount fails")
	}
}
