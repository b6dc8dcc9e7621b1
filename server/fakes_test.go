package server

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/StavanShah1402/Music-Recommendation-System/cache"
	"github.com/StavanShah1402/Music-Recommendation-System/config"
	"github.com/StavanShah1402/Music-Recommendation-System/core/auth"
	"github.com/StavanShah1402/Music-Recommendation-System/core/spotify"
	"github.com/StavanShah1402/Music-Recommendation-System/model"
	"github.com/StavanShah1402/Music-Recommendation-System/repository"
)

func TestMain(m *testing.M) {
	auth.Init("test-secret")
	os.Exit(m.Run())
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users       map[string]*model.User // keyed by email
	nextID      int64
	createCalls int
	failWith    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *model.User) (int64, error) {
	r.createCalls++
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, exists := r.users[user.Email]; exists {
		return 0, fmt.Errorf("email %s: %w", user.Email, repository.ErrDuplicateUser)
	}
	u := *user
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.nextID++
	r.users[u.Email] = &u
	return u.ID, nil
}

func (r *fakeUserRepo) GetUserByID(id int64) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// fakeTrackRepo is an in-memory TrackRepository.
type fakeTrackRepo struct {
	tracks      map[string]*model.Track // keyed by external track_id
	nextID      int64
	createCalls int
	failWith    error
}

func newFakeTrackRepo() *fakeTrackRepo {
	return &fakeTrackRepo{tracks: make(map[string]*model.Track), nextID: 1}
}

func (r *fakeTrackRepo) CreateTrack(track *model.Track) (int64, error) {
	r.createCalls++
	if r.failWith != nil {
		return 0, r.failWith
	}
	t := *track
	t.ID = r.nextID
	r.nextID++
	r.tracks[t.TrackID] = &t
	return t.ID, nil
}

func (r *fakeTrackRepo) GetTrackByTrackID(trackID string) (*model.Track, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	t, ok := r.tracks[trackID]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

// fakeFeatures returns canned audio features or a canned error.
type fakeFeatures struct {
	features *spotify.AudioFeatures
	err      error
	lastName string
}

func (f *fakeFeatures) TrackAudioFeatures(_ context.Context, name string) (*spotify.AudioFeatures, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return f.features, nil
}

// testHandler bundles an APIHandler with its fakes.
type testHandler struct {
	*APIHandler
	users    *fakeUserRepo
	tracks   *fakeTrackRepo
	history  *cache.MemoryHistory
	features *fakeFeatures
}

func newTestHandler() *testHandler {
	users := newFakeUserRepo()
	tracks := newFakeTrackRepo()
	history := cache.NewMemoryHistory()
	features := &fakeFeatures{}
	return &testHandler{
		APIHandler: NewAPIHandler(users, tracks, history, features, &config.Config{}),
		users:      users,
		tracks:     tracks,
		history:    history,
		features:   features,
	}
}
