package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StavanShah1402/Music-Recommendation-System/core/spotify"
)

func TestSongAudioFeaturesHandler(t *testing.T) {
	t.Run("Returns Feature Projection", func(t *testing.T) {
		h := newTestHandler()
		h.features.features = &spotify.AudioFeatures{
			URI:          "spotify:track:abc",
			Danceability: 0.9,
			Tempo:        128,
		}

		req := httptest.NewRequest(http.MethodGet, "/song-audio-features?songName=Tum+Hi+Ho", nil)
		rr := httptest.NewRecorder()
		h.SongAudioFeaturesHandler(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}
		if h.features.lastName != "Tum Hi Ho" {
			t.Errorf("expected lookup for %q, got %q", "Tum Hi Ho", h.features.lastName)
		}

		var resp spotify.AudioFeatures
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.URI != "spotify:track:abc" || resp.Danceability != 0.9 {
			t.Errorf("unexpected projection: %+v", resp)
		}
	})

	t.Run("Missing Song Name Rejected", func(t *testing.T) {
		h := newTestHandler()

		req := httptest.NewRequest(http.MethodGet, "/song-audio-features", nil)
		rr := httptest.NewRecorder()
		h.SongAudioFeaturesHandler(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("Token Refresh Ends Request Without Features", func(t *testing.T) {
		h := newTestHandler()
		h.features.err = spotify.ErrTokenRefreshed

		req := httptest.NewRequest(http.MethodGet, "/song-audio-features?songName=x", nil)
		rr := httptest.NewRecorder()
		h.SongAudioFeaturesHandler(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("expected implicit 200, got %d", rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", rr.Body.String())
		}
	})

	t.Run("Lookup Failure Is An Internal Error", func(t *testing.T) {
		h := newTestHandler()
		h.features.err = errors.New("no tracks found")

		req := httptest.NewRequest(http.MethodGet, "/song-audio-features?songName=x", nil)
		rr := httptest.NewRecorder()
		h.SongAudioFeaturesHandler(rr, req)
		if rr.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rr.Code)
		}
	})
}
