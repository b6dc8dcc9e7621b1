package server

import (
	"net/http"
	"reflect"
	"testing"
)

func sampleMusicData() musicData {
	return musicData{
		ID:             "saavn123",
		Name:           "Tum Hi Ho &amp; Friends",
		Duration:       262,
		PrimaryArtists: "Arijit Singh",
		Language:       "hindi",
		URL:            "https://example.com/song/saavn123",
		Image: []linkVariant{
			{Quality: "50x50", Link: "https://img.example.com/50.jpg"},
			{Quality: "150x150", Link: "https://img.example.com/150.jpg"},
			{Quality: "500x500", Link: "https://img.example.com/500.jpg"},
		},
		DownloadURL: []linkVariant{
			{Quality: "12kbps", Link: "https://dl.example.com/12.mp4"},
			{Quality: "48kbps", Link: "https://dl.example.com/48.mp4"},
			{Quality: "96kbps", Link: "https://dl.example.com/96.mp4"},
			{Quality: "160kbps", Link: "https://dl.example.com/160.mp4"},
			{Quality: "320kbps", Link: "https://dl.example.com/320.mp4"},
		},
		URI:           "spotify:track:abc123",
		Acousticness:  0.2,
		Danceability:  0.7,
		DurationMS:    262000,
		Energy:        0.6,
		Key:           3,
		Mode:          1,
		Tempo:         98.2,
		TimeSignature: 4,
		Valence:       0.4,
	}
}

func TestAddMusicHandler(t *testing.T) {
	wrap := func(md musicData) map[string]interface{} {
		return map[string]interface{}{"musicData": md}
	}

	t.Run("Stores New Track", func(t *testing.T) {
		h := newTestHandler()

		rr := postJSON(t, h.AddMusicHandler, "/addMusic", wrap(sampleMusicData()))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}

		stored, err := h.tracks.GetTrackByTrackID("saavn123")
		if err != nil || stored == nil {
			t.Fatalf("expected stored track, got %v, %v", stored, err)
		}
		if stored.TrackName != "Tum Hi Ho & Friends" {
			t.Errorf("expected HTML entities decoded, got %q", stored.TrackName)
		}
		if stored.TrackImage != "https://img.example.com/500.jpg" {
			t.Errorf("expected third image variant, got %q", stored.TrackImage)
		}
		if stored.DownloadURL != "https://dl.example.com/320.mp4" {
			t.Errorf("expected fifth download variant, got %q", stored.DownloadURL)
		}
		if stored.SpotifyTrackID != "abc123" {
			t.Errorf("expected spotify id from URI, got %q", stored.SpotifyTrackID)
		}
		if stored.PlayCount != 0 {
			t.Errorf("expected play_count 0, got %d", stored.PlayCount)
		}
	})

	t.Run("Duplicate Insert Is A Silent No-Op", func(t *testing.T) {
		h := newTestHandler()

		if rr := postJSON(t, h.AddMusicHandler, "/addMusic", wrap(sampleMusicData())); rr.Code != http.StatusOK {
			t.Fatalf("first insert failed: %d", rr.Code)
		}
		before, _ := h.tracks.GetTrackByTrackID("saavn123")
		writes := h.tracks.createCalls

		dup := sampleMusicData()
		dup.Name = "A Different Name"
		rr := postJSON(t, h.AddMusicHandler, "/addMusic", wrap(dup))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Errorf("expected empty body on duplicate, got %q", rr.Body.String())
		}
		if h.tracks.createCalls != writes {
			t.Error("expected no write on duplicate insert")
		}

		after, _ := h.tracks.GetTrackByTrackID("saavn123")
		if !reflect.DeepEqual(before, after) {
			t.Errorf("expected existing record unchanged: before %+v, after %+v", before, after)
		}
	})

	t.Run("Short Link Lists Rejected", func(t *testing.T) {
		h := newTestHandler()

		md := sampleMusicData()
		md.DownloadURL = md.DownloadURL[:2]
		rr := postJSON(t, h.AddMusicHandler, "/addMusic", wrap(md))
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("Malformed URI Leaves Spotify ID Empty", func(t *testing.T) {
		h := newTestHandler()

		md := sampleMusicData()
		md.ID = "saavn456"
		md.URI = "garbage"
		rr := postJSON(t, h.AddMusicHandler, "/addMusic", wrap(md))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		stored, _ := h.tracks.GetTrackByTrackID("saavn456")
		if stored.SpotifyTrackID != "" {
			t.Errorf("expected empty spotify id, got %q", stored.SpotifyTrackID)
		}
	})

	t.Run("Missing ID Rejected", func(t *testing.T) {
		h := newTestHandler()

		md := sampleMusicData()
		md.ID = ""
		rr := postJSON(t, h.AddMusicHandler, "/addMusic", wrap(md))
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})
}
