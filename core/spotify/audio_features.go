package spotify

import (
	"context"
	"fmt"
	"net/url"
)

// AudioFeatures is the fixed projection of audio-feature fields served
// to clients.
type AudioFeatures struct {
	URI              string  `json:"uri"`
	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	DurationMS       int     `json:"duration_ms"`
	Energy           float64 `json:"energy"`
	Instrumentalness float64 `json:"instrumentalness"`
	Key              int     `json:"key"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
	Valence          float64 `json:"valence"`
}

// searchTrack searches the catalog with a `track:` filter and returns
// the first match's ID.
func (c *Client) searchTrack(ctx context.Context, token, name string) (string, error) {
	endpoint := fmt.Sprintf("/search?q=%s&type=track", url.QueryEscape("track:"+name))

	var result struct {
		Tracks struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		} `json:"tracks"`
	}

	if err := c.doRequest(ctx, token, endpoint, &result); err != nil {
		return "", fmt.Errorf("failed to search for track %q: %w", name, err)
	}

	if len(result.Tracks.Items) == 0 {
		return "", fmt.Errorf("no tracks found for %q", name)
	}
	return result.Tracks.Items[0].ID, nil
}

// TrackAudioFeatures searches for a track by name and returns the audio
// features of the first match. Returns ErrTokenRefreshed when the token
// grant failed and was refreshed instead of serving this request.
func (c *Client) TrackAudioFeatures(ctx context.Context, name string) (*AudioFeatures, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	id, err := c.searchTrack(ctx, token, name)
	if err != nil {
		return nil, err
	}

	var features AudioFeatures
	if err := c.doRequest(ctx, token, "/audio-features/"+id, &features); err != nil {
		return nil, fmt.Errorf("failed to get audio features for track %s: %w", id, err)
	}
	return &features, nil
}
