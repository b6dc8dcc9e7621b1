package cache

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestMemoryHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("First Play Initializes History", func(t *testing.T) {
		s := NewMemoryHistory()

		got, err := s.RecordPlay(ctx, 1, "t1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if want := []string{"t1"}; !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Keeps Last Five In Play Order", func(t *testing.T) {
		s := NewMemoryHistory()

		var got []string
		var err error
		for i := 1; i <= 6; i++ {
			got, err = s.RecordPlay(ctx, 1, fmt.Sprintf("t%d", i))
			if err != nil {
				t.Fatalf("play %d: expected no error, got %v", i, err)
			}
		}

		want := []string{"t2", "t3", "t4", "t5", "t6"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}

		stored, err := s.History(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(stored, want) {
			t.Errorf("stored history: expected %v, got %v", want, stored)
		}
	})

	t.Run("Never Exceeds Capacity", func(t *testing.T) {
		s := NewMemoryHistory()

		for i := 0; i < 20; i++ {
			got, err := s.RecordPlay(ctx, 1, fmt.Sprintf("t%d", i))
			if err != nil {
				t.Fatalf("play %d: expected no error, got %v", i, err)
			}
			if len(got) > HistoryCap {
				t.Fatalf("play %d: history length %d exceeds cap %d", i, len(got), HistoryCap)
			}
		}
	})

	t.Run("LastPlayed Returns Newest", func(t *testing.T) {
		s := NewMemoryHistory()

		for i := 1; i <= 6; i++ {
			if _, err := s.RecordPlay(ctx, 1, fmt.Sprintf("t%d", i)); err != nil {
				t.Fatalf("play %d: expected no error, got %v", i, err)
			}
		}

		last, err := s.LastPlayed(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if last != "t6" {
			t.Errorf("expected t6, got %s", last)
		}
	})

	t.Run("LastPlayed On Empty History", func(t *testing.T) {
		s := NewMemoryHistory()

		_, err := s.LastPlayed(ctx, 42)
		if !errors.Is(err, ErrEmptyHistory) {
			t.Errorf("expected ErrEmptyHistory, got %v", err)
		}
	})

	t.Run("History On Unknown User Is Empty", func(t *testing.T) {
		s := NewMemoryHistory()

		got, err := s.History(ctx, 42)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty history, got %v", got)
		}
	})

	t.Run("Users Are Isolated", func(t *testing.T) {
		s := NewMemoryHistory()

		if _, err := s.RecordPlay(ctx, 1, "t1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := s.RecordPlay(ctx, 2, "t2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := s.History(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if want := []string{"t1"}; !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestHistoryKey(t *testing.T) {
	if got, want := historyKey(17), "history:17"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
