package store

import (
	"context"
	"github.com/stretchr/testify/require"
	"testing"
)

func rowKeys(results []*Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = string(r.Row)
	}
	return out
}

func TestStore_Scan(t *testing.T) {
	t.Parallel()

	s, err := New(&Config{ShardCount: 3})
	require.NoError(t, err)
	_, err = s.CreateTable("t", FamilySpec{Name: "a", MaxVersions: 3}, FamilySpec{Name: "b"})
	require.NoError(t, err)

	for _, key := range []string{"user#3", "user#1", "order#2", "user#2", "order#1", "zeta"} {
		require.NoError(t, s.Put("t", []byte(key), "a", cell, []byte(key)))
	}
	require.NoError(t, s.Put("t", []byte("user#1"), "a", cell, []byte("user#1-v2")))
	require.NoError(t, s.Put("t", []byte("only-b"), "b", cell, []byte("b")))

	tests := map[string]struct {
		opts *ScanOptions
		want []string
	}{
		"everything in key order": {
			opts: nil,
			want: []string{"only-b", "order#1", "order#2", "user#1", "user#2", "user#3", "zeta"},
		},
		"start inclusive, stop exclusive": {
			opts: &ScanOptions{StartRow: []byte("order#2"), StopRow: []byte("user#3")},
			want: []string{"order#2", "user#1", "user#2"},
		},
		"prefix": {
			opts: &ScanOptions{Prefix: []byte("user#")},
			want: []string{"user#1", "user#2", "user#3"},
		},
		"prefix with a later start": {
			opts: &ScanOptions{Prefix: []byte("user#"), StartRow: []byte("user#2")},
			want: []string{"user#2", "user#3"},
		},
		"limit": {
			opts: &ScanOptions{Limit: 2},
			want: []string{"only-b", "order#1"},
		},
		"family filter skips rows without cells": {
			opts: &ScanOptions{Families: []string{"b"}},
			want: []string{"only-b"},
		},
		"limit counts only non-empty rows": {
			opts: &ScanOptions{Families: []string{"a"}, Limit: 1},
			want: []string{"order#1"},
		},
		"empty range": {
			opts: &ScanOptions{StartRow: []byte("x"), StopRow: []byte("y")},
			want: []string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := s.Scan(context.Background(), "t", tc.opts)
			require.NoError(t, err)
			require.Equal(t, tc.want, rowKeys(got))
		})
	}

	t.Run("versions", func(t *testing.T) {
		t.Parallel()
		got, err := s.Scan(context.Background(), "t", &ScanOptions{Prefix: []byte("user#1"), MaxVersions: 3})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, []string{"user#1-v2", "user#1"}, values(got[0].Cells))
	})

	t.Run("unknown family", func(t *testing.T) {
		t.Parallel()
		_, err := s.Scan(context.Background(), "t", &ScanOptions{Families: []string{"nope"}})
		require.ErrorIs(t, err, ErrFamilyNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Scan(ctx, "t", nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
