package store

import (
	"slices"
	"sort"
)

// version is one stored value of a series.
type version struct {
	value     []byte
	timestamp int64
}

// series is the version list of a single (row, family, qualifier) coordinate, kept sorted
// by timestamp descending. It never holds two versions with the same timestamp.
type series []version

// search returns the index of the first version with a timestamp at or before ts.
func (s series) search(ts int64) int {
	return sort.Search(len(s), func(i int) bool {
		return s[i].timestamp <= ts
	})
}

// insert places v in timestamp order and trims the series to maxVersions. A version with an
// identical timestamp is replaced. It returns the number of versions evicted by the bound.
func (s series) insert(v version, maxVersions int) (series, int) {
	i := s.search(v.timestamp)
	if i < len(s) && s[i].timestamp == v.timestamp {
		s[i] = v
		return s, 0
	}
	s = slices.Insert(s, i, v)

	if maxVersions <= 0 || len(s) <= maxVersions {
		return s, 0
	}
	evicted := len(s) - maxVersions
	clear(s[maxVersions:])
	return s[:maxVersions], evicted
}

// removeLatest drops the newest version at or before ts.
func (s series) removeLatest(ts int64) (series, []version) {
	i := s.search(ts)
	if i == len(s) {
		return s, nil
	}
	removed := []version{s[i]}
	return slices.Delete(s, i, i+1), removed
}

// removeAll drops every version at or before ts.
func (s series) removeAll(ts int64) (series, []version) {
	i := s.search(ts)
	if i == len(s) {
		return s, nil
	}
	removed := slices.Clone(s[i:])
	clear(s[i:])
	return s[:i], removed
}

// purgeBefore drops versions strictly older than cutoff.
func (s series) purgeBefore(cutoff int64) (series, int) {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].timestamp < cutoff
	})
	n := len(s) - i
	clear(s[i:])
	return s[:i], n
}

// window describes which versions of a series a read may see.
type window struct {
	maxVersions  int
	minTimestamp int64 // inclusive
	maxTimestamp int64 // exclusive; 0 is unbounded
	expiredAt    int64 // versions older than this are expired; 0 disables
}

// visible returns up to w.maxVersions versions inside the window, newest first.
func (s series) visible(w window) []version {
	limit := w.maxVersions
	if limit <= 0 {
		limit = 1
	}

	out := make([]version, 0, min(limit, len(s)))
	for _, v := range s {
		if w.maxTimestamp > 0 && v.timestamp >= w.maxTimestamp {
			continue
		}
		if v.timestamp < w.minTimestamp || (w.expiredAt > 0 && v.timestamp < w.expiredAt) {
			// sorted descending: nothing older can qualify
			break
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
