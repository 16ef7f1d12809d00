package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer value here", 10, "a longe..."},
		{"abc", 2, "ab"},
		{"  padded  ", 10, "padded"},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	cases := []struct {
		ts   time.Time
		want string
	}{
		{time.Time{}, "-"},
		{now.Add(-30 * time.Second), "now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tc := range cases {
		if got := relativeTime(tc.ts); got != tc.want {
			t.Fatalf("relativeTime(%v) = %q, want %q", tc.ts, got, tc.want)
		}
	}

	old := now.Add(-90 * 24 * time.Hour)
	if got := relativeTime(old); got != old.Format("2006-01-02") {
		t.Fatalf("old timestamp = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight should not shorten: %q", got)
	}
}

func TestPageTotal(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{14, 5, 3},
		{10, 0, 1},
	}
	for _, tc := range cases {
		if got := pageTotal(tc.total, tc.size); got != tc.want {
			t.Fatalf("pageTotal(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestDescribeSort(t *testing.T) {
	if got := describeSort("0updated"); got != "updated asc" {
		t.Fatalf("describeSort = %q", got)
	}
	if got := describeSort("1name"); got != "name desc" {
		t.Fatalf("describeSort = %q", got)
	}
	if got := describeSort(""); got != "none" {
		t.Fatalf("describeSort = %q", got)
	}
}
