package services

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeStreaksRunEndingBeforeToday(t *testing.T) {
	days := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"}

	current, longest := ComputeStreaks(days, day("2024-01-05"))
	if current != 1 {
		t.Fatalf("expected current streak 1, got %d", current)
	}
	if longest != 3 {
		t.Fatalf("expected longest streak 3, got %d", longest)
	}
}

func TestComputeStreaksEmptySet(t *testing.T) {
	current, longest := ComputeStreaks(nil, day("2024-01-05"))
	if current != 0 || longest != 0 {
		t.Fatalf("expected 0/0 for empty set, got %d/%d", current, longest)
	}
}

func TestComputeStreaksSingleDay(t *testing.T) {
	current, longest := ComputeStreaks([]string{"2024-01-05"}, day("2024-01-05"))
	if current != 1 {
		t.Fatalf("expected current 1 when today is the only day, got %d", current)
	}
	if longest != 1 {
		t.Fatalf("expected longest 1 for a single date, got %d", longest)
	}
}

func TestComputeStreaksZeroWhenTodayUnlogged(t *testing.T) {
	days := []string{"2024-01-01", "2024-01-02", "2024-01-03"}

	current, longest := ComputeStreaks(days, day("2024-01-05"))
	if current != 0 {
		t.Fatalf("expected current 0 when today has no meal, got %d", current)
	}
	if longest != 3 {
		t.Fatalf("expected longest 3, got %d", longest)
	}
}

func TestComputeStreaksDuplicatesNeverInflate(t *testing.T) {
	days := []string{
		"2024-01-04", "2024-01-04", "2024-01-04",
		"2024-01-05", "2024-01-05",
	}

	current, longest := ComputeStreaks(days, day("2024-01-05"))
	if current != 2 {
		t.Fatalf("expected current 2 with duplicates collapsed, got %d", current)
	}
	if longest != 2 {
		t.Fatalf("expected longest 2 with duplicates collapsed, got %d", longest)
	}
}

func TestComputeStreaksFutureDateDoesNotCorruptCurrent(t *testing.T) {
	days := []string{"2024-01-05", "2024-01-09"}

	current, longest := ComputeStreaks(days, day("2024-01-05"))
	if current != 1 {
		t.Fatalf("expected current 1 despite a future-dated meal, got %d", current)
	}
	if longest != 1 {
		t.Fatalf("expected longest 1, got %d", longest)
	}
}

func TestComputeStreaksUnsortedInput(t *testing.T) {
	days := []string{"2024-01-03", "2024-01-01", "2024-01-02"}

	current, longest := ComputeStreaks(days, day("2024-01-03"))
	if current != 3 {
		t.Fatalf("expected current 3 from unsorted input, got %d", current)
	}
	if longest != 3 {
		t.Fatalf("expected longest 3 from unsorted input, got %d", longest)
	}
}

func TestComputeStreaksLongestRunInTheMiddle(t *testing.T) {
	days := []string{
		"2024-01-01",
		"2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06",
		"2024-01-08",
	}

	current, longest := ComputeStreaks(days, day("2024-01-08"))
	if current != 1 {
		t.Fatalf("expected current 1, got %d", current)
	}
	if longest != 4 {
		t.Fatalf("expected longest 4, got %d", longest)
	}
}

func TestComputeStreaksIgnoresMalformedDates(t *testing.T) {
	days := []string{"2024-01-05", "not-a-date", ""}

	current, longest := ComputeStreaks(days, day("2024-01-05"))
	if current != 1 || longest != 1 {
		t.Fatalf("expected 1/1 with malformed entries skipped, got %d/%d", current, longest)
	}
}
