package services

import (
	"sort"
	"time"

	"naijafit/models"
)

// ComputeStreaks derives the logging streaks from the days on which a user
// logged at least one meal. days holds YYYY-MM-DD strings in any order,
// duplicates allowed (they are deduplicated here and never inflate a run).
//
// current is the number of consecutive days ending at today with a logged
// meal; zero when today itself has none. longest is the maximum run of
// consecutive days over the whole set.
func ComputeStreaks(days []string, today time.Time) (current, longest int) {
	seen := make(map[string]struct{}, len(days))
	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		if _, dup := seen[d]; dup {
			continue
		}
		t, err := time.ParseInLocation(models.DateLayout, d, time.UTC)
		if err != nil {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, t)
	}
	if len(dates) == 0 {
		return 0, 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].AddDate(0, 0, 1).Equal(dates[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Walk backward from today while each day is present. A future-dated
	// meal never counts here: it is not today.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for {
		if _, ok := seen[day.Format(models.DateLayout)]; !ok {
			break
		}
		current++
		day = day.AddDate(0, 0, -1)
	}

	return current, longest
}
