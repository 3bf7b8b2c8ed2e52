// Package reminders plans show reminders without performing any side
// effect; the sending side is a separate collaborator.
package reminders

import (
	"sort"
	"time"

	"cinema/internal/entities"
)

// Task is one reminder to be delivered for an upcoming show.
type Task struct {
	ShowID    string
	Title     string
	StartTime time.Time
	// UserIDs are the holders of the show's occupied seats, deduplicated,
	// in ascending order.
	UserIDs []string
}

// Plan returns reminder tasks for shows starting within the window
// after now, earliest show first. Shows already started, shows outside
// the window, and shows without any occupied seat produce no task.
func Plan(now time.Time, window time.Duration, shows []entities.Show) []Task {
	var tasks []Task

	for _, show := range shows {
		if show.StartTime.Before(now) {
			continue
		}
		if show.StartTime.After(now.Add(window)) {
			continue
		}

		userIDs := seatHolders(show.OccupiedSeats)
		if len(userIDs) == 0 {
			continue
		}

		tasks = append(tasks, Task{
			ShowID:    show.ShowID.String(),
			Title:     show.Title,
			StartTime: show.StartTime,
			UserIDs:   userIDs,
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartTime.Before(tasks[j].StartTime)
	})

	return tasks
}

func seatHolders(occupiedSeats map[string]string) []string {
	seen := make(map[string]struct{}, len(occupiedSeats))
	var userIDs []string

	for _, userID := range occupiedSeats {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		userIDs = append(userIDs, userID)
	}

	sort.Strings(userIDs)
	return userIDs
}
