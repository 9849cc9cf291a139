package storage

import (
	"sort"

	"github.com/ecem/goodworks/internal/app/models"
)

// Shared ordering used by every backend so list results stay comparable
// regardless of which one is active.

// SortUsers orders users ascending by id.
func SortUsers(users []models.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

// SortWorks orders works oldest first; ids break timestamp ties.
func SortWorks(works []models.Work) {
	sort.Slice(works, func(i, j int) bool {
		if works[i].CreatedAt.Equal(works[j].CreatedAt) {
			return works[i].ID < works[j].ID
		}
		return works[i].CreatedAt.Before(works[j].CreatedAt)
	})
}

// SortNews orders news oldest first; ids break timestamp ties.
func SortNews(news []models.News) {
	sort.Slice(news, func(i, j int) bool {
		if news[i].CreatedAt.Equal(news[j].CreatedAt) {
			return news[i].ID < news[j].ID
		}
		return news[i].CreatedAt.Before(news[j].CreatedAt)
	})
}

// SortEvents orders events soonest first; ids break date ties.
func SortEvents(events []models.Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].EventDate.Equal(events[j].EventDate) {
			return events[i].ID < events[j].ID
		}
		return events[i].EventDate.Before(events[j].EventDate)
	})
}
