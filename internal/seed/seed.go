// Package seed inserts fixed sample records so a fresh install has content
// to render. The same records back the memory backend and the first run of
// the file backend.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

func strPtr(s string) *string { return &s }

// IsEmpty reports whether the store holds no users yet.
func IsEmpty(ctx context.Context, store storage.Store) (bool, error) {
	users, err := store.Users().List(ctx)
	if err != nil {
		return false, err
	}
	return len(users) == 0, nil
}

// Apply creates the sample records. Conflicting users are skipped so calling
// it against a half-seeded store is safe.
func Apply(ctx context.Context, store storage.Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Seeding sample data...")
	var finalErr error

	users := []struct {
		username string
		password string
		fullName string
		email    string
		role     models.Role
	}{
		{"aysedemir", "gonullu2024", "Ayşe Demir", "ayse.demir@example.com", models.RoleLeader},
		{"mehmetkaya", "gonullu2024", "Mehmet Kaya", "mehmet.kaya@example.com", models.RoleMember},
		{"zeyneparslan", "gonullu2024", "Zeynep Arslan", "zeynep.arslan@example.com", models.RoleMember},
	}

	userIDs := make([]int64, 0, len(users))
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			Username: u.username,
			Password: string(hashed),
			FullName: u.fullName,
			Email:    u.email,
			Role:     u.role,
		}
		if err := store.Users().Create(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				lgr.Debug().Str("username", u.username).Msg("Seed user already exists, skipping")
				continue
			}
			lgr.Error().Err(err).Str("username", u.username).Msg("Error creating seed user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return finalErr
	}

	now := time.Now().UTC()
	approved := true

	works := []models.Work{
		{
			Title:              "Neighborhood school supply drive",
			Description:        "Collected and distributed school supplies for forty students.",
			Category:           "education",
			AuthorID:           &userIDs[0],
			WorkDate:           now.AddDate(0, -2, 0),
			BeneficiariesCount: 40,
		},
		{
			Title:              "Coastal cleanup morning",
			Description:        "Two hours of litter collection along the public beach.",
			Category:           "environment",
			AuthorID:           &userIDs[len(userIDs)-1],
			WorkDate:           now.AddDate(0, -1, 0),
			BeneficiariesCount: 0,
		},
		{
			Title:              "Blood donation campaign",
			Description:        "Organized a donation day with the regional blood bank.",
			Category:           "health",
			AuthorID:           &userIDs[0],
			WorkDate:           now.AddDate(0, 0, -10),
			BeneficiariesCount: 25,
		},
	}

	workIDs := make([]int64, 0, len(works))
	for i := range works {
		if err := store.Works().Create(ctx, &works[i]); err != nil {
			lgr.Error().Err(err).Str("title", works[i].Title).Msg("Error creating seed work")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		// Seed works ship pre-approved; approval only flows through updates
		if _, err := store.Works().Update(ctx, works[i].ID, storage.WorkPatch{Approved: &approved}); err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		workIDs = append(workIDs, works[i].ID)
	}

	published := true

	news := []models.News{
		{
			Title:    "Supply drive reaches forty students",
			Content:  "Thanks to everyone who donated, forty students started the term with full backpacks.",
			Summary:  strPtr("School supply drive wrap-up."),
			AuthorID: &userIDs[0],
		},
		{
			Title:    "Planning the winter clothing drive",
			Content:  "Draft plan for the winter campaign, open for volunteers.",
			AuthorID: &userIDs[0],
		},
	}
	if len(workIDs) > 0 {
		news[0].RelatedWorkIDs = []int64{workIDs[0]}
	}

	for i := range news {
		if err := store.News().Create(ctx, &news[i]); err != nil {
			lgr.Error().Err(err).Str("title", news[i].Title).Msg("Error creating seed news")
			finalErr = errors.Join(finalErr, err)
			continue
		}
	}
	// Only the first item goes out published
	if news[0].ID > 0 {
		if _, err := store.News().Update(ctx, news[0].ID, storage.NewsPatch{Published: &published}); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	events := []models.Event{
		{
			Title:       "Monthly volunteer meetup",
			Description: "Open meeting to plan next month's works.",
			EventDate:   now.AddDate(0, 0, 14),
			Location:    strPtr("Community center, main hall"),
		},
		{
			Title:       "Park restoration day",
			Description: "Painting benches and planting saplings in the city park.",
			EventDate:   now.AddDate(0, 1, 0),
			Location:    strPtr("Karaalioğlu Park"),
		},
	}

	for i := range events {
		if err := store.Events().Create(ctx, &events[i]); err != nil {
			lgr.Error().Err(err).Str("title", events[i].Title).Msg("Error creating seed event")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
