package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/campusconnect/internal/app/models"
	appRepos "github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/config"
	"github.com/yigit/campusconnect/internal/pkg/auth"
)

// DefaultClubs are written to clubs.json on first start.
func DefaultClubs(adminEmail string, now time.Time) []appModels.Club {
	club := func(id, name, category, description, schedule, location string) appModels.Club {
		return appModels.Club{
			ID:              id,
			Name:            name,
			Description:     description,
			Category:        category,
			Members:         []string{},
			PendingRequests: []string{},
			Admins:          []string{appModels.CanonicalEmail(adminEmail)},
			MeetingSchedule: schedule,
			Location:        location,
			CreatedDate:     now,
		}
	}
	return []appModels.Club{
		club("club_cs", "Computer Science Club", "technology",
			"Weekly coding sessions, hackathon preparation, and tech workshops. Open to all skill levels!",
			"Wednesdays 6-8 PM", "Tech Building 301"),
		club("club_debate", "Debate Society", "debate",
			"Improve your public speaking and critical thinking skills through weekly debates and tournaments.",
			"Fridays 4-6 PM", "Humanities Building 204"),
		club("club_music", "Music Club", "arts",
			"For musicians and music lovers. Jam sessions, performances, and collaborative projects.",
			"Tuesdays 7-9 PM", "Arts Center Room 101"),
	}
}

// DefaultAnnouncements are written to announcements.json on first start.
func DefaultAnnouncements(now time.Time) []appModels.Announcement {
	return []appModels.Announcement{
		{
			ID:          appModels.NewID(),
			Title:       "Welcome to Campus Connect!",
			Message:     "Welcome to our new campus social platform! Connect with fellow students, join clubs, and stay updated with campus events.",
			Category:    "general",
			Priority:    appModels.PriorityHigh,
			Author:      "Admin User",
			CreatedDate: now,
		},
		{
			ID:          appModels.NewID(),
			Title:       "Hackathon 2024 Registration Open",
			Message:     "Annual coding competition is here! Form teams of 2-4 and showcase your skills. Prizes include cash awards and internships.",
			Category:    "events",
			Priority:    appModels.PriorityMedium,
			Author:      "Admin User",
			CreatedDate: now,
		},
	}
}

// CreateDefaultData writes every collection that does not exist yet.
// Existing files are never touched, so it is safe on every start.
// Failures are collected rather than stopping at the first one.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error
	now := time.Now()

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		finalErr = errors.Join(finalErr, fmt.Errorf("hash admin password: %w", err))
	} else {
		admin := appModels.User{
			Email:        cfg.Admin.Email,
			Name:         cfg.Admin.Name,
			PasswordHash: hashedPassword,
			Role:         appModels.RoleAdmin,
			JoinedDate:   now,
		}
		written, err := repos.UserRepository.SeedAdmins(ctx, admin)
		report(lgr, "users", written, err, &finalErr)
	}

	written, err := repos.UserRepository.SeedStudents(ctx)
	report(lgr, "students", written, err, &finalErr)

	clubsWritten, requestsWritten, err := repos.ClubRepository.Seed(ctx, DefaultClubs(cfg.Admin.Email, now))
	report(lgr, "clubs", clubsWritten, err, &finalErr)
	report(lgr, "club_requests", requestsWritten, nil, &finalErr)

	written, err = repos.AnnouncementRepository.Seed(ctx, DefaultAnnouncements(now))
	report(lgr, "announcements", written, err, &finalErr)

	written, err = repos.ChatRepository.Seed(ctx)
	report(lgr, "chats", written, err, &finalErr)

	written, err = repos.CallRepository.Seed(ctx)
	report(lgr, "calls", written, err, &finalErr)

	written, err = repos.ConfessionRepository.Seed(ctx)
	report(lgr, "confessions", written, err, &finalErr)

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func report(lgr zerolog.Logger, collection string, written bool, err error, finalErr *error) {
	switch {
	case err != nil:
		lgr.Error().Err(err).Str("collection", collection).Msg("Error seeding collection")
		*finalErr = errors.Join(*finalErr, fmt.Errorf("seed %s: %w", collection, err))
	case written:
		lgr.Info().Str("collection", collection).Msg("Collection created with default data")
	default:
		lgr.Debug().Str("collection", collection).Msg("Collection already exists, skipping")
	}
}
