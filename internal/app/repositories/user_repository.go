package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/store"
)

type userDoc = map[string]models.User

// UserRepository owns the users (admin) and students collections.
type UserRepository struct {
	admins   *store.Collection[userDoc]
	students *store.Collection[userDoc]
	logger   zerolog.Logger
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(s *store.Store, logger zerolog.Logger) *UserRepository {
	empty := func() userDoc { return userDoc{} }
	return &UserRepository{
		admins:   store.NewCollection(s, store.Users, empty),
		students: store.NewCollection(s, store.Students, empty),
		logger:   logger.With().Str("repository", "users").Logger(),
	}
}

// GetByEmail looks the email up among admins first, then students. Emails
// are matched in canonical form, see models.CanonicalEmail.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	admins, err := r.admins.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load admins: %w", err)
	}
	if u, ok := lookup(admins, email); ok {
		return u, nil
	}

	students, err := r.students.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	if u, ok := lookup(students, email); ok {
		return u, nil
	}

	return nil, apperrors.ErrUserNotFound
}

// keyFor returns the stored key for email. Keys written before emails were
// canonicalized may differ in case or normalization, so a miss on the
// canonical key falls back to a scan.
func keyFor(doc userDoc, email string) (string, bool) {
	canonical := models.CanonicalEmail(email)
	if _, ok := doc[canonical]; ok {
		return canonical, true
	}
	for key := range doc {
		if models.CanonicalEmail(key) == canonical {
			return key, true
		}
	}
	return "", false
}

func lookup(doc userDoc, email string) (*models.User, bool) {
	key, ok := keyFor(doc, email)
	if !ok {
		return nil, false
	}
	u := doc[key]
	u.Email = key
	return &u, true
}

// EmailExists reports whether any account uses email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if apperrors.Is(err, apperrors.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

// CreateStudent stores a new student account under its canonical email.
func (r *UserRepository) CreateStudent(ctx context.Context, u *models.User) error {
	u.Email = models.CanonicalEmail(u.Email)

	admins, err := r.admins.Load(ctx)
	if err = readable(err); err != nil {
		return fmt.Errorf("load admins: %w", err)
	}
	if _, ok := keyFor(admins, u.Email); ok {
		return apperrors.ErrEmailAlreadyExists
	}

	return r.students.Update(ctx, func(doc *userDoc) (bool, error) {
		if _, ok := keyFor(*doc, u.Email); ok {
			return false, apperrors.ErrEmailAlreadyExists
		}
		(*doc)[u.Email] = *u
		return true, nil
	})
}

// UpdateStudentPassword replaces a student's password hash. Admin
// credentials are not reset through this path.
func (r *UserRepository) UpdateStudentPassword(ctx context.Context, email, passwordHash string) error {
	return r.students.Update(ctx, func(doc *userDoc) (bool, error) {
		key, ok := keyFor(*doc, email)
		if !ok {
			return false, apperrors.ErrUserNotFound
		}
		u := (*doc)[key]
		u.PasswordHash = passwordHash
		(*doc)[key] = u
		return true, nil
	})
}

// ListStudents returns all students ordered by join date, then email.
func (r *UserRepository) ListStudents(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, r.students, "students")
}

// ListAdmins returns the administrator accounts in the same order.
func (r *UserRepository) ListAdmins(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, r.admins, "admins")
}

func (r *UserRepository) list(ctx context.Context, c *store.Collection[userDoc], what string) ([]models.User, error) {
	doc, err := c.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load %s: %w", what, err)
	}

	out := make([]models.User, 0, len(doc))
	for email, u := range doc {
		u.Email = email
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedDate.Equal(out[j].JoinedDate) {
			return out[i].JoinedDate.Before(out[j].JoinedDate)
		}
		return out[i].Email < out[j].Email
	})
	return out, nil
}

// SeedAdmins writes the admin collection if it does not exist yet.
func (r *UserRepository) SeedAdmins(ctx context.Context, admins ...models.User) (bool, error) {
	doc := userDoc{}
	for _, a := range admins {
		a.Email = models.CanonicalEmail(a.Email)
		doc[a.Email] = a
	}
	return r.admins.SeedIfAbsent(ctx, doc)
}

// SeedStudents writes an empty students collection if it does not exist yet.
func (r *UserRepository) SeedStudents(ctx context.Context) (bool, error) {
	return r.students.SeedIfAbsent(ctx, userDoc{})
}
