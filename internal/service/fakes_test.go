package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	u := *user
	u.ID = primitive.NewObjectID()
	f.byEmail[user.Email] = &u
	return u.ID, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeProfileRepo is an in-memory ProfileRepository keyed by user id.
type fakeProfileRepo struct {
	byUser    map[primitive.ObjectID]*domain.Profile
	upsertErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: make(map[primitive.ObjectID]*domain.Profile)}
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error) {
	if f.upsertErr != nil {
		return primitive.NilObjectID, f.upsertErr
	}
	p := *profile
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.UpdatedAt = time.Now()
	f.byUser[p.UserID] = &p
	return p.ID, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	if p, ok := f.byUser[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

// fakeExerciseRepo is an in-memory ExerciseRepository keyed by slug.
type fakeExerciseRepo struct {
	bySlug    map[string]*domain.Exercise
	listCalls int
}

func newFakeExerciseRepo(exercises ...domain.Exercise) *fakeExerciseRepo {
	f := &fakeExerciseRepo{bySlug: make(map[string]*domain.Exercise)}
	for i := range exercises {
		ex := exercises[i]
		if ex.ID.IsZero() {
			ex.ID = primitive.NewObjectID()
		}
		f.bySlug[ex.Slug] = &ex
	}
	return f
}

func (f *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if _, ok := f.bySlug[exercise.Slug]; ok {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	ex := *exercise
	ex.ID = primitive.NewObjectID()
	f.bySlug[ex.Slug] = &ex
	return ex.ID, nil
}

func (f *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for _, ex := range f.bySlug {
		if ex.ID == id {
			copied := *ex
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExerciseRepo) GetBySlug(ctx context.Context, slug string) (*domain.Exercise, error) {
	if ex, ok := f.bySlug[slug]; ok {
		copied := *ex
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	f.listCalls++
	out := make([]domain.Exercise, 0, len(f.bySlug))
	for _, ex := range f.bySlug {
		out = append(out, *ex)
	}
	return out, nil
}

func (f *fakeExerciseRepo) Update(ctx context.Context, exercise *domain.Exercise) error {
	if _, ok := f.bySlug[exercise.Slug]; !ok {
		return repository.ErrNotFound
	}
	ex := *exercise
	f.bySlug[ex.Slug] = &ex
	return nil
}

// fakeWorkoutRepo is an in-memory WorkoutRepository.
type fakeWorkoutRepo struct {
	workouts  []domain.AssembledWorkout
	createErr error
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.AssembledWorkout) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	w := *workout
	w.ID = primitive.NewObjectID()
	f.workouts = append(f.workouts, w)
	return w.ID, nil
}

func (f *fakeWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.AssembledWorkout, error) {
	for i := range f.workouts {
		if f.workouts[i].ID == id {
			copied := f.workouts[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeWorkoutRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.AssembledWorkout, error) {
	var out []domain.AssembledWorkout
	for i := len(f.workouts) - 1; i >= 0; i-- {
		if f.workouts[i].UserID != userID {
			continue
		}
		out = append(out, f.workouts[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// fakeAuditRepo is an in-memory AuditRepository.
type fakeAuditRepo struct {
	records   []domain.AuditRecord
	createErr error
}

func (f *fakeAuditRepo) CreateMany(ctx context.Context, records []domain.AuditRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeAuditRepo) GetByRunID(ctx context.Context, runID string) ([]domain.AuditRecord, error) {
	var out []domain.AuditRecord
	for _, r := range f.records {
		if r.RunID == runID {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return out, nil
}
