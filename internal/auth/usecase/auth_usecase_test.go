package usecase

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authdomain "findit-backend/internal/auth/domain"
	authdto "findit-backend/internal/auth/dto"
	"findit-backend/internal/auth/repository"
	"findit-backend/pkg/apperror"
)

type fakeUserRepo struct {
	users   map[string]*authdomain.User
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*authdomain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *authdomain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	user.ID = "user-" + user.Email
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id string, fields map[string]interface{}) error {
	f.updates++
	u := f.users[id]
	if v, ok := fields["phone"]; ok {
		u.Phone = v.(string)
	}
	if v, ok := fields["profile_image_url"]; ok {
		u.ProfileImageURL = v.(string)
	}
	return nil
}

type fakeImageDeleter struct {
	deleted []string
	err     error
}

func (f *fakeImageDeleter) DeleteImage(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestUsecase(repo repository.UserRepository, images ImageDeleter) AuthUsecase {
	return NewAuthUsecase(repo, images, "test-secret", time.Hour, quietLogger())
}

func strPtr(s string) *string { return &s }

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newFakeUserRepo(), nil)

	signup, err := uc.Signup(ctx, &authdto.SignupRequest{Name: "Ana", Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, "ana@x.io", signup.User.Email)
	assert.NotEqual(t, "secret1", signup.User.Password)

	login, err := uc.Login(ctx, &authdto.LoginRequest{Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)

	user, err := uc.ValidateToken(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, user.ID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newFakeUserRepo(), nil)

	_, err := uc.Signup(ctx, &authdto.SignupRequest{Name: "Ana", Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Signup(ctx, &authdto.SignupRequest{Name: "Ana 2", Email: "ana@x.io", Password: "secret2"})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newFakeUserRepo(), nil)
	_, err := uc.Signup(ctx, &authdto.SignupRequest{Name: "Ana", Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, &authdto.LoginRequest{Email: "ghost@x.io", Password: "secret1"})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = uc.Login(ctx, &authdto.LoginRequest{Email: "ana@x.io", Password: "wrong-pass"})
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}

func TestValidateToken_Rejects(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := newTestUsecase(repo, nil)

	_, err := uc.ValidateToken(ctx, "not-a-jwt")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	other := NewAuthUsecase(repo, nil, "other-secret", time.Hour, quietLogger())
	resp, err := other.Signup(ctx, &authdto.SignupRequest{Name: "Ana", Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)
	_, err = uc.ValidateToken(ctx, resp.Token)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	expired := NewAuthUsecase(repo, nil, "test-secret", -time.Minute, quietLogger())
	resp, err = expired.Login(ctx, &authdto.LoginRequest{Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)
	_, err = uc.ValidateToken(ctx, resp.Token)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	// Token for a user that has since disappeared.
	live, err := uc.Login(ctx, &authdto.LoginRequest{Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)
	delete(repo.users, live.User.ID)
	_, err = uc.ValidateToken(ctx, live.Token)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	images := &fakeImageDeleter{err: errors.New("cdn down")}
	uc := newTestUsecase(repo, images)

	signup, err := uc.Signup(ctx, &authdto.SignupRequest{
		Name:            "Ana",
		Email:           "ana@x.io",
		Password:        "secret1",
		Phone:           "0123456789",
		ProfileImageURL: "https://res.cloudinary.com/demo/image/upload/v1/userprofile/old.jpg",
	})
	require.NoError(t, err)
	id := signup.User.ID

	t.Run("no changes skips the write", func(t *testing.T) {
		result, err := uc.UpdateProfile(ctx, id, &authdto.UpdateProfileRequest{Phone: strPtr("0123456789")})
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, 0, repo.updates)
	})

	t.Run("new image deletes the old one even if deletion fails", func(t *testing.T) {
		newURL := "https://res.cloudinary.com/demo/image/upload/v2/userprofile/new.jpg"
		result, err := uc.UpdateProfile(ctx, id, &authdto.UpdateProfileRequest{ProfileImageURL: &newURL})
		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, newURL, result.User.ProfileImageURL)
		assert.Equal(t, "0123456789", result.User.Phone)
		assert.Equal(t, []string{"https://res.cloudinary.com/demo/image/upload/v1/userprofile/old.jpg"}, images.deleted)
		assert.Equal(t, 1, repo.updates)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.UpdateProfile(ctx, "ghost", &authdto.UpdateProfileRequest{Phone: strPtr("0123456789")})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

// The no-op path must issue a single SELECT and nothing else.
func TestUpdateProfile_NoChangeIssuesNoWrite(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "phone", "profile_image_url", "created_at", "updated_at"}).
		AddRow("u1", "Ana", "ana@x.io", "hash", "0123456789", "", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).WillReturnRows(rows)

	uc := newTestUsecase(repository.NewUserRepository(db), nil)
	result, err := uc.UpdateProfile(context.Background(), "u1", &authdto.UpdateProfileRequest{
		Phone:           strPtr("0123456789"),
		ProfileImageURL: strPtr(""),
	})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
