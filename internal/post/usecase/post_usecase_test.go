package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	authdomain "findit-backend/internal/auth/domain"
	groupdomain "findit-backend/internal/group/domain"
	grouprepo "findit-backend/internal/group/repository"
	notificationdomain "findit-backend/internal/notification/domain"
	postdomain "findit-backend/internal/post/domain"
	postdto "findit-backend/internal/post/dto"
	"findit-backend/internal/post/repository"
	"findit-backend/internal/schema"
	"findit-backend/pkg/apperror"
	"findit-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type notification struct {
	groupID string
	payload notificationdomain.Payload
	exclude string
}

type fakeNotifier struct {
	sent []notification
}

func (f *fakeNotifier) NotifyGroup(groupID string, payload notificationdomain.Payload, excludeUserID string) {
	f.sent = append(f.sent, notification{groupID, payload, excludeUserID})
}

type fixture struct {
	db       *gorm.DB
	groups   grouprepo.GroupRepository
	posts    repository.PostRepository
	notifier *fakeNotifier
	uc       PostUsecase
	group    *groupdomain.Group
	ana      *authdomain.User // creator
	ben      *authdomain.User // member
	eve      *authdomain.User // outsider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		db:       db,
		groups:   grouprepo.NewGroupRepository(db),
		posts:    repository.NewPostRepository(db),
		notifier: &fakeNotifier{},
	}
	f.uc = NewPostUsecase(f.posts, f.groups, f.notifier, log)

	f.ana = f.user(t, "ana")
	f.ben = f.user(t, "ben")
	f.eve = f.user(t, "eve")

	ctx := context.Background()
	f.group = &groupdomain.Group{Name: "Library", Code: "ABC123", CreatorID: f.ana.ID}
	require.NoError(t, f.groups.CreateWithCreator(ctx, f.group))
	require.NoError(t, f.groups.AddMember(ctx, f.group.ID, f.ben.ID))
	return f
}

func (f *fixture) user(t *testing.T, name string) *authdomain.User {
	t.Helper()
	u := &authdomain.User{ID: uuid.New().String(), Name: name, Email: name + "@x.io", Password: "hash", Phone: "0123456789"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) request(postType string) *postdto.CreatePostRequest {
	return &postdto.CreatePostRequest{
		Title:    "Blue umbrella",
		Details:  "Left near the front desk",
		PostType: postType,
		GroupID:  f.group.ID,
	}
}

func TestCreatePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	post, err := f.uc.CreatePost(ctx, f.ben.ID, f.request("FOUND"))
	require.NoError(t, err)
	assert.Equal(t, postdomain.PostStatusActive, post.Status)
	assert.Equal(t, f.ben.ID, post.AuthorID)

	require.Len(t, f.notifier.sent, 1)
	sent := f.notifier.sent[0]
	assert.Equal(t, f.group.ID, sent.groupID)
	assert.Equal(t, f.ben.ID, sent.exclude)
	assert.Equal(t, "New FOUND item in Library", sent.payload.Title)
	assert.Equal(t, "Blue umbrella", sent.payload.Body)
	assert.Equal(t, map[string]string{"type": NotificationNewPost, "groupId": f.group.ID, "postId": post.ID}, sent.payload.Data)
}

func TestCreatePost_Gates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreatePost(ctx, f.eve.ID, f.request("LOST"))
	assert.True(t, apperror.Is(err, apperror.KindForbidden))

	req := f.request("LOST")
	req.GroupID = uuid.New().String()
	_, err = f.uc.CreatePost(ctx, f.ana.ID, req)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	assert.Empty(t, f.notifier.sent)
}

func TestGetPostsByGroupID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older, err := f.uc.CreatePost(ctx, f.ben.ID, f.request("LOST"))
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&postdomain.Post{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer, err := f.uc.CreatePost(ctx, f.ana.ID, f.request("FOUND"))
	require.NoError(t, err)

	listing, err := f.uc.GetPostsByGroupID(ctx, f.group.ID, f.ben.ID)
	require.NoError(t, err)
	assert.Equal(t, f.group.ID, listing.GroupID)
	require.Len(t, listing.Posts, 2)
	assert.Equal(t, newer.ID, listing.Posts[0].ID)
	assert.Equal(t, older.ID, listing.Posts[1].ID)
	require.NotNil(t, listing.Posts[1].Author)
	assert.Equal(t, "ben@x.io", listing.Posts[1].Author.Email)
	assert.Equal(t, "0123456789", listing.Posts[1].Author.Phone)

	_, err = f.uc.GetPostsByGroupID(ctx, f.group.ID, f.eve.ID)
	assert.True(t, apperror.Is(err, apperror.KindForbidden))

	_, err = f.uc.GetPostsByGroupID(ctx, uuid.New().String(), f.ben.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestUpdatePostStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	post, err := f.uc.CreatePost(ctx, f.ben.ID, f.request("LOST"))
	require.NoError(t, err)
	f.notifier.sent = nil

	_, err = f.uc.UpdatePostStatus(ctx, post.ID, f.ana.ID, &postdto.UpdatePostStatusRequest{Status: "CLAIMED"})
	assert.True(t, apperror.Is(err, apperror.KindForbidden))

	_, err = f.uc.UpdatePostStatus(ctx, uuid.New().String(), f.ben.ID, &postdto.UpdatePostStatusRequest{Status: "CLAIMED"})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	// Same-value updates are accepted and do not notify.
	same, err := f.uc.UpdatePostStatus(ctx, post.ID, f.ben.ID, &postdto.UpdatePostStatusRequest{Status: "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, postdomain.PostStatusActive, same.Status)
	assert.Empty(t, f.notifier.sent)

	claimed, err := f.uc.UpdatePostStatus(ctx, post.ID, f.ben.ID, &postdto.UpdatePostStatusRequest{Status: "CLAIMED"})
	require.NoError(t, err)
	assert.Equal(t, postdomain.PostStatusClaimed, claimed.Status)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, f.ben.ID, f.notifier.sent[0].exclude)
	assert.Equal(t, NotificationPostClaimed, f.notifier.sent[0].payload.Data["type"])

	reopened, err := f.uc.UpdatePostStatus(ctx, post.ID, f.ben.ID, &postdto.UpdatePostStatusRequest{Status: "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, postdomain.PostStatusActive, reopened.Status)
	assert.Len(t, f.notifier.sent, 1)
}

func TestCreatePost_NilNotifier(t *testing.T) {
	f := newFixture(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	uc := NewPostUsecase(f.posts, f.groups, nil, log)

	_, err := uc.CreatePost(context.Background(), f.ana.ID, f.request("FOUND"))
	assert.NoError(t, err)
}
