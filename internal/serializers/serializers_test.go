package serializers

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"fireside/internal/accounts"
	"fireside/internal/database"
	"fireside/internal/models"
	"fireside/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func createAccount(t *testing.T, db *gorm.DB, email string) *models.Account {
	t.Helper()
	account := &models.Account{Email: email, Password: "hash", IsActive: true}
	require.NoError(t, repository.NewAccountRepository(db).Create(context.Background(), account))
	return account
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Fields
}

func TestAccountInboundValidation(t *testing.T) {
	db := setupTestDB(t)
	s := NewAccountSerializer(accounts.NewManager(repository.NewAccountRepository(db)))
	ctx := context.Background()

	tests := []struct {
		name      string
		in        AccountIn
		badFields []string
	}{
		{
			name:      "missing everything",
			in:        AccountIn{},
			badFields: []string{"email", "password"},
		},
		{
			name:      "malformed email",
			in:        AccountIn{Email: "not-an-email", Password: "s3cret"},
			badFields: []string{"email"},
		},
		{
			name:      "email too long",
			in:        AccountIn{Email: "a-very-long-local-part-over-the-limit@example-domain.com", Password: "s3cret"},
			badFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Inbound(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, models.IsValidationError(err))
			assert.ElementsMatch(t, tt.badFields, validationFields(t, err))
		})
	}

	// Nothing was persisted by the rejected inputs.
	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAccountOutboundOmitsPassword(t *testing.T) {
	db := setupTestDB(t)
	s := NewAccountSerializer(accounts.NewManager(repository.NewAccountRepository(db)))

	account, err := s.Inbound(context.Background(), AccountIn{
		Email:    "bob@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	body, err := json.Marshal(s.Outbound(account))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "s3cret")
	assert.Contains(t, string(body), `"email":"bob@example.com"`)
}

func TestProfileInboundIgnoresOwnerField(t *testing.T) {
	db := setupTestDB(t)
	s := NewProfileSerializer(repository.NewProfileRepository(db))
	caller := createAccount(t, db, "caller@example.com")
	intruder := createAccount(t, db, "intruder@example.com")

	profile, err := s.Inbound(context.Background(), caller.ID, ProfileIn{
		NickName:    "bob",
		UserProfile: intruder.ID, // read-only, must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, profile.AccountID)

	rep := s.Outbound(profile)
	assert.Equal(t, caller.ID, rep.UserProfile)
}

func TestProfileOutboundDateFormat(t *testing.T) {
	db := setupTestDB(t)
	s := NewProfileSerializer(repository.NewProfileRepository(db))
	caller := createAccount(t, db, "caller@example.com")

	profile, err := s.Inbound(context.Background(), caller.ID, ProfileIn{NickName: "bob"})
	require.NoError(t, err)

	rep := s.Outbound(profile)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), rep.CreatedOn)
}

func TestProfileUpdateKeepsCreatedOn(t *testing.T) {
	db := setupTestDB(t)
	s := NewProfileSerializer(repository.NewProfileRepository(db))
	caller := createAccount(t, db, "caller@example.com")
	ctx := context.Background()

	profile, err := s.Inbound(ctx, caller.ID, ProfileIn{NickName: "bob"})
	require.NoError(t, err)
	created := profile.CreatedOn

	updated, err := s.Update(ctx, caller.ID, ProfileIn{NickName: "bobby"})
	require.NoError(t, err)
	assert.Equal(t, "bobby", updated.NickName)
	assert.True(t, updated.CreatedOn.Equal(created))
}

func TestPostInboundIgnoresAuthorField(t *testing.T) {
	db := setupTestDB(t)
	s := NewPostSerializer(repository.NewPostRepository(db))
	caller := createAccount(t, db, "caller@example.com")
	intruder := createAccount(t, db, "intruder@example.com")

	post, err := s.Inbound(context.Background(), caller.ID, PostIn{
		Title:    "hello",
		UserPost: intruder.ID, // read-only, must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, post.AccountID)
}

func TestPostUpdateRejectsNonAuthor(t *testing.T) {
	db := setupTestDB(t)
	s := NewPostSerializer(repository.NewPostRepository(db))
	author := createAccount(t, db, "author@example.com")
	other := createAccount(t, db, "other@example.com")
	ctx := context.Background()

	post, err := s.Inbound(ctx, author.ID, PostIn{Title: "hello"})
	require.NoError(t, err)

	_, err = s.Update(ctx, other.ID, post.ID, PostIn{Title: "hijacked"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}

func TestPostOutboundLikedIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPostRepository(db)
	s := NewPostSerializer(repo)
	author := createAccount(t, db, "author@example.com")
	fan := createAccount(t, db, "fan@example.com")
	ctx := context.Background()

	post, err := s.Inbound(ctx, author.ID, PostIn{Title: "hello"})
	require.NoError(t, err)
	require.NoError(t, repo.Like(ctx, post.ID, fan.ID))

	stored, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)

	rep := s.Outbound(stored)
	assert.Equal(t, []uint{fan.ID}, rep.Liked)

	// An empty like set serializes as [], not null.
	body, err := json.Marshal(s.Outbound(post))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"liked":[]`)
}

func TestCommentInboundValidation(t *testing.T) {
	db := setupTestDB(t)
	s := NewCommentSerializer(repository.NewCommentRepository(db))
	caller := createAccount(t, db, "caller@example.com")

	_, err := s.Inbound(context.Background(), caller.ID, CommentIn{})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
	assert.ElementsMatch(t, []string{"text", "post"}, validationFields(t, err))
}

func TestCommentInbound(t *testing.T) {
	db := setupTestDB(t)
	s := NewCommentSerializer(repository.NewCommentRepository(db))
	author := createAccount(t, db, "author@example.com")
	commenter := createAccount(t, db, "commenter@example.com")
	ctx := context.Background()

	post := &models.Post{Title: "hello", AccountID: author.ID}
	require.NoError(t, repository.NewPostRepository(db).Create(ctx, post))

	comment, err := s.Inbound(ctx, commenter.ID, CommentIn{
		Text:        "nice",
		UserComment: author.ID, // read-only, must be ignored
		Post:        post.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, commenter.ID, comment.AccountID)

	rep := s.Outbound(comment)
	assert.Equal(t, commenter.ID, rep.UserComment)
	assert.Equal(t, post.ID, rep.Post)
}
