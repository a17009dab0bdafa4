// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"fireside/internal/accounts"
	"fireside/internal/models"
	"fireside/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls seeding volume and behavior.
type Options struct {
	Accounts        int
	PostsPerAccount int
	MaxComments     int
	MaxLikes        int
	// SkipBcrypt stores a fixed plaintext-looking sentinel instead of
	// hashing; only for fast local iterations, never for real data.
	SkipBcrypt bool
}

// DefaultOptions returns a small but realistic seeding profile.
func DefaultOptions() Options {
	return Options{
		Accounts:        10,
		PostsPerAccount: 3,
		MaxComments:     5,
		MaxLikes:        6,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateAccount constructs and persists a sample account with a profile.
func (f *Factory) CreateAccount(overrides ...func(*models.Account)) (*models.Account, error) {
	account := &models.Account{
		Email:    accounts.NormalizeEmail(gofakeit.Email()),
		IsActive: true,
	}

	if f.opts.SkipBcrypt {
		account.Password = "password123"
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		account.Password = string(hashed)
	}

	for _, override := range overrides {
		override(account)
	}

	if err := f.db.Create(account).Error; err != nil {
		return nil, fmt.Errorf("seed account: %w", err)
	}

	nick := gofakeit.Username()
	if len(nick) > 20 {
		nick = nick[:20]
	}
	profile := &models.Profile{
		NickName:  nick,
		AccountID: account.ID,
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}

	return account, nil
}

// CreatePost constructs and persists a sample post for the given account.
func (f *Factory) CreatePost(account *models.Account, overrides ...func(*models.Post)) (*models.Post, error) {
	title := gofakeit.Sentence(4)
	if len(title) > 100 {
		title = title[:100]
	}
	post := &models.Post{
		Title:     title,
		AccountID: account.ID,
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on a post.
func (f *Factory) CreateComment(account *models.Account, post *models.Post) (*models.Comment, error) {
	text := gofakeit.Sentence(6)
	if len(text) > 100 {
		text = text[:100]
	}
	comment := &models.Comment{
		Text:      text,
		AccountID: account.ID,
		PostID:    post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

// LikePost records a like from the given account on a post.
func (f *Factory) LikePost(ctx context.Context, post *models.Post, account *models.Account) error {
	repo := repository.NewPostRepository(f.db)
	return repo.Like(ctx, post.ID, account.ID)
}
