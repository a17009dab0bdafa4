package seed

import (
	"context"
	"log"

	"fireside/internal/models"

	"gorm.io/gorm"
)

// Run populates the database with a mesh of accounts, profiles, posts,
// comments and likes according to the given options.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	seeded := make([]*models.Account, 0, opts.Accounts)
	for i := 0; i < opts.Accounts; i++ {
		account, err := f.CreateAccount()
		if err != nil {
			return err
		}
		seeded = append(seeded, account)
	}

	var posts []*models.Post
	for _, account := range seeded {
		for i := 0; i < opts.PostsPerAccount; i++ {
			post, err := f.CreatePost(account)
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		nComments := f.rand.Intn(opts.MaxComments + 1)
		for i := 0; i < nComments; i++ {
			commenter := seeded[f.rand.Intn(len(seeded))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
		}

		nLikes := f.rand.Intn(opts.MaxLikes + 1)
		for _, liker := range f.pickAccounts(seeded, nLikes) {
			if err := f.LikePost(ctx, post, liker); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d accounts and %d posts", len(seeded), len(posts))
	return nil
}

// pickAccounts returns up to n distinct accounts from the pool.
func (f *Factory) pickAccounts(pool []*models.Account, n int) []*models.Account {
	if n >= len(pool) {
		n = len(pool)
	}
	idx := f.rand.Perm(len(pool))[:n]
	picked := make([]*models.Account, 0, n)
	for _, i := range idx {
		picked = append(picked, pool[i])
	}
	return picked
}
