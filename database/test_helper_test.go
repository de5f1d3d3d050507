package database

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dsmelov/blogstore-backend/models"
)

// newTestDB opens the database named by TEST_DATABASE_URL and migrates the
// schema. Tests that need a live database skip when the variable is unset.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed test")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect to test database")

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	// Each test starts from an empty store.
	require.NoError(t, db.Exec(`
		TRUNCATE TABLE entry_authors, entry_tags, comments, entries, tags,
			author_profiles, user_profiles, blogs, users CASCADE
	`).Error)

	return db
}

func newTestBlog(t *testing.T, db *gorm.DB, name, slug string) *models.Blog {
	t.Helper()
	blog := &models.Blog{Name: name, Slug: slug}
	require.NoError(t, NewBlogRepo(db).Add(blog))
	require.NotEqual(t, uuid.Nil, blog.ID)
	return blog
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, user.SetPassword("test-password"))
	require.NoError(t, NewUserRepo(db).Add(user))
	return user
}

func newTestEntry(t *testing.T, db *gorm.DB, blog *models.Blog, headline, slug string, pubDate time.Time) *models.Entry {
	t.Helper()
	entry := &models.Entry{
		BlogID:   blog.ID,
		Headline: headline,
		Slug:     slug,
		Summary:  "summary of " + headline,
		Body:     "body of " + headline,
		PubDate:  pubDate,
	}
	require.NoError(t, NewEntryRepo(db).Add(entry))
	return entry
}
