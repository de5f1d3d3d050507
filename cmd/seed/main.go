// Command seed populates the database with demonstration content: blogs,
// tags, users with profiles, entries with author and tag membership, and
// threaded comments.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dsmelov/blogstore-backend/database"
	"github.com/dsmelov/blogstore-backend/models"
)

const (
	numUsers    = 20
	numWorkers  = 4
	batchUsers  = 10
	defaultPass = "changeme123"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		zlog.Fatal().Msg("DATABASE_URL is required")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: newLogger})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		zlog.Fatal().Err(err).Msg("Failed to enable pgcrypto extension")
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		zlog.Fatal().Err(err).Msg("Failed to migrate schema")
	}

	d := database.New(db)

	blogs := seedBlogs(d)
	tags := seedTags(d)

	sequential := seedUsersSequential(d, numUsers/2)
	concurrent := seedUsersConcurrent(d, numUsers/2, numWorkers)
	bulk := seedUsersBulk(d, batchUsers)

	users := append(sequential, concurrent...)
	users = append(users, bulk...)

	authors := seedAuthorProfiles(d, users[:3])
	seedUserProfiles(d, users)

	entries := seedEntries(d, blogs, authors, tags)
	seedComments(d, users, entries)

	zlog.Info().
		Int("blogs", len(blogs)).
		Int("tags", len(tags)).
		Int("users", len(users)).
		Int("entries", len(entries)).
		Msg("Seeding complete")
}

func seedBlogs(d database.Database) []*models.Blog {
	names := []string{"Travel Notes", "Kitchen Stories", "Engineering Weekly"}

	blogs := make([]*models.Blog, 0, len(names))
	for _, name := range names {
		blog := &models.Blog{
			Name: name,
			Slug: models.Slugify(name),
		}
		if err := d.BlogRepo().AddValidated(blog); err != nil {
			zlog.Fatal().Err(err).Str("name", name).Msg("Failed to seed blog")
		}
		blogs = append(blogs, blog)
	}
	return blogs
}

func seedTags(d database.Database) []*models.Tag {
	names := []string{"go", "postgres", "recipes", "hiking", "reviews"}

	tags := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		tag := &models.Tag{Name: name, Slug: models.Slugify(name)}
		if err := d.TagRepo().AddValidated(tag); err != nil {
			zlog.Fatal().Err(err).Str("name", name).Msg("Failed to seed tag")
		}
		tags = append(tags, tag)
	}
	return tags
}

func newSeedUser(n int) *models.User {
	user := &models.User{
		Username: fmt.Sprintf("user%03d", n),
		Email:    fmt.Sprintf("user%03d@example.com", n),
	}
	if err := user.SetPassword(defaultPass); err != nil {
		zlog.Fatal().Err(err).Msg("Failed to hash password")
	}
	return user
}

// seedUsersSequential inserts users one call at a time.
func seedUsersSequential(d database.Database, count int) []*models.User {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := newSeedUser(i)
		if err := d.UserRepo().AddValidated(user); err != nil {
			zlog.Fatal().Err(err).Str("username", user.Username).Msg("Failed to seed user")
		}
		users = append(users, user)
	}
	return users
}

// seedUsersConcurrent fans user creation out over a fixed pool of workers.
// Each insert is its own transaction; the workers only parallelize the calls.
func seedUsersConcurrent(d database.Database, count, workers int) []*models.User {
	jobs := make(chan *models.User)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for user := range jobs {
				if err := d.UserRepo().AddValidated(user); err != nil {
					zlog.Error().Err(err).Str("username", user.Username).Msg("Failed to seed user")
				}
			}
		}()
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := newSeedUser(1000 + i)
		users = append(users, user)
		jobs <- user
	}
	close(jobs)
	wg.Wait()

	return users
}

// seedUsersBulk inserts a whole batch in one transaction; any failure rolls
// the batch back.
func seedUsersBulk(d database.Database, count int) []*models.User {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, newSeedUser(2000+i))
	}

	if err := d.UserRepo().AddBatch(users, true); err != nil {
		zlog.Fatal().Err(err).Msg("Failed to seed user batch")
	}
	return users
}

func seedAuthorProfiles(d database.Database, users []*models.User) []*models.AuthorProfile {
	profiles := make([]*models.AuthorProfile, 0, len(users))
	for _, user := range users {
		bio := fmt.Sprintf("Bio for %s", user.Username)
		profile := &models.AuthorProfile{UserID: user.ID, Bio: &bio}
		if err := d.AuthorProfileRepo().AddValidated(profile); err != nil {
			zlog.Fatal().Err(err).Str("username", user.Username).Msg("Failed to seed author profile")
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

func seedUserProfiles(d database.Database, users []*models.User) {
	for i, user := range users {
		profile := &models.UserProfile{UserID: user.ID}
		// every third user gets a phone number
		if i%3 == 0 {
			phone := fmt.Sprintf("+79%09d", 100000000+i)
			profile.Phone = &phone
		}
		if err := d.UserProfileRepo().AddValidated(profile); err != nil {
			zlog.Fatal().Err(err).Str("username", user.Username).Msg("Failed to seed user profile")
		}
	}
}

func seedEntries(d database.Database, blogs []*models.Blog, authors []*models.AuthorProfile, tags []*models.Tag) []*models.Entry {
	var entries []*models.Entry

	for bi, blog := range blogs {
		for n := 0; n < 4; n++ {
			headline := fmt.Sprintf("%s post %d", blog.Name, n+1)
			entry := &models.Entry{
				BlogID:   blog.ID,
				Headline: headline,
				Slug:     models.Slugify(headline),
				Summary:  fmt.Sprintf("Summary of %s", headline),
				Body:     fmt.Sprintf("Body of %s.", headline),
				PubDate:  time.Now().Add(-time.Duration(n) * 24 * time.Hour),
				Rating:   float64(n),
			}
			if err := d.EntryRepo().AddValidated(entry); err != nil {
				zlog.Fatal().Err(err).Str("headline", headline).Msg("Failed to seed entry")
			}

			author := authors[(bi+n)%len(authors)]
			if err := d.EntryRepo().ReplaceAuthors(entry, []*models.AuthorProfile{author}); err != nil {
				zlog.Fatal().Err(err).Msg("Failed to attach entry authors")
			}

			entryTags := []*models.Tag{tags[(bi+n)%len(tags)], tags[(bi+n+1)%len(tags)]}
			if err := d.EntryRepo().ReplaceTags(entry, entryTags); err != nil {
				zlog.Fatal().Err(err).Msg("Failed to attach entry tags")
			}

			entries = append(entries, entry)
		}
	}
	return entries
}

func seedComments(d database.Database, users []*models.User, entries []*models.Entry) {
	for ei, entry := range entries {
		entryID := entry.ID

		var parentID *uuid.UUID
		for n := 0; n < 3; n++ {
			user := users[(ei+n)%len(users)]
			comment := &models.Comment{
				UserID:   &user.ID,
				EntryID:  &entryID,
				ParentID: parentID,
				Text:     fmt.Sprintf("Comment %d on %s", n+1, entry.Headline),
			}
			if err := d.CommentRepo().AddValidated(comment); err != nil {
				zlog.Fatal().Err(err).Msg("Failed to seed comment")
			}
			if err := d.EntryRepo().IncrementCounters(entryID, 1, 0); err != nil {
				zlog.Fatal().Err(err).Msg("Failed to bump comment counter")
			}

			// the next comment replies to this one, forming a small thread
			id := comment.ID
			parentID = &id
		}
	}
}
