package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

func TestBlogUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepo(db)

	newTestBlog(t, db, "Travel", "travel")

	t.Run("duplicate name on raw path is IntegrityError", func(t *testing.T) {
		dup := &models.Blog{Name: "Travel", Slug: "travel-2"}
		err := repo.Add(dup)
		require.Error(t, err)
		assert.True(t, errs.IsIntegrity(err))
	})

	t.Run("duplicate slug on raw path is IntegrityError", func(t *testing.T) {
		dup := &models.Blog{Name: "Travelling", Slug: "travel"}
		err := repo.Add(dup)
		require.Error(t, err)
		assert.True(t, errs.IsIntegrity(err))
	})

	t.Run("duplicate on validated path is ValidationError", func(t *testing.T) {
		dup := &models.Blog{Name: "Travel", Slug: "travel"}
		err := repo.AddValidated(dup)
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.False(t, errs.IsIntegrity(err))
	})

	t.Run("distinct name and slug pass validated path", func(t *testing.T) {
		blog := &models.Blog{Name: "Food", Slug: "food"}
		require.NoError(t, repo.AddValidated(blog))
	})
}

func TestBlogAddValidatedChecksRules(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepo(db)

	err := repo.AddValidated(&models.Blog{Name: "No Slug", Slug: "Bad Slug!"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestBlogDeleteCascadesEntries(t *testing.T) {
	db := newTestDB(t)
	blogRepo := NewBlogRepo(db)
	entryRepo := NewEntryRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	for i, headline := range []string{"A", "B", "C"} {
		newTestEntry(t, db, blog, headline, models.Slugify(headline), time.Now().Add(time.Duration(i)*time.Minute))
	}

	require.NoError(t, blogRepo.Delete(blog.ID))

	entries, err := entryRepo.FindAll(EntryListOptions{})
	require.NoError(t, err)
	assert.Empty(t, entries, "deleting a blog must remove all of its entries")

	_, err = blogRepo.FindByID(blog.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestBlogFindActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepo(db)

	busy := newTestBlog(t, db, "Busy", "busy")
	quiet := newTestBlog(t, db, "Quiet", "quiet")
	newTestBlog(t, db, "Empty", "empty")

	for i := 0; i < 3; i++ {
		newTestEntry(t, db, busy, "Post "+string(rune('A'+i)), models.Slugify("post-"+string(rune('a'+i))), time.Now())
	}
	newTestEntry(t, db, quiet, "Lone", "lone", time.Now())

	t.Run("alias-only count filters without projecting", func(t *testing.T) {
		blogs, err := repo.FindActive(1)
		require.NoError(t, err)
		require.Len(t, blogs, 1)
		assert.Equal(t, busy.ID, blogs[0].ID)
	})

	t.Run("materialized count is readable in the projection", func(t *testing.T) {
		rows, err := repo.FindActiveWithEntryCounts(0)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		counts := map[string]int64{}
		for _, row := range rows {
			counts[row.Slug] = row.EntryCount
		}
		assert.Equal(t, int64(3), counts["busy"])
		assert.Equal(t, int64(1), counts["quiet"])
	})
}

func TestBlogUpdateRefreshesTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	created := blog.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	headline := "Around the world"
	blog.Headline = &headline
	require.NoError(t, repo.Update(blog))

	reloaded, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.UpdatedAt.After(created))
}

func TestBlogNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepo(db)

	_, err := repo.FindBySlug("nope")
	assert.True(t, errs.IsNotFound(err))
}
