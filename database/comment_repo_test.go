package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

func addComment(t *testing.T, repo *CommentRepo, user *models.User, entry *models.Entry, parent *models.Comment, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: text}
	if user != nil {
		comment.UserID = &user.ID
	}
	if entry != nil {
		comment.EntryID = &entry.ID
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	require.NoError(t, repo.Add(comment))
	return comment
}

func TestCommentUserNullifiedOnUserDelete(t *testing.T) {
	db := newTestDB(t)
	commentRepo := NewCommentRepo(db)
	userRepo := NewUserRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	entry := newTestEntry(t, db, blog, "A", "a", time.Now())
	user := newTestUser(t, db, "carol")

	comment := addComment(t, commentRepo, user, entry, nil, "nice post")

	require.NoError(t, userRepo.Delete(user.ID))

	reloaded, err := commentRepo.FindByID(comment.ID)
	require.NoError(t, err, "the comment must survive the user delete")
	assert.Nil(t, reloaded.UserID, "the user reference must be cleared, not cascaded")
	assert.Equal(t, "nice post", reloaded.Text)
}

func TestCommentEntryNullifiedOnEntryDelete(t *testing.T) {
	db := newTestDB(t)
	commentRepo := NewCommentRepo(db)
	entryRepo := NewEntryRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	entry := newTestEntry(t, db, blog, "A", "a", time.Now())
	user := newTestUser(t, db, "carol")

	comment := addComment(t, commentRepo, user, entry, nil, "still here")

	require.NoError(t, entryRepo.Delete(entry.ID))

	reloaded, err := commentRepo.FindByID(comment.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.EntryID)
}

func TestCommentSubtreeCascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	entry := newTestEntry(t, db, blog, "A", "a", time.Now())
	user := newTestUser(t, db, "carol")

	root := addComment(t, repo, user, entry, nil, "root")
	child := addComment(t, repo, user, entry, root, "child")
	grandchild := addComment(t, repo, user, entry, child, "grandchild")
	sibling := addComment(t, repo, user, entry, nil, "unrelated")

	require.NoError(t, repo.Delete(root.ID))

	for _, id := range []uuid.UUID{root.ID, child.ID, grandchild.ID} {
		_, err := repo.FindByID(id)
		assert.True(t, errs.IsNotFound(err), "subtree must be removed transitively")
	}

	_, err := repo.FindByID(sibling.ID)
	assert.NoError(t, err, "comments outside the subtree must survive")
}

func TestCommentFindByEntryAndReplies(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	entry := newTestEntry(t, db, blog, "A", "a", time.Now())
	user := newTestUser(t, db, "carol")

	first := addComment(t, repo, user, entry, nil, "first")
	addComment(t, repo, user, entry, first, "reply one")
	addComment(t, repo, user, entry, first, "reply two")

	all, err := repo.FindByEntry(entry.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Text, "oldest first")

	replies, err := repo.FindReplies(first.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	for _, reply := range replies {
		require.NotNil(t, reply.ParentID)
		assert.Equal(t, first.ID, *reply.ParentID)
	}
}

func TestCommentAddBatchAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepo(db)

	blog := newTestBlog(t, db, "Travel", "travel")
	entry := newTestEntry(t, db, blog, "A", "a", time.Now())

	batch := []*models.Comment{
		{EntryID: &entry.ID, Text: "fine"},
		{EntryID: &entry.ID, Text: ""}, // invalid: empty text
	}
	err := repo.AddBatch(batch, true)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	remaining, listErr := repo.FindByEntry(entry.ID)
	require.NoError(t, listErr)
	assert.Empty(t, remaining)

	t.Run("the unvalidated path does not check fields", func(t *testing.T) {
		loose := []*models.Comment{
			{EntryID: &entry.ID, Text: "ok"},
			{EntryID: &entry.ID, Text: "also ok"},
		}
		require.NoError(t, repo.AddBatch(loose, false))

		remaining, err := repo.FindByEntry(entry.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})
}
