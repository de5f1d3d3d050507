package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogRepo          *BlogRepo
	entryRepo         *EntryRepo
	tagRepo           *TagRepo
	userRepo          *UserRepo
	authorProfileRepo *AuthorProfileRepo
	userProfileRepo   *UserProfileRepo
	commentRepo       *CommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogRepo:          NewBlogRepo(db),
		entryRepo:         NewEntryRepo(db),
		tagRepo:           NewTagRepo(db),
		userRepo:          NewUserRepo(db),
		authorProfileRepo: NewAuthorProfileRepo(db),
		userProfileRepo:   NewUserProfileRepo(db),
		commentRepo:       NewCommentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) EntryRepo() *EntryRepo {
	return d.entryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) AuthorProfileRepo() *AuthorProfileRepo {
	return d.authorProfileRepo
}

func (d Database) UserProfileRepo() *UserProfileRepo {
	return d.userProfileRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}
