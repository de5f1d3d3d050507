package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single post inside a blog. The (blog_id, headline, slug) triple
// is unique; listings default to newest pub_date first.
//
// NumberOfComments and NumberOfPingbacks are denormalized counters maintained
// by callers, the store never recomputes them.
type Entry struct {
	ID                uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	BlogID            uuid.UUID `json:"blogId" db:"blog_id" gorm:"type:uuid;not null;index:idx_entries_blog_id;uniqueIndex:idx_entries_blog_headline_slug"`
	Headline          string    `json:"headline" db:"headline" gorm:"size:255;not null;uniqueIndex:idx_entries_blog_headline_slug" validate:"required,max=255"`
	Slug              string    `json:"slug" db:"slug" gorm:"size:255;not null;uniqueIndex:idx_entries_blog_headline_slug" validate:"required,max=255,slug"`
	Summary           string    `json:"summary" db:"summary" gorm:"type:text;not null" validate:"required"`
	Body              string    `json:"body" db:"body" gorm:"type:text;not null" validate:"required"`
	PubDate           time.Time `json:"pubDate" db:"pub_date" gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_entries_pub_date,sort:desc"`
	ModDate           time.Time `json:"modDate" db:"mod_date" gorm:"not null;autoUpdateTime"`
	NumberOfComments  int       `json:"numberOfComments" db:"number_of_comments" gorm:"not null;default:0" validate:"gte=0"`
	NumberOfPingbacks int       `json:"numberOfPingbacks" db:"number_of_pingbacks" gorm:"not null;default:0" validate:"gte=0"`
	Rating            float64   `json:"rating" db:"rating" gorm:"not null;default:0"`

	Blog    Blog            `json:"blog,omitempty" gorm:"foreignKey:BlogID;references:ID"`
	Authors []AuthorProfile `json:"authors,omitempty" gorm:"many2many:entry_authors;constraint:OnDelete:CASCADE"`
	Tags    []Tag           `json:"tags,omitempty" gorm:"many2many:entry_tags;constraint:OnDelete:CASCADE"`
}
