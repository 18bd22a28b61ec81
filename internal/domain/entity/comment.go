package entity

import "time"

// Comment represents a comment on a blog post. Replies live in the same
// collection; a reply is a comment whose id appears in another comment's
// ReplyIDs and which carries no replies of its own.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Content   string    `bson:"content" json:"content"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	ReplyIDs  []string  `bson:"replies" json:"replies"`
	Reactions Reactions `bson:"reactions" json:"reactions"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AuthorSummary is the subset of user fields embedded in rendered
// comment/reply trees and blog listings.
type AuthorSummary struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// CommentView is a comment joined with its author and resolved replies, as
// embedded in the blog detail payload.
type CommentView struct {
	Comment `bson:",inline"`
	Author  AuthorSummary `json:"author"`
	Replies []CommentView `json:"reply_list,omitempty"`
}
