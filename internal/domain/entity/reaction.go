package entity

// ReactionType identifies one of the two mutually exclusive reaction sets.
type ReactionType string

const (
	ReactionTypeLike    ReactionType = "likes"
	ReactionTypeDislike ReactionType = "dislikes"
)

// Valid reports whether the reaction type is one of the two recognized values.
func (t ReactionType) Valid() bool {
	return t == ReactionTypeLike || t == ReactionTypeDislike
}

// Opposite returns the other reaction type.
func (t ReactionType) Opposite() ReactionType {
	if t == ReactionTypeLike {
		return ReactionTypeDislike
	}
	return ReactionTypeLike
}

// Reactions holds the user-id sets for both reaction types. A user id appears
// in at most one of the two sets at any time.
type Reactions struct {
	Likes    []string `bson:"likes" json:"likes"`
	Dislikes []string `bson:"dislikes" json:"dislikes"`
}

// Set returns the member set for the given reaction type.
func (r *Reactions) Set(t ReactionType) []string {
	if t == ReactionTypeLike {
		return r.Likes
	}
	return r.Dislikes
}

// Has reports whether the user is a member of the given reaction set.
func (r *Reactions) Has(t ReactionType, userID string) bool {
	for _, id := range r.Set(t) {
		if id == userID {
			return true
		}
	}
	return false
}

// ReactionTargetKind identifies the entity variant a reaction applies to.
type ReactionTargetKind string

const (
	ReactionTargetBlog    ReactionTargetKind = "blog"
	ReactionTargetComment ReactionTargetKind = "comment"
	ReactionTargetReply   ReactionTargetKind = "reply"
)

// ReactionResult is the post-toggle state returned to the client so it can
// update its view without a re-fetch.
type ReactionResult struct {
	UserLiked     bool
	UserDisliked  bool
	LikesCount    int
	DislikesCount int
}
