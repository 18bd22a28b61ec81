package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// CommentRepository is the MongoDB implementation of ICommentRepository.
// Comments and replies share one collection; a reply is referenced from its
// parent comment's replies array.
type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection("comments")}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

// Create inserts a new comment or reply.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	if comment.ReplyIDs == nil {
		comment.ReplyIDs = []string{}
	}
	if comment.Reactions.Likes == nil {
		comment.Reactions.Likes = []string{}
	}
	if comment.Reactions.Dislikes == nil {
		comment.Reactions.Dislikes = []string{}
	}

	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a single comment by id.
func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment with id '%s' %w", commentID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// GetByIDs returns the comments for the given ids, preserving input order.
// Ids that no longer resolve are skipped.
func (r *CommentRepository) GetByIDs(ctx context.Context, commentIDs []string) ([]*entity.Comment, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": commentIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer cursor.Close(ctx)

	var fetched []*entity.Comment
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	byID := make(map[string]*entity.Comment, len(fetched))
	for _, c := range fetched {
		byID[c.ID] = c
	}
	ordered := make([]*entity.Comment, 0, len(commentIDs))
	for _, id := range commentIDs {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// UpdateContent replaces the text of a comment.
func (r *CommentRepository) UpdateContent(ctx context.Context, commentID, content string) error {
	filter := bson.M{"_id": commentID}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment with id '%s' %w", commentID, contract.ErrNotFound)
	}
	return nil
}

// Delete removes a comment document.
func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("comment with id '%s' %w", commentID, contract.ErrNotFound)
	}
	return nil
}

// AddReplyID appends a reply id to the parent comment's reply list.
func (r *CommentRepository) AddReplyID(ctx context.Context, parentID, replyID string) error {
	filter := bson.M{"_id": parentID}
	update := bson.M{"$push": bson.M{"replies": replyID}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to attach reply to comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment with id '%s' %w", parentID, contract.ErrNotFound)
	}
	return nil
}

// RemoveReplyID detaches a reply id from the parent comment.
func (r *CommentRepository) RemoveReplyID(ctx context.Context, parentID, replyID string) error {
	filter := bson.M{"_id": parentID}
	update := bson.M{"$pull": bson.M{"replies": replyID}}

	if _, err := r.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to detach reply from comment: %w", err)
	}
	return nil
}

// FindParentComment resolves the comment that holds replyID in its reply list.
func (r *CommentRepository) FindParentComment(ctx context.Context, replyID string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"replies": replyID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("parent of reply '%s' %w", replyID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve parent comment: %w", err)
	}
	return &comment, nil
}

// GetReactions returns the current reaction sets of a comment or reply.
func (r *CommentRepository) GetReactions(ctx context.Context, targetID string) (*entity.Reactions, error) {
	var comment entity.Comment
	opts := options.FindOne().SetProjection(bson.M{"reactions": 1})

	err := r.collection.FindOne(ctx, bson.M{"_id": targetID}, opts).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment with id '%s' %w", targetID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve comment reactions: %w", err)
	}
	return &comment.Reactions, nil
}

// ApplyToggle applies one reaction toggle as a single atomic update and
// returns the post-update reaction sets.
func (r *CommentRepository) ApplyToggle(ctx context.Context, targetID, userID string, add *entity.ReactionType, remove []entity.ReactionType) (*entity.Reactions, error) {
	filter := bson.M{"_id": targetID}
	update := buildToggleUpdate(userID, add, remove)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment entity.Comment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment with id '%s' %w", targetID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to apply reaction toggle: %w", err)
	}
	return &comment.Reactions, nil
}
