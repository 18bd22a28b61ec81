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

// BlogRepository represents the MongoDB implementation of the IBlogRepository interface.
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{collection: db.Collection("blogs")}
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

// CreateBlog inserts a new blog post record into the database.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	if blog.CommentIDs == nil {
		blog.CommentIDs = []string{}
	}
	if blog.Reactions.Likes == nil {
		blog.Reactions.Likes = []string{}
	}
	if blog.Reactions.Dislikes == nil {
		blog.Reactions.Dislikes = []string{}
	}
	_, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("blog with slug '%s' %w", blog.Slug, contract.ErrDuplicate)
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogByID retrieves a single blog post by its unique id.
func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	var blog entity.Blog
	filter := bson.M{"_id": blogID, "is_deleted": false}

	err := r.collection.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id '%s' %w", blogID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}

	return &blog, nil
}

// GetBlogBySlug retrieves a single blog post by its unique slug.
func (r *BlogRepository) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	var blog entity.Blog
	filter := bson.M{"slug": slug, "is_deleted": false}

	err := r.collection.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with slug '%s' %w", slug, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}

	return &blog, nil
}

// GetBlogs retrieves all non-deleted blog posts, newest first.
func (r *BlogRepository) GetBlogs(ctx context.Context) ([]*entity.Blog, error) {
	filter := bson.M{"is_deleted": false}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

// GetBlogsByCategory retrieves all blog posts in a category, newest first.
func (r *BlogRepository) GetBlogsByCategory(ctx context.Context, category string) ([]*entity.Blog, error) {
	filter := bson.M{"category": category, "is_deleted": false}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs for category '%s': %w", category, err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

// GetCategories returns the distinct categories across all blog posts.
func (r *BlogRepository) GetCategories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{"is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// SampleBlogByCategory returns one random blog post in the category.
func (r *BlogRepository) SampleBlogByCategory(ctx context.Context, category string) (*entity.Blog, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"category": category, "is_deleted": false}}},
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample blog for category '%s': %w", category, err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode sampled blog: %w", err)
	}
	if len(blogs) == 0 {
		return nil, fmt.Errorf("no blog in category '%s' %w", category, contract.ErrNotFound)
	}
	return blogs[0], nil
}

// GetRelatedBlogs returns up to limit blog posts sharing the category, excluding excludeID.
func (r *BlogRepository) GetRelatedBlogs(ctx context.Context, category, excludeID string, limit int) ([]*entity.Blog, error) {
	filter := bson.M{
		"category":   category,
		"_id":        bson.M{"$ne": excludeID},
		"is_deleted": false,
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve related blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode related blogs: %w", err)
	}
	return blogs, nil
}

// UpdateBlog updates a blog with the provided fields.
func (r *BlogRepository) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	update := bson.M{"$set": updates}
	filter := bson.M{"_id": blogID, "is_deleted": false}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog with id '%s' %w", blogID, contract.ErrNotFound)
	}
	return nil
}

// DeleteBlog marks a blog as deleted.
func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
	filter := bson.M{"_id": blogID, "is_deleted": false}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog with id '%s' %w", blogID, contract.ErrNotFound)
	}
	return nil
}

// AddCommentID appends a comment id to the blog's ordered comment list.
func (r *BlogRepository) AddCommentID(ctx context.Context, blogID, commentID string) error {
	filter := bson.M{"_id": blogID, "is_deleted": false}
	update := bson.M{"$push": bson.M{"comments": commentID}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to attach comment to blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog with id '%s' %w", blogID, contract.ErrNotFound)
	}
	return nil
}

// RemoveCommentID detaches a comment id from the blog's comment list.
func (r *BlogRepository) RemoveCommentID(ctx context.Context, blogID, commentID string) error {
	filter := bson.M{"_id": blogID}
	update := bson.M{"$pull": bson.M{"comments": commentID}}

	if _, err := r.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to detach comment from blog: %w", err)
	}
	return nil
}

// FindBlogByCommentID resolves the blog that owns the given comment.
func (r *BlogRepository) FindBlogByCommentID(ctx context.Context, commentID string) (*entity.Blog, error) {
	var blog entity.Blog
	filter := bson.M{"comments": commentID, "is_deleted": false}

	err := r.collection.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog owning comment '%s' %w", commentID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve owning blog: %w", err)
	}
	return &blog, nil
}

// GetReactions returns the current reaction sets of a blog post.
func (r *BlogRepository) GetReactions(ctx context.Context, targetID string) (*entity.Reactions, error) {
	var blog entity.Blog
	filter := bson.M{"_id": targetID, "is_deleted": false}
	opts := options.FindOne().SetProjection(bson.M{"reactions": 1})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id '%s' %w", targetID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog reactions: %w", err)
	}
	return &blog.Reactions, nil
}

// ApplyToggle applies one reaction toggle as a single atomic update and
// returns the post-update reaction sets.
func (r *BlogRepository) ApplyToggle(ctx context.Context, targetID, userID string, add *entity.ReactionType, remove []entity.ReactionType) (*entity.Reactions, error) {
	filter := bson.M{"_id": targetID, "is_deleted": false}
	update := buildToggleUpdate(userID, add, remove)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog entity.Blog
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id '%s' %w", targetID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to apply reaction toggle: %w", err)
	}
	return &blog.Reactions, nil
}

// buildToggleUpdate translates a toggle into field-level $pull/$addToSet
// operators. The storage engine applies the whole document atomically, so
// concurrent toggles on the same entity never lose updates.
func buildToggleUpdate(userID string, add *entity.ReactionType, remove []entity.ReactionType) bson.M {
	update := bson.M{}
	if len(remove) > 0 {
		pull := bson.M{}
		for _, t := range remove {
			pull["reactions."+string(t)] = userID
		}
		update["$pull"] = pull
	}
	if add != nil {
		update["$addToSet"] = bson.M{"reactions." + string(*add): userID}
	}
	return update
}
