package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

const relatedBlogLimit = 3

// BlogUsecase implements blog CRUD and the read aggregates served by the
// cached endpoints.
type BlogUsecase struct {
	blogRepo    contract.IBlogRepository
	commentRepo contract.ICommentRepository
	userRepo    contract.IUserRepository
	uuidgen     contract.IUUIDGenerator
	invalidator *CacheInvalidator
	logger      usecasecontract.IAppLogger
}

// NewBlogUsecase creates a new instance of BlogUsecase.
func NewBlogUsecase(blogRepo contract.IBlogRepository, commentRepo contract.ICommentRepository, userRepo contract.IUserRepository, uuidgen contract.IUUIDGenerator, invalidator *CacheInvalidator, logger usecasecontract.IAppLogger) *BlogUsecase {
	return &BlogUsecase{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		uuidgen:     uuidgen,
		invalidator: invalidator,
		logger:      logger,
	}
}

var _ usecasecontract.IBlogUseCase = (*BlogUsecase)(nil)

// CreateBlog creates a new blog post.
func (u *BlogUsecase) CreateBlog(ctx context.Context, authorID string, in usecasecontract.CreateBlogInput) (*entity.Blog, error) {
	if in.Title == "" || in.Description == "" || in.Content == "" {
		return nil, errors.New("title, description and content are required")
	}

	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	slug := entity.Slugify(in.Title)
	if slug == "" {
		return nil, errors.New("title does not produce a valid slug")
	}

	blog := &entity.Blog{
		ID:          u.uuidgen.NewUUID(),
		Title:       in.Title,
		Slug:        slug,
		Description: in.Description,
		Content:     in.Content,
		AuthorID:    authorID,
		Image:       in.Image,
		Category:    category,
		Tags:        in.Tags,
	}
	if err := u.blogRepo.CreateBlog(ctx, blog); err != nil {
		return nil, err
	}

	// The new post appears in listings immediately; its detail entry does
	// not exist yet but clearing it is harmless.
	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return blog, nil
}

// GetHomepage builds the homepage aggregate: all blogs newest first, one
// random pick per category, and the per-category groupings.
func (u *BlogUsecase) GetHomepage(ctx context.Context) (*usecasecontract.HomepagePayload, error) {
	blogs, err := u.blogRepo.GetBlogs(ctx)
	if err != nil {
		return nil, err
	}

	payload := &usecasecontract.HomepagePayload{
		Blogs:                derefBlogs(blogs),
		RandomBlogByCategory: map[string]entity.Blog{},
		BlogsByCategory:      map[string][]entity.Blog{},
	}

	categories, err := u.blogRepo.GetCategories(ctx)
	if err != nil {
		// The plain listing is still serveable without the groupings.
		u.logger.Warnf("homepage: failed to load categories: %v", err)
		return payload, nil
	}

	for _, category := range categories {
		if sample, err := u.blogRepo.SampleBlogByCategory(ctx, category); err == nil {
			payload.RandomBlogByCategory[category] = *sample
		}
		grouped, err := u.blogRepo.GetBlogsByCategory(ctx, category)
		if err != nil {
			u.logger.Warnf("homepage: failed to load category '%s': %v", category, err)
			continue
		}
		payload.BlogsByCategory[category] = derefBlogs(grouped)
	}
	return payload, nil
}

// GetBlogDetail builds the detail aggregate for one post: the post, its
// author, the resolved comment/reply tree and related posts.
func (u *BlogUsecase) GetBlogDetail(ctx context.Context, slug string) (*usecasecontract.BlogDetailPayload, error) {
	blog, err := u.blogRepo.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := u.buildCommentTree(ctx, blog.CommentIDs)
	if err != nil {
		return nil, err
	}

	payload := &usecasecontract.BlogDetailPayload{
		Blog:         *blog,
		Comments:     comments,
		CommentCount: len(comments),
	}

	if author, err := u.userRepo.GetUserByID(ctx, blog.AuthorID); err == nil {
		payload.Author = author.Summary()
	}

	related, err := u.blogRepo.GetRelatedBlogs(ctx, blog.Category, blog.ID, relatedBlogLimit)
	if err != nil {
		u.logger.Warnf("blog detail: failed to load related blogs for '%s': %v", slug, err)
	} else {
		payload.RelatedBlogs = derefBlogs(related)
	}
	return payload, nil
}

// GetBlogsByCategory returns every blog grouped by its category.
func (u *BlogUsecase) GetBlogsByCategory(ctx context.Context) (map[string][]entity.Blog, error) {
	categories, err := u.blogRepo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]entity.Blog, len(categories))
	for _, category := range categories {
		blogs, err := u.blogRepo.GetBlogsByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("failed to load category '%s': %w", category, err)
		}
		grouped[category] = derefBlogs(blogs)
	}
	return grouped, nil
}

// UpdateBlog applies the provided changes to the author's own post and
// invalidates every cached view embedding it.
func (u *BlogUsecase) UpdateBlog(ctx context.Context, slug, userID string, in usecasecontract.UpdateBlogInput) (*entity.Blog, error) {
	blog, err := u.blogRepo.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != userID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	newSlug := blog.Slug
	if in.Title != nil {
		updates["title"] = *in.Title
		newSlug = entity.Slugify(*in.Title)
		updates["slug"] = newSlug
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Tags != nil {
		updates["tags"] = in.Tags
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if len(updates) == 0 {
		return blog, nil
	}

	if err := u.blogRepo.UpdateBlog(ctx, blog.ID, updates); err != nil {
		return nil, err
	}

	// A renamed post leaves a stale detail entry under the old slug.
	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	if newSlug != blog.Slug {
		u.invalidator.InvalidateBlog(ctx, newSlug)
	}

	return u.blogRepo.GetBlogByID(ctx, blog.ID)
}

// DeleteBlog removes the author's own post.
func (u *BlogUsecase) DeleteBlog(ctx context.Context, slug, userID string) error {
	blog, err := u.blogRepo.GetBlogBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if blog.AuthorID != userID {
		return ErrForbidden
	}

	if err := u.blogRepo.DeleteBlog(ctx, blog.ID); err != nil {
		return err
	}
	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return nil
}

// buildCommentTree resolves the ordered comment ids into comment views with
// author summaries and one level of replies.
func (u *BlogUsecase) buildCommentTree(ctx context.Context, commentIDs []string) ([]entity.CommentView, error) {
	comments, err := u.commentRepo.GetByIDs(ctx, commentIDs)
	if err != nil {
		return nil, err
	}

	replyIDs := make([]string, 0)
	authorIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		replyIDs = append(replyIDs, c.ReplyIDs...)
		authorIDs = append(authorIDs, c.AuthorID)
	}

	replies, err := u.commentRepo.GetByIDs(ctx, replyIDs)
	if err != nil {
		return nil, err
	}
	repliesByID := make(map[string]*entity.Comment, len(replies))
	for _, r := range replies {
		repliesByID[r.ID] = r
		authorIDs = append(authorIDs, r.AuthorID)
	}

	authors, err := u.userRepo.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	summary := func(userID string) entity.AuthorSummary {
		if user, ok := authors[userID]; ok {
			return user.Summary()
		}
		return entity.AuthorSummary{ID: userID}
	}

	views := make([]entity.CommentView, 0, len(comments))
	for _, c := range comments {
		view := entity.CommentView{Comment: *c, Author: summary(c.AuthorID)}
		for _, replyID := range c.ReplyIDs {
			reply, ok := repliesByID[replyID]
			if !ok {
				continue
			}
			view.Replies = append(view.Replies, entity.CommentView{
				Comment: *reply,
				Author:  summary(reply.AuthorID),
			})
		}
		views = append(views, view)
	}
	return views, nil
}

func derefBlogs(blogs []*entity.Blog) []entity.Blog {
	out := make([]entity.Blog, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, *b)
	}
	return out
}
