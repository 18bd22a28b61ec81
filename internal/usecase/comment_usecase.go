package usecase

import (
	"context"
	"errors"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// CommentUsecase implements comment and reply business logic. Every write
// invalidates the owning blog's cached views, because the detail payload
// embeds the full comment/reply tree.
type CommentUsecase struct {
	commentRepo contract.ICommentRepository
	blogRepo    contract.IBlogRepository
	userRepo    contract.IUserRepository
	uuidgen     contract.IUUIDGenerator
	invalidator *CacheInvalidator
}

// NewCommentUsecase creates a new CommentUsecase instance.
func NewCommentUsecase(commentRepo contract.ICommentRepository, blogRepo contract.IBlogRepository, userRepo contract.IUserRepository, uuidgen contract.IUUIDGenerator, invalidator *CacheInvalidator) *CommentUsecase {
	return &CommentUsecase{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		userRepo:    userRepo,
		uuidgen:     uuidgen,
		invalidator: invalidator,
	}
}

var _ usecasecontract.ICommentUseCase = (*CommentUsecase)(nil)

// AddComment creates a comment and attaches it to the blog's ordered comment
// list. Returns the comment and the blog's slug.
func (u *CommentUsecase) AddComment(ctx context.Context, blogSlug, authorID, content string) (*entity.Comment, string, error) {
	if content == "" {
		return nil, "", errors.New("content is required")
	}
	if _, err := u.userRepo.GetUserByID(ctx, authorID); err != nil {
		return nil, "", err
	}
	blog, err := u.blogRepo.GetBlogBySlug(ctx, blogSlug)
	if err != nil {
		return nil, "", err
	}

	comment := &entity.Comment{
		ID:       u.uuidgen.NewUUID(),
		Content:  content,
		AuthorID: authorID,
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, "", err
	}
	if err := u.blogRepo.AddCommentID(ctx, blog.ID, comment.ID); err != nil {
		return nil, "", err
	}

	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return comment, blog.Slug, nil
}

// EditComment replaces the comment's content. Only the author may edit.
func (u *CommentUsecase) EditComment(ctx context.Context, commentID, authorID, content string) (string, error) {
	if content == "" {
		return "", errors.New("content is required")
	}
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return "", err
	}
	if comment.AuthorID != authorID {
		return "", ErrForbidden
	}
	if err := u.commentRepo.UpdateContent(ctx, commentID, content); err != nil {
		return "", err
	}
	return u.invalidateOwner(ctx, commentID)
}

// DeleteComment removes a comment and detaches it from the owning blog.
func (u *CommentUsecase) DeleteComment(ctx context.Context, commentID string) (string, error) {
	// Resolve the owner before the delete breaks the reference.
	blog, err := u.blogRepo.FindBlogByCommentID(ctx, commentID)
	if err != nil {
		return "", err
	}
	if err := u.commentRepo.Delete(ctx, commentID); err != nil {
		return "", err
	}
	if err := u.blogRepo.RemoveCommentID(ctx, blog.ID, commentID); err != nil {
		return "", err
	}

	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return blog.Slug, nil
}

// AddReply creates a reply under a top-level comment. Threads are one level
// deep: replying to a reply is rejected.
func (u *CommentUsecase) AddReply(ctx context.Context, parentCommentID, authorID, content string) (*entity.Comment, string, error) {
	if content == "" {
		return nil, "", errors.New("content is required")
	}
	if _, err := u.userRepo.GetUserByID(ctx, authorID); err != nil {
		return nil, "", err
	}
	if _, err := u.commentRepo.GetByID(ctx, parentCommentID); err != nil {
		return nil, "", err
	}
	if _, err := u.commentRepo.FindParentComment(ctx, parentCommentID); err == nil {
		return nil, "", ErrNestedReply
	}
	blog, err := u.blogRepo.FindBlogByCommentID(ctx, parentCommentID)
	if err != nil {
		return nil, "", err
	}

	reply := &entity.Comment{
		ID:       u.uuidgen.NewUUID(),
		Content:  content,
		AuthorID: authorID,
	}
	if err := u.commentRepo.Create(ctx, reply); err != nil {
		return nil, "", err
	}
	if err := u.commentRepo.AddReplyID(ctx, parentCommentID, reply.ID); err != nil {
		return nil, "", err
	}

	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return reply, blog.Slug, nil
}

// EditReply replaces a reply's content. Only the author may edit.
func (u *CommentUsecase) EditReply(ctx context.Context, replyID, authorID, content string) (string, error) {
	if content == "" {
		return "", errors.New("content is required")
	}
	reply, err := u.commentRepo.GetByID(ctx, replyID)
	if err != nil {
		return "", err
	}
	if reply.AuthorID != authorID {
		return "", ErrForbidden
	}
	if err := u.commentRepo.UpdateContent(ctx, replyID, content); err != nil {
		return "", err
	}

	parent, err := u.commentRepo.FindParentComment(ctx, replyID)
	if err != nil {
		return "", err
	}
	return u.invalidateOwner(ctx, parent.ID)
}

// DeleteReply removes a reply and detaches it from its parent comment.
func (u *CommentUsecase) DeleteReply(ctx context.Context, parentCommentID, replyID string) (string, error) {
	blog, err := u.blogRepo.FindBlogByCommentID(ctx, parentCommentID)
	if err != nil {
		return "", err
	}
	if err := u.commentRepo.Delete(ctx, replyID); err != nil {
		return "", err
	}
	if err := u.commentRepo.RemoveReplyID(ctx, parentCommentID, replyID); err != nil {
		return "", err
	}

	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return blog.Slug, nil
}

// invalidateOwner clears the cached views of the blog owning commentID and
// returns its slug.
func (u *CommentUsecase) invalidateOwner(ctx context.Context, commentID string) (string, error) {
	blog, err := u.blogRepo.FindBlogByCommentID(ctx, commentID)
	if err != nil {
		return "", err
	}
	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return blog.Slug, nil
}
