package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

func strptr(s string) *string { return &s }

func newBlogFixture(t *testing.T, blogs ...*entity.Blog) (*BlogUsecase, *fakeBlogRepo, *recordingStore) {
	t.Helper()
	blogRepo := newFakeBlogRepo(blogs...)
	store := newRecordingStore()
	uc := NewBlogUsecase(blogRepo, newFakeCommentRepo(), newFakeUserRepo(), &seqUUIDGen{}, NewCacheInvalidator(store, nopLogger{}), nopLogger{})
	return uc, blogRepo, store
}

func TestCreateBlog_SlugAndDefaultCategory(t *testing.T) {
	uc, blogRepo, store := newBlogFixture(t)

	blog, err := uc.CreateBlog(context.Background(), "user-1", usecasecontract.CreateBlogInput{
		Title:       "Hello, World!",
		Description: "first post",
		Content:     "body",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", blog.Slug)
	assert.Equal(t, entity.DefaultCategory, blog.Category)
	assert.Equal(t, "user-1", blog.AuthorID)

	stored, err := blogRepo.GetBlogBySlug(context.Background(), "hello-world")
	require.NoError(t, err)
	assert.Equal(t, blog.ID, stored.ID)

	assert.Contains(t, store.DeletedPatterns, "homepage:*")
	assert.Contains(t, store.DeletedPatterns, "category:*")
}

func TestCreateBlog_MissingFieldsRejected(t *testing.T) {
	uc, _, _ := newBlogFixture(t)

	_, err := uc.CreateBlog(context.Background(), "user-1", usecasecontract.CreateBlogInput{Title: "Only a title"})
	assert.Error(t, err)
}

func TestUpdateBlog_OnlyAuthorMayEdit(t *testing.T) {
	blog := &entity.Blog{ID: "blog-1", Title: "Post", Slug: "post", AuthorID: "user-1"}
	uc, _, _ := newBlogFixture(t, blog)

	_, err := uc.UpdateBlog(context.Background(), "post", "user-2", usecasecontract.UpdateBlogInput{
		Content: strptr("defaced"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateBlog_RenameInvalidatesBothSlugs(t *testing.T) {
	blog := &entity.Blog{ID: "blog-1", Title: "Old Title", Slug: "old-title", AuthorID: "user-1"}
	uc, blogRepo, store := newBlogFixture(t, blog)

	updated, err := uc.UpdateBlog(context.Background(), "old-title", "user-1", usecasecontract.UpdateBlogInput{
		Title: strptr("New Title"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new-title", updated.Slug)
	assert.Contains(t, store.DeletedKeys, "blog:old-title")
	assert.Contains(t, store.DeletedKeys, "blog:new-title")

	_, err = blogRepo.GetBlogBySlug(context.Background(), "old-title")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestDeleteBlog_OnlyAuthorMayDelete(t *testing.T) {
	blog := &entity.Blog{ID: "blog-1", Title: "Post", Slug: "post", AuthorID: "user-1"}
	uc, _, _ := newBlogFixture(t, blog)

	err := uc.DeleteBlog(context.Background(), "post", "user-2")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteBlog_RemovesAndInvalidates(t *testing.T) {
	blog := &entity.Blog{ID: "blog-1", Title: "Post", Slug: "post", AuthorID: "user-1"}
	uc, blogRepo, store := newBlogFixture(t, blog)

	require.NoError(t, uc.DeleteBlog(context.Background(), "post", "user-1"))

	_, err := blogRepo.GetBlogBySlug(context.Background(), "post")
	assert.ErrorIs(t, err, contract.ErrNotFound)
	assert.Contains(t, store.DeletedKeys, "blog:post")
}

func TestGetBlogDetail_BuildsCommentTree(t *testing.T) {
	blog := &entity.Blog{ID: "blog-1", Title: "Post", Slug: "post", AuthorID: "user-1"}
	blogRepo := newFakeBlogRepo(blog)
	commentRepo := newFakeCommentRepo(
		&entity.Comment{ID: "comment-1", Content: "top", AuthorID: "user-2", ReplyIDs: []string{"reply-1"}},
		&entity.Comment{ID: "reply-1", Content: "nested", AuthorID: "user-3"},
	)
	blog.CommentIDs = []string{"comment-1"}
	store := newRecordingStore()
	uc := NewBlogUsecase(blogRepo, commentRepo, newFakeUserRepo(), &seqUUIDGen{}, NewCacheInvalidator(store, nopLogger{}), nopLogger{})

	payload, err := uc.GetBlogDetail(context.Background(), "post")
	require.NoError(t, err)

	require.Len(t, payload.Comments, 1)
	assert.Equal(t, "top", payload.Comments[0].Content)
	assert.Equal(t, "user-2", payload.Comments[0].Author.ID)
	require.Len(t, payload.Comments[0].Replies, 1)
	assert.Equal(t, "nested", payload.Comments[0].Replies[0].Content)
	assert.Equal(t, 1, payload.CommentCount)
}
