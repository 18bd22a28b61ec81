package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

// recordingStore is an in-memory cache store that records every delete so
// tests can assert which entries a write invalidated.
type recordingStore struct {
	mu              sync.Mutex
	entries         map[string][]byte
	DeletedKeys     []string
	DeletedPatterns []string
	FailAll         bool
}

func newRecordingStore() *recordingStore {
	return &recordingStore{entries: map[string][]byte{}}
}

var _ contract.ICacheStore = (*recordingStore)(nil)

func (s *recordingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAll {
		return nil, false, fmt.Errorf("store unavailable")
	}
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *recordingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAll {
		return fmt.Errorf("store unavailable")
	}
	s.entries[key] = value
	return nil
}

func (s *recordingStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAll {
		return fmt.Errorf("store unavailable")
	}
	s.DeletedKeys = append(s.DeletedKeys, keys...)
	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

func (s *recordingStore) DeletePattern(ctx context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAll {
		return fmt.Errorf("store unavailable")
	}
	s.DeletedPatterns = append(s.DeletedPatterns, pattern)
	return nil
}

// reactionTable mirrors the storage semantics of the atomic toggle update:
// pull the user from every set in remove, then add to the requested set.
type reactionTable struct {
	mu   sync.Mutex
	sets map[string]*entity.Reactions
}

func newReactionTable() *reactionTable {
	return &reactionTable{sets: map[string]*entity.Reactions{}}
}

func (t *reactionTable) seed(targetID string, likes, dislikes []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sets[targetID] = &entity.Reactions{Likes: likes, Dislikes: dislikes}
}

func (t *reactionTable) GetReactions(ctx context.Context, targetID string) (*entity.Reactions, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.sets[targetID]
	if !ok {
		return nil, fmt.Errorf("reactions of %q: %w", targetID, contract.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (t *reactionTable) ApplyToggle(ctx context.Context, targetID, userID string, add *entity.ReactionType, remove []entity.ReactionType) (*entity.Reactions, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.sets[targetID]
	if !ok {
		return nil, fmt.Errorf("reactions of %q: %w", targetID, contract.ErrNotFound)
	}
	for _, rt := range remove {
		r.Likes, r.Dislikes = pull(r, rt, userID)
	}
	if add != nil {
		switch *add {
		case entity.ReactionTypeLike:
			r.Likes = addToSet(r.Likes, userID)
		case entity.ReactionTypeDislike:
			r.Dislikes = addToSet(r.Dislikes, userID)
		}
	}
	cp := *r
	return &cp, nil
}

func pull(r *entity.Reactions, rt entity.ReactionType, userID string) (likes, dislikes []string) {
	likes, dislikes = r.Likes, r.Dislikes
	filter := func(in []string) []string {
		out := in[:0]
		for _, id := range in {
			if id != userID {
				out = append(out, id)
			}
		}
		return out
	}
	if rt == entity.ReactionTypeLike {
		likes = filter(likes)
	} else {
		dislikes = filter(dislikes)
	}
	return likes, dislikes
}

func addToSet(set []string, userID string) []string {
	for _, id := range set {
		if id == userID {
			return set
		}
	}
	return append(set, userID)
}

// fakeBlogRepo implements the blog repository surface the reaction and
// comment flows touch. Unused methods panic through the embedded nil
// interface.
type fakeBlogRepo struct {
	contract.IBlogRepository
	*reactionTable

	blogsBySlug   map[string]*entity.Blog
	blogByComment map[string]*entity.Blog
	comments      map[string][]string
}

func newFakeBlogRepo(blogs ...*entity.Blog) *fakeBlogRepo {
	r := &fakeBlogRepo{
		reactionTable: newReactionTable(),
		blogsBySlug:   map[string]*entity.Blog{},
		blogByComment: map[string]*entity.Blog{},
		comments:      map[string][]string{},
	}
	for _, b := range blogs {
		r.blogsBySlug[b.Slug] = b
		r.seed(b.ID, b.Reactions.Likes, b.Reactions.Dislikes)
	}
	return r
}

// GetReactions and ApplyToggle are forwarded explicitly: both embedded
// fields (the nil contract interface and the reactionTable) promote them at
// the same depth, so the bare selectors would be ambiguous.
func (r *fakeBlogRepo) GetReactions(ctx context.Context, targetID string) (*entity.Reactions, error) {
	return r.reactionTable.GetReactions(ctx, targetID)
}

func (r *fakeBlogRepo) ApplyToggle(ctx context.Context, targetID, userID string, add *entity.ReactionType, remove []entity.ReactionType) (*entity.Reactions, error) {
	return r.reactionTable.ApplyToggle(ctx, targetID, userID, add, remove)
}

func (r *fakeBlogRepo) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	if _, exists := r.blogsBySlug[blog.Slug]; exists {
		return fmt.Errorf("slug %q: %w", blog.Slug, contract.ErrDuplicate)
	}
	r.blogsBySlug[blog.Slug] = blog
	r.seed(blog.ID, nil, nil)
	return nil
}

func (r *fakeBlogRepo) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	for _, b := range r.blogsBySlug {
		if b.ID == blogID {
			return b, nil
		}
	}
	return nil, fmt.Errorf("blog %q: %w", blogID, contract.ErrNotFound)
}

func (r *fakeBlogRepo) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	b, err := r.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}
	if title, ok := updates["title"].(string); ok {
		b.Title = title
	}
	if slug, ok := updates["slug"].(string); ok {
		delete(r.blogsBySlug, b.Slug)
		b.Slug = slug
		r.blogsBySlug[slug] = b
	}
	if content, ok := updates["content"].(string); ok {
		b.Content = content
	}
	if category, ok := updates["category"].(string); ok {
		b.Category = category
	}
	return nil
}

func (r *fakeBlogRepo) DeleteBlog(ctx context.Context, blogID string) error {
	b, err := r.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}
	delete(r.blogsBySlug, b.Slug)
	return nil
}

func (r *fakeBlogRepo) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	b, ok := r.blogsBySlug[slug]
	if !ok {
		return nil, fmt.Errorf("blog %q: %w", slug, contract.ErrNotFound)
	}
	// Return a copy, like the real repository decoding a fresh document:
	// callers must not observe later writes through a previously fetched
	// entity (UpdateBlog mutates the stored one in place).
	cp := *b
	return &cp, nil
}

func (r *fakeBlogRepo) GetRelatedBlogs(ctx context.Context, category, excludeID string, limit int) ([]*entity.Blog, error) {
	out := []*entity.Blog{}
	for _, b := range r.blogsBySlug {
		if b.Category == category && b.ID != excludeID && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlogRepo) FindBlogByCommentID(ctx context.Context, commentID string) (*entity.Blog, error) {
	b, ok := r.blogByComment[commentID]
	if !ok {
		return nil, fmt.Errorf("blog of comment %q: %w", commentID, contract.ErrNotFound)
	}
	return b, nil
}

func (r *fakeBlogRepo) AddCommentID(ctx context.Context, blogID, commentID string) error {
	r.comments[blogID] = append(r.comments[blogID], commentID)
	for _, b := range r.blogsBySlug {
		if b.ID == blogID {
			r.blogByComment[commentID] = b
		}
	}
	return nil
}

func (r *fakeBlogRepo) RemoveCommentID(ctx context.Context, blogID, commentID string) error {
	kept := r.comments[blogID][:0]
	for _, id := range r.comments[blogID] {
		if id != commentID {
			kept = append(kept, id)
		}
	}
	r.comments[blogID] = kept
	delete(r.blogByComment, commentID)
	return nil
}

// fakeCommentRepo backs comments and replies with maps.
type fakeCommentRepo struct {
	contract.ICommentRepository
	*reactionTable

	byID     map[string]*entity.Comment
	parentOf map[string]*entity.Comment
}

func newFakeCommentRepo(comments ...*entity.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{
		reactionTable: newReactionTable(),
		byID:          map[string]*entity.Comment{},
		parentOf:      map[string]*entity.Comment{},
	}
	for _, c := range comments {
		r.byID[c.ID] = c
		r.seed(c.ID, c.Reactions.Likes, c.Reactions.Dislikes)
	}
	return r
}

// Forwarded for the same ambiguity reason as fakeBlogRepo.
func (r *fakeCommentRepo) GetReactions(ctx context.Context, targetID string) (*entity.Reactions, error) {
	return r.reactionTable.GetReactions(ctx, targetID)
}

func (r *fakeCommentRepo) ApplyToggle(ctx context.Context, targetID, userID string, add *entity.ReactionType, remove []entity.ReactionType) (*entity.Reactions, error) {
	return r.reactionTable.ApplyToggle(ctx, targetID, userID, add, remove)
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.byID[comment.ID] = comment
	r.seed(comment.ID, nil, nil)
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	c, ok := r.byID[commentID]
	if !ok {
		return nil, fmt.Errorf("comment %q: %w", commentID, contract.ErrNotFound)
	}
	return c, nil
}

func (r *fakeCommentRepo) GetByIDs(ctx context.Context, commentIDs []string) ([]*entity.Comment, error) {
	out := make([]*entity.Comment, 0, len(commentIDs))
	for _, id := range commentIDs {
		if c, ok := r.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateContent(ctx context.Context, commentID, content string) error {
	c, ok := r.byID[commentID]
	if !ok {
		return fmt.Errorf("comment %q: %w", commentID, contract.ErrNotFound)
	}
	c.Content = content
	return nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, commentID string) error {
	delete(r.byID, commentID)
	return nil
}

func (r *fakeCommentRepo) AddReplyID(ctx context.Context, parentID, replyID string) error {
	parent := r.byID[parentID]
	parent.ReplyIDs = append(parent.ReplyIDs, replyID)
	r.parentOf[replyID] = parent
	return nil
}

func (r *fakeCommentRepo) RemoveReplyID(ctx context.Context, parentID, replyID string) error {
	parent := r.byID[parentID]
	kept := parent.ReplyIDs[:0]
	for _, id := range parent.ReplyIDs {
		if id != replyID {
			kept = append(kept, id)
		}
	}
	parent.ReplyIDs = kept
	delete(r.parentOf, replyID)
	return nil
}

func (r *fakeCommentRepo) FindParentComment(ctx context.Context, replyID string) (*entity.Comment, error) {
	p, ok := r.parentOf[replyID]
	if !ok {
		return nil, fmt.Errorf("parent of reply %q: %w", replyID, contract.ErrNotFound)
	}
	return p, nil
}

// fakeUserRepo resolves every id to a stub user unless told otherwise.
type fakeUserRepo struct {
	contract.IUserRepository
	missing map[string]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{missing: map[string]bool{}}
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if r.missing[userID] {
		return nil, fmt.Errorf("user %q: %w", userID, contract.ErrNotFound)
	}
	return &entity.User{ID: userID, Name: "Test User", Username: "tes1234"}, nil
}

func (r *fakeUserRepo) GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]*entity.User, error) {
	out := make(map[string]*entity.User, len(userIDs))
	for _, id := range userIDs {
		if !r.missing[id] {
			out[id] = &entity.User{ID: id, Name: "Test User"}
		}
	}
	return out, nil
}

// seqUUIDGen hands out deterministic ids.
type seqUUIDGen struct{ n int }

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}
