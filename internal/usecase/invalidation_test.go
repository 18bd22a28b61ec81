package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidateBlog_ClearsDetailAndListings(t *testing.T) {
	store := newRecordingStore()
	ci := NewCacheInvalidator(store, nopLogger{})

	ci.InvalidateBlog(context.Background(), "hello-world")

	assert.Equal(t, []string{"blog:hello-world"}, store.DeletedKeys)
	assert.ElementsMatch(t, []string{"homepage:*", "category:*"}, store.DeletedPatterns)
}

func TestInvalidateBlog_EmptySlugSkipsDetailKey(t *testing.T) {
	store := newRecordingStore()
	ci := NewCacheInvalidator(store, nopLogger{})

	ci.InvalidateBlog(context.Background(), "")

	assert.Empty(t, store.DeletedKeys)
	assert.ElementsMatch(t, []string{"homepage:*", "category:*"}, store.DeletedPatterns)
}

func TestInvalidateBlog_NilStoreIsNoop(t *testing.T) {
	ci := NewCacheInvalidator(nil, nopLogger{})
	assert.NotPanics(t, func() {
		ci.InvalidateBlog(context.Background(), "hello-world")
		ci.InvalidateListings(context.Background())
	})
}

func TestInvalidateBlog_StoreErrorsAreSwallowed(t *testing.T) {
	store := newRecordingStore()
	store.FailAll = true
	ci := NewCacheInvalidator(store, nopLogger{})

	assert.NotPanics(t, func() {
		ci.InvalidateBlog(context.Background(), "hello-world")
	})
}

func TestInvalidateBlog_RunsAfterRequestCancellation(t *testing.T) {
	store := newRecordingStore()
	ci := NewCacheInvalidator(store, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ci.InvalidateBlog(ctx, "hello-world")

	assert.Contains(t, store.DeletedKeys, "blog:hello-world")
}

func TestInvalidateListings_LeavesDetailEntries(t *testing.T) {
	store := newRecordingStore()
	ci := NewCacheInvalidator(store, nopLogger{})

	ci.InvalidateListings(context.Background())

	assert.Empty(t, store.DeletedKeys)
	assert.ElementsMatch(t, []string{"homepage:*", "category:*"}, store.DeletedPatterns)
}
