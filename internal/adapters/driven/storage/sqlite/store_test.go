package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testDocument(id, title string) *domain.Document {
	return &domain.Document{
		ID:        id,
		Title:     title,
		Format:    domain.FormatPDF,
		Content:   "document body",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store := newTestStore(t)
	assert.NotEmpty(t, store.Path())
}

func TestStore_SaveAndGetDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("d1", "statute book")
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, domain.FormatPDF, got.Format)
	assert.Equal(t, doc.Content, got.Content)
}

func TestStore_GetDocument_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestStore_SaveDocument_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("d1", "before")))
	require.NoError(t, store.SaveDocument(ctx, testDocument("d1", "after")))

	got, err := store.GetDocument(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestStore_ChunkRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("d1", "doc")))

	chunks := []domain.Chunk{
		{ID: "c1", DocumentID: "d1", Content: "first chunk", Position: 0, Offset: 0,
			Embedding: []float32{0.25, -1.5, 3.75}},
		{ID: "c2", DocumentID: "d1", Content: "second chunk", Position: 1, Offset: 800,
			Embedding: []float32{1, 0, -0.125}},
	}
	require.NoError(t, store.SaveChunks(ctx, chunks))

	got, err := store.GetChunks(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first chunk", got[0].Content)
	assert.Equal(t, []float32{0.25, -1.5, 3.75}, got[0].Embedding)
	assert.Equal(t, 800, got[1].Offset)
	assert.Equal(t, []float32{1, 0, -0.125}, got[1].Embedding)
}

func TestStore_SaveChunks_ReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("d1", "doc")))
	require.NoError(t, store.SaveChunks(ctx, []domain.Chunk{
		{ID: "old1", DocumentID: "d1", Content: "old", Position: 0},
		{ID: "old2", DocumentID: "d1", Content: "old", Position: 1},
	}))
	require.NoError(t, store.SaveChunks(ctx, []domain.Chunk{
		{ID: "new1", DocumentID: "d1", Content: "new", Position: 0},
	}))

	got, err := store.GetChunks(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new1", got[0].ID)
}

func TestStore_DeleteDocument_Cascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("d1", "doomed")))
	require.NoError(t, store.SaveChunks(ctx, []domain.Chunk{
		{ID: "c1", DocumentID: "d1", Content: "chunk", Position: 0},
	}))

	require.NoError(t, store.DeleteDocument(ctx, "d1"))

	_, err := store.GetDocument(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	chunks, err := store.GetChunks(ctx, "d1")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	assert.ErrorIs(t, store.DeleteDocument(ctx, "d1"), domain.ErrDocumentNotFound)
}

func TestStore_ListDocuments_Order(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"b", "a", "c"} {
		doc := testDocument(id, id)
		doc.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.SaveDocument(ctx, doc))
	}

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveDocument(ctx, testDocument("d1", "durable")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetDocument(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "durable", got.Title)
}
