package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	ctx := context.Background()
	embedder := NewMockEmbedder()

	first, err := embedder.EmbedText(ctx, "desenvolvedor java")
	require.NoError(t, err)
	second, err := embedder.EmbedText(ctx, "desenvolvedor java")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same text must produce the same vector")
	assert.Len(t, first, 384, "default dimension is 384")

	other, err := embedder.EmbedText(ctx, "engenheiro de dados")
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different texts should diverge")
}

func TestMockEmbedder_BatchMatchesSingle(t *testing.T) {
	ctx := context.Background()
	embedder := NewMockEmbedder()
	embedder.Dimensions = 32

	texts := []string{"java spring sql", "python spark aws", ""}
	batch, err := embedder.EmbedTexts(ctx, texts)
	require.NoError(t, err)
	require.Len(t, batch, len(texts))

	for i, text := range texts {
		single, err := embedder.EmbedText(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, single, batch[i], "batch position %d must agree with the single-text call", i)
	}
}

func TestMockEmbedder_InjectedFunctions(t *testing.T) {
	ctx := context.Background()
	embedder := NewMockEmbedder()

	injected := errors.New("provider down")
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, injected
	}

	_, err := embedder.EmbedTexts(ctx, []string{"anything"})
	assert.ErrorIs(t, err, injected)
	assert.Equal(t, 1, embedder.CallCount())

	embedder.Reset()
	assert.Equal(t, 0, embedder.CallCount())

	vectors, err := embedder.EmbedTexts(ctx, []string{"anything"})
	require.NoError(t, err)
	assert.Len(t, vectors, 1, "reset must restore default behavior")
}
