package fcm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}

	chunks := chunkTokens(tokens, MaxMulticastTokens)

	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)
	assert.Equal(t, "tok-1200", chunks[2][200])
}

func TestChunkTokens_Empty(t *testing.T) {
	assert.Empty(t, chunkTokens(nil, MaxMulticastTokens))
}

func TestIsInvalidToken_PlainErrors(t *testing.T) {
	assert.False(t, isInvalidToken(nil))
	assert.False(t, isInvalidToken(errors.New("deadline exceeded")))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "short", redact("short"))
	assert.Equal(t, "abcdefghijkl...", redact("abcdefghijklmnopqrstuvwxyz"))
}
