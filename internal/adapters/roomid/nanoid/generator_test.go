package nanoid

import (
	"strings"
	"testing"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetHasSixtyFourDistinctURLSafeSymbols(t *testing.T) {
	seen := map[rune]struct{}{}
	for _, r := range Alphabet {
		seen[r] = struct{}{}
		assert.True(t, r == '-' || r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'), "symbol %q", r)
	}

	assert.Len(t, seen, 64)
	assert.Len(t, Alphabet, 64)
}

func TestGenerateTenThousandNearlyDistinctIDs(t *testing.T) {
	gen, err := NewGenerator(domain.DefaultRoomIDLength)
	require.NoError(t, err)

	const n = 10_000
	seen := make(map[domain.RoomID]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, string(id), domain.DefaultRoomIDLength)
		for _, r := range string(id) {
			require.True(t, strings.ContainsRune(Alphabet, r), "unexpected symbol %q in %q", r, id)
		}
		seen[id] = struct{}{}
	}

	// 64^6 symbols leave about a 7e-4 chance of one birthday collision in 10k draws.
	assert.GreaterOrEqual(t, len(seen), n-1)
}

func TestGenerateHonoursConfiguredLength(t *testing.T) {
	gen, err := NewGenerator(10)
	require.NoError(t, err)

	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, string(id), 10)
}

func TestNewGeneratorRejectsShortLength(t *testing.T) {
	_, err := NewGenerator(4)
	assert.ErrorContains(t, err, "at least 6")
}
