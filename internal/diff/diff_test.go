package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestCompareIdentical(t *testing.T) {
	text := doc("alpha", "bravo", "charlie")
	res := Compare(text, text)
	assert.Empty(t, res.Hunks)
	assert.Zero(t, res.LinesChanged)
}

func TestCompareSingleChange(t *testing.T) {
	source := doc("a", "b", "c", "d", "     75.20", "f", "g", "h", "i", "j")
	converted := doc("a", "b", "c", "d", "     24.00", "f", "g", "h", "i", "j")

	res := Compare(source, converted)
	assert.Equal(t, 2, res.LinesChanged) // one removed, one added

	require.Len(t, res.Hunks, 1)
	h := res.Hunks[0]
	assert.Equal(t, 2, h.OldStart)
	assert.Equal(t, 2, h.NewStart)
	assert.Equal(t, 7, h.OldCount) // three context each side plus the removal
	assert.Equal(t, 7, h.NewCount)

	out := res.Format()
	assert.Contains(t, out, "@@ -2,7 +2,7 @@")
	assert.Contains(t, out, "-     75.20")
	assert.Contains(t, out, "+     24.00")
	assert.Contains(t, out, " d") // context keeps its leading space
}

func TestCompareDistantChanges(t *testing.T) {
	var src, dst []string
	for i := 0; i < 20; i++ {
		src = append(src, strings.Repeat("x", i+1))
		dst = append(dst, strings.Repeat("x", i+1))
	}
	dst[2] = "CHANGED FIRST"
	dst[15] = "CHANGED SECOND"

	res := Compare(doc(src...), doc(dst...))
	// Far enough apart that the context windows never meet.
	require.Len(t, res.Hunks, 2)
	assert.Equal(t, 4, res.LinesChanged)
}

func TestCompareChangeAtStart(t *testing.T) {
	source := doc("first", "b", "c", "d", "e")
	converted := doc("FIRST", "b", "c", "d", "e")

	res := Compare(source, converted)
	require.Len(t, res.Hunks, 1)
	// No room for leading context.
	assert.Equal(t, 1, res.Hunks[0].OldStart)
	assert.Equal(t, LineRemoved, res.Hunks[0].Lines[0].Type)
}
