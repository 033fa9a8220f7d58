package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdown(t *testing.T) {
	t.Run("writes a pdf file", func(t *testing.T) {
		pdfPath := filepath.Join(t.TempDir(), "deck.pdf")

		got, err := WriteMarkdown([]byte("# Deck\n\n## 1. front\n\n**Answer:** back\n"), pdfPath)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))

		info, err := os.Stat(pdfPath)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("rejects a non-pdf output path", func(t *testing.T) {
		_, err := WriteMarkdown([]byte("# Deck"), filepath.Join(t.TempDir(), "deck.txt"))
		assert.Error(t, err)
	})
}
