package tracker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {

	t.Run("ReturnsEmptyListIfTrackerDoesNotExist", func(t *testing.T) {

		client := NewClient(t.TempDir())

		// act
		ids, err := client.Load(context.Background(), "periodic-e2e")

		assert.Nil(t, err)
		assert.Equal(t, 0, len(ids))
	})

	t.Run("SkipsBlankLinesAndTrimsWhitespace", func(t *testing.T) {

		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "periodic-e2e.txt"), []byte("111111111111111\n\n 222222222222222 \n"), 0644)
		assert.Nil(t, err)

		client := NewClient(dir)

		// act
		ids, err := client.Load(context.Background(), "periodic-e2e")

		assert.Nil(t, err)
		assert.Equal(t, []string{"111111111111111", "222222222222222"}, ids)
	})
}

func TestAppend(t *testing.T) {

	t.Run("CreatesDirectoryAndAppendsOneIdPerLine", func(t *testing.T) {

		dir := filepath.Join(t.TempDir(), "tracker")
		client := NewClient(dir)

		// act
		err := client.Append(context.Background(), "periodic-e2e", "111111111111111")
		assert.Nil(t, err)
		err = client.Append(context.Background(), "periodic-e2e", "222222222222222")
		assert.Nil(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "periodic-e2e.txt"))
		assert.Nil(t, err)
		assert.Equal(t, "111111111111111\n222222222222222\n", string(data))

		ids, err := client.Load(context.Background(), "periodic-e2e")
		assert.Nil(t, err)
		assert.Equal(t, []string{"111111111111111", "222222222222222"}, ids)
	})
}
