package bot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"embedbot/settings"
)

func openTestStore(t *testing.T) *settings.Store {
	t.Helper()
	store, err := settings.Open(t.TempDir())
	assert.Nil(t, err)
	return store
}

func TestSweepTempFiles(t *testing.T) {
	dir := t.TempDir()
	viper.Set("bot.tempDir", dir)
	defer viper.Set("bot.tempDir", "")

	stale := filepath.Join(dir, "embedbot-svg-111111.png")
	fresh := filepath.Join(dir, "embedbot-svg-222222.png")
	unrelated := filepath.Join(dir, "keep-me.png")
	for _, path := range []string{stale, fresh, unrelated} {
		assert.Nil(t, os.WriteFile(path, []byte("png"), 0o644))
	}

	old := time.Now().Add(-2 * time.Hour)
	assert.Nil(t, os.Chtimes(stale, old, old))

	sweepTempFiles()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.Nil(t, err)
	_, err = os.Stat(unrelated)
	assert.Nil(t, err)
}

func TestBuildRegistryOrder(t *testing.T) {
	store := openTestStore(t)

	reg := buildRegistry(store)
	assert.Equal(t, []string{"reddit", "9gag", "imgur", "twitter", "svg"}, reg.Names())
}

func TestBuildRegistryDisabledModule(t *testing.T) {
	store := openTestStore(t)

	viper.Set("modules.twitter.enabled", false)
	defer viper.Set("modules.twitter.enabled", true)

	reg := buildRegistry(store)
	assert.Equal(t, []string{"reddit", "9gag", "imgur", "svg"}, reg.Names())
}
