package cli

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := InitConfig()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, DefaultConfig(), cfg, "no file on disk means built-in defaults")
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	saved := DefaultConfig()
	saved.Rules = "Ing"
	saved.Render.MaxWidth = 400
	if err := saved.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := InitConfig()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Ing", loaded.Rules)
	assert.Equal(t, 400, loaded.Render.MaxWidth)
	assert.Equal(t, DefaultConfig().Komi, loaded.Komi, "unset fields keep their defaults")
}
