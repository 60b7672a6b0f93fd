package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "plots", cfg.OutputDir)
	assert.Equal(t, 5, cfg.HeadRows)
	assert.Equal(t, 10, cfg.Bins)
	assert.Equal(t, "whitegrid", cfg.Style.Name)
	assert.Equal(t, 8*vg.Inch, cfg.Style.Width)
	assert.Equal(t, 5*vg.Inch, cfg.Style.Height)
	assert.True(t, cfg.Style.Grid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty output dir": func(c *Config) { c.OutputDir = "" },
		"zero width":       func(c *Config) { c.Style.Width = 0 },
		"negative height":  func(c *Config) { c.Style.Height = -1 },
		"negative head":    func(c *Config) { c.HeadRows = -1 },
		"no bins":          func(c *Config) { c.Bins = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestStyleColor(t *testing.T) {
	s := WhiteGrid()
	assert.Equal(t, s.Palette[0], s.Color(0))
	assert.Equal(t, s.Palette[1], s.Color(4))
	assert.Equal(t, color.Black, Style{}.Color(2))
}
