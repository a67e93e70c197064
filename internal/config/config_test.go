package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, []string{".mp3"}, cfg.Extensions)
	assert.Equal(t, []string{".git"}, cfg.Exclude)
	assert.Empty(t, cfg.BackupSuffix)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ID3STRIP_RECURSIVE", "true")
	t.Setenv("ID3STRIP_DRY_RUN", "1")
	t.Setenv("ID3STRIP_WORKERS", "3")
	t.Setenv("ID3STRIP_EXTENSIONS", ".MP3, .mp2")
	t.Setenv("ID3STRIP_BACKUP_SUFFIX", ".orig")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{".mp3", ".mp2"}, cfg.Extensions)
	assert.Equal(t, ".orig", cfg.BackupSuffix)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Workers: 1, Extensions: []string{".mp3"}}, false},
		{"zero workers", Config{Workers: 0, Extensions: []string{".mp3"}}, true},
		{"no extensions", Config{Workers: 2}, true},
		{"missing dot", Config{Workers: 2, Extensions: []string{"mp3"}}, true},
		{"bare dot", Config{Workers: 2, Extensions: []string{"."}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchesExtension(t *testing.T) {
	cfg := &Config{Extensions: []string{".mp3"}}

	tests := []struct {
		name string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"Song.Mp3", true},
		{"song.mp3.bak", false},
		{"song.flac", false},
		{"mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.MatchesExtension(tt.name))
		})
	}
}
