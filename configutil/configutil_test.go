package configutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textsift/urlsift/detect"
	"github.com/textsift/urlsift/testutil"
)

const sampleProfiles = `
profiles:
  strict:
    options: [quote_match, bracket_match]
    normalize: true
    workers: 8
    rateLimit: 100
  web:
    options: [html]
  loose:
    options: [allow_single_level_domain, extended_scheme_detection]
    workers: 2
`

func TestLoad(t *testing.T) {
	path := testutil.WriteFile(t, "profiles.yaml", sampleProfiles)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Profiles, 3)

	strict := file.Profiles["strict"]
	assert.Equal(t, []string{"quote_match", "bracket_match"}, strict.Options)
	assert.True(t, strict.Normalize)
	assert.Equal(t, 8, strict.Workers)
	assert.Equal(t, 100, strict.RateLimit)

	web := file.Profiles["web"]
	assert.Equal(t, []string{"html"}, web.Options)
	assert.False(t, web.Normalize)
}

func TestLoadErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("parent directory reference", func(t *testing.T) {
		_, err := Load("../secrets/profiles.yaml")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/profiles.yaml")
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := testutil.WriteFile(t, "bad.yaml", "profiles: [not a map")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestScannerConfig(t *testing.T) {
	path := testutil.WriteFile(t, "profiles.yaml", sampleProfiles)
	file, err := Load(path)
	require.NoError(t, err)

	t.Run("resolves options and settings", func(t *testing.T) {
		cfg, err := file.ScannerConfig("strict")
		require.NoError(t, err)
		assert.Equal(t, detect.QuoteMatch|detect.BracketMatch, cfg.Options)
		assert.True(t, cfg.Normalize)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, 100, cfg.RateLimit)
	})

	t.Run("composite option names", func(t *testing.T) {
		cfg, err := file.ScannerConfig("web")
		require.NoError(t, err)
		assert.Equal(t, detect.HTML, cfg.Options)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := file.ScannerConfig("missing")
		assert.ErrorIs(t, err, ErrUnknownProfile)
	})
}

func TestDetectorOptions(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    detect.Options
		wantErr error
	}{
		{
			name:  "empty list is default",
			input: nil,
			want:  detect.Default,
		},
		{
			name:  "single flag",
			input: []string{"markup_mode"},
			want:  detect.MarkupMode,
		},
		{
			name:  "multiple flags fold together",
			input: []string{"quote_match", "single_quote_match", "skip_mailto"},
			want:  detect.QuoteMatch | detect.SingleQuoteMatch | detect.SkipMailto,
		},
		{
			name:  "names are case insensitive",
			input: []string{"HTML"},
			want:  detect.HTML,
		},
		{
			name:  "whitespace is trimmed",
			input: []string{" json "},
			want:  detect.JSON,
		},
		{
			name:    "unknown name",
			input:   []string{"quote_match", "bogus"},
			wantErr: ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectorOptions(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
