package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/teranos/aocget/config"
	"github.com/teranos/aocget/errors"
	aoctest "github.com/teranos/aocget/internal/testing"
	"github.com/teranos/aocget/internal/util"
	"github.com/teranos/aocget/output"
	"github.com/teranos/aocget/puzzle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubFetcher struct {
	data  *puzzle.Data
	err   error
	calls int
}

func (s *stubFetcher) Fetch(_ context.Context, id puzzle.ID) (*puzzle.Data, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	data := *s.data
	data.ID = id
	return &data, nil
}

func useFetcher(t *testing.T, f puzzle.Fetcher) {
	t.Helper()
	orig := newFetcher
	newFetcher = func(*config.Config, string, *zap.SugaredLogger) (puzzle.Fetcher, error) {
		return f, nil
	}
	t.Cleanup(func() { newFetcher = orig })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_UsageErrors(t *testing.T) {
	aoctest.IsolateConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing day", []string{"2023"}, "accepts 2 arg(s)"},
		{"too many", []string{"2023", "1", "2"}, "accepts 2 arg(s)"},
		{"bad year", []string{"twenty", "1"}, `invalid YEAR "twenty"`},
		{"bad day", []string{"2023", "one"}, `invalid DAY "one"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubFetcher{}
			useFetcher(t, stub)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Zero(t, stub.calls)
		})
	}
}

func TestDownload_MissingToken(t *testing.T) {
	aoctest.IsolateConfig(t)
	stub := &stubFetcher{}
	useFetcher(t, stub)

	out, err := execute(t, "2023", "1")
	require.NoError(t, err)
	assert.Equal(t, MissingTokenHint+"\n", out)
	assert.Zero(t, stub.calls)
}

func TestDownload_TokenFromFile(t *testing.T) {
	home := aoctest.IsolateConfig(t)
	aoctest.WriteTokenFile(t, home, "53616c7465645f5f")

	var gotToken string
	orig := newFetcher
	newFetcher = func(_ *config.Config, token string, _ *zap.SugaredLogger) (puzzle.Fetcher, error) {
		gotToken = token
		return &stubFetcher{err: errors.New("offline")}, nil
	}
	t.Cleanup(func() { newFetcher = orig })

	out, err := execute(t, "2023", "1")
	require.NoError(t, err)
	assert.Equal(t, "53616c7465645f5f", gotToken)
	assert.Contains(t, out, "Download of input failed:")
}

func TestDownload_SwallowsErrors(t *testing.T) {
	aoctest.IsolateConfig(t)
	t.Setenv("AOC_SESSION", "secret")

	tests := []struct {
		name string
		args []string
		err  error
		want string
	}{
		{
			name: "fetch unauthorized",
			args: []string{"2023", "1"},
			err:  errors.Wrap(errors.ErrUnauthorized, "status 400"),
			want: "Download of input failed: fetch 2023 day 1: status 400: unauthorized",
		},
		{
			name: "day out of range",
			args: []string{"2023", "26"},
			want: "Download of input failed: day must be between 1 and 25, got 26",
		},
		{
			name: "bad layout flag",
			args: []string{"2023", "1", "--layout", "xml"},
			want: `Download of input failed: output.layout must be "toml" or "text", got "xml"`,
		},
		{
			name: "no day directory",
			args: []string{"2023", "1", "--root", "/nonexistent-aocget-root"},
			want: "Download of input failed: write 2023 day 1: no directory matching 01*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFetcher(t, &stubFetcher{err: tt.err, data: &puzzle.Data{Input: "1"}})

			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, tt.want), "output: %q", out)
			assert.Equal(t, 1, strings.Count(out, "\n"))
		})
	}
}

func TestDownload_WritesArtifacts(t *testing.T) {
	aoctest.IsolateConfig(t)
	t.Setenv("AOC_SESSION", "secret")

	root := t.TempDir()
	dir := aoctest.CreateDayDir(t, root, 2023, "01-trebuchet")

	useFetcher(t, &stubFetcher{data: &puzzle.Data{
		Title: "Trebuchet?!",
		URL:   "https://adventofcode.com/2023/day/1",
		Input: "199\n200\n208\n",
		Examples: []puzzle.Example{{
			InputData: util.Ptr("199\n200\n208\n210\n"),
			AnswerA:   util.Ptr("7"),
		}},
	}})

	out, err := execute(t, "2023", "1", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, output.InputTOMLFile)
	assert.Contains(t, out, output.ExamplesTOMLFile)
	assert.Contains(t, out, "Trebuchet?!")

	var examples map[string]map[string]string
	_, err = toml.DecodeFile(filepath.Join(dir, output.ExamplesTOMLFile), &examples)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{
		"example-1": {"input_data": "199\n200\n208\n210\n", "answer_a": "7"},
	}, examples)
}

func TestDownload_FlagsOverrideConfig(t *testing.T) {
	aoctest.IsolateConfig(t)
	t.Setenv("AOC_SESSION", "secret")

	root := t.TempDir()
	dir := aoctest.CreateDayDir(t, root, 2022, "10")
	useFetcher(t, &stubFetcher{data: &puzzle.Data{Title: "Cathode-Ray Tube", Input: "noop\naddx 3\n"}})

	_, err := execute(t, "2022", "10", "--root", root, "--input-mode", "raw")
	require.NoError(t, err)

	var input map[string]string
	_, err = toml.DecodeFile(filepath.Join(dir, output.InputTOMLFile), &input)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"input_data": "noop\naddx 3\n"}, input)

	_, err = execute(t, "2022", "10", "--root", root, "--layout", "text")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, output.InputTextFile))
	assert.FileExists(t, filepath.Join(dir, output.ReadmeFile))
}

func TestApplyDownloadFlags_NoCache(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--no-cache"}))

	cfg := config.Config{Cache: config.CacheConfig{Enabled: true, Dir: "/tmp/cache"}}
	applyDownloadFlags(cmd, &cfg)
	assert.False(t, cfg.Cache.Enabled)
}

func TestConfigShow_MasksToken(t *testing.T) {
	aoctest.IsolateConfig(t)
	t.Setenv("AOC_SESSION", "very-secret-cookie")

	out, err := execute(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "very-secret-cookie")
	assert.Contains(t, out, `"token": "********"`)
	assert.Contains(t, out, `"layout": "toml"`)

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# aocget configuration\n"))
	assert.Contains(t, out, "[output]")

	_, err = execute(t, "config", "show", "--format", "ini")
	assert.Error(t, err)
}

func TestConfigGet(t *testing.T) {
	aoctest.IsolateConfig(t)

	out, err := execute(t, "config", "get", "output.layout")
	require.NoError(t, err)
	assert.Equal(t, "toml\n", out)

	_, err = execute(t, "config", "get", "output.nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestConfigGet_MasksTokenInTables(t *testing.T) {
	home := aoctest.IsolateConfig(t)
	userConfig := filepath.Join(home, ".config", "aocget", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userConfig), 0755))
	require.NoError(t, os.WriteFile(userConfig, []byte("[session]\ntoken = \"file-secret\"\n"), 0600))

	for _, key := range []string{"session", "Session", "session.token"} {
		out, err := execute(t, "config", "get", key)
		require.NoError(t, err, key)
		assert.NotContains(t, out, "file-secret", key)
		assert.Contains(t, out, maskedToken, key)
	}
}

func TestMaskSecrets(t *testing.T) {
	assert.Equal(t, maskedToken, maskSecrets("session.token", "abc"))
	assert.Equal(t, "", maskSecrets("session.token", ""))
	assert.Equal(t, "toml", maskSecrets("output.layout", "toml"))
	assert.Equal(t, map[string]interface{}{
		"token":      maskedToken,
		"token_file": "/home/me/.config/aocd/token",
	}, maskSecrets("session", map[string]interface{}{
		"token":      "abc",
		"token_file": "/home/me/.config/aocd/token",
	}))
}

func TestConfigValidate(t *testing.T) {
	aoctest.IsolateConfig(t)

	out, err := execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	config.Reset()
	t.Setenv("AOC_OUTPUT_LAYOUT", "pdf")
	_, err = execute(t, "config", "validate")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestConfigWhere(t *testing.T) {
	home := aoctest.IsolateConfig(t)

	out, err := execute(t, "config", "where")
	require.NoError(t, err)
	assert.Contains(t, out, "/etc/aocget/config.toml")
	assert.Contains(t, out, filepath.Join(home, ".config", "aocget", "config.toml")+" (missing)")
	assert.Contains(t, out, "AOC_CACHE_ENABLED")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "aocget "))

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"commit_hash"`)
}
