package logic_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/basics/internal/config"
	"github.com/idelchi/basics/internal/failure"
	"github.com/idelchi/basics/internal/fileutil"
	"github.com/idelchi/basics/internal/logging"
	"github.com/idelchi/basics/internal/logic"
)

const key = "0123456789abcdef"

type fixture struct {
	dir    string
	plain  string
	sealed string
	opened string
	out    bytes.Buffer
	err    bytes.Buffer
}

func newFixture(t *testing.T, content []byte) *fixture {
	t.Helper()

	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		plain:  filepath.Join(dir, "plain.txt"),
		sealed: filepath.Join(dir, "plain.txt.enc"),
		opened: filepath.Join(dir, "plain.out.txt"),
	}

	require.NoError(t, os.WriteFile(f.plain, content, 0o600))

	return f
}

func (f *fixture) streams() logic.Streams {
	return logic.Streams{Out: &f.out, Err: &f.err}
}

func (f *fixture) encryptCfg(mutate ...func(*config.Config)) *config.Config {
	cfg := &config.Config{Input: f.plain, Output: f.sealed, Key: key, IV: "random", Scheme: "cbc"}
	for _, m := range mutate {
		m(cfg)
	}

	return cfg
}

func (f *fixture) decryptCfg(mutate ...func(*config.Config)) *config.Config {
	cfg := &config.Config{Input: f.sealed, Output: f.opened, Key: key, IV: "random", Scheme: "cbc", Decrypt: true}
	for _, m := range mutate {
		m(cfg)
	}

	return cfg
}

func TestRun_RoundTrip(t *testing.T) {
	t.Parallel()

	variants := map[string]func(*config.Config){
		"cbc random": func(*config.Config) {},
		"cbc zero":   func(c *config.Config) { c.IV = "zero" },
		"siv":        func(c *config.Config) { c.Scheme = "siv" },
	}

	for name, variant := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			content := []byte("line one\nline two\n")
			f := newFixture(t, content)

			res, err := logic.Run(f.encryptCfg(variant), f.streams(), logging.Discard())
			require.NoError(t, err)
			assert.Equal(t, int64(len(content)), res.InputSize)
			assert.Positive(t, res.OutputSize)

			sealed, err := os.ReadFile(f.sealed)
			require.NoError(t, err)
			assert.NotContains(t, string(sealed), "line one")

			_, err = logic.Run(f.decryptCfg(variant), f.streams(), logging.Discard())
			require.NoError(t, err)

			opened, err := os.ReadFile(f.opened)
			require.NoError(t, err)
			assert.Equal(t, content, opened)

			assert.Equal(t, "File encrypted successfully!\nFile decrypted successfully!\n", f.out.String())
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	cfg := f.encryptCfg(func(c *config.Config) { c.Input = filepath.Join(f.dir, "absent") })

	_, err := logic.Run(cfg, f.streams(), nil)
	require.ErrorIs(t, err, failure.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent")
}

func TestRun_KeyLength(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("data"))

	for _, cfg := range []*config.Config{
		f.encryptCfg(func(c *config.Config) { c.Key = "too short" }),
		f.decryptCfg(func(c *config.Config) { c.Key = "much too long for aes-128"; c.Input = f.plain }),
	} {
		_, err := logic.Run(cfg, f.streams(), nil)
		require.ErrorIs(t, err, failure.ErrKeyLength)
	}

	_, err := os.Stat(f.sealed)
	require.ErrorIs(t, err, os.ErrNotExist, "nothing written on key failure")
}

func TestRun_DecryptGarbage(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("this is not ciphertext"))
	cfg := f.decryptCfg(func(c *config.Config) { c.Input = f.plain; c.IV = "zero" })

	_, err := logic.Run(cfg, f.streams(), nil)
	require.ErrorIs(t, err, failure.ErrCryptoTransform)

	_, err = os.Stat(f.opened)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_OutputDirectoryMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("data"))
	cfg := f.encryptCfg(func(c *config.Config) { c.Output = filepath.Join(f.dir, "nope", "out.enc") })

	_, err := logic.Run(cfg, f.streams(), nil)
	require.ErrorIs(t, err, failure.ErrIO)
}

func TestRun_DeleteQuietStats(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("to be removed"))
	cfg := f.encryptCfg(func(c *config.Config) {
		c.Delete = true
		c.Quiet = true
		c.Stats = true
	})

	_, err := logic.Run(cfg, f.streams(), nil)
	require.NoError(t, err)

	_, err = os.Stat(f.plain)
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Empty(t, f.out.String())
	assert.Contains(t, f.err.String(), "Stats")
	assert.Contains(t, f.err.String(), "Input:     13 B")
}

func TestRun_Dry(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("untouched"))

	res, err := logic.Run(f.encryptCfg(func(c *config.Config) { c.Dry = true }), f.streams(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.OutputSize)
	assert.Contains(t, f.out.String(), "Would encrypt")

	_, err = os.Stat(f.sealed)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_WarnsAboutZeroIV(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("data"))

	var logs bytes.Buffer

	_, err := logic.Run(f.encryptCfg(func(c *config.Config) { c.IV = "zero" }), f.streams(), logging.New(&logs, false))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "zero IV")
}

func TestRun_RefusesToOverwriteInput(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []byte("keep me"))
	link := filepath.Join(f.dir, "alias.txt")
	require.NoError(t, os.Link(f.plain, link))

	for _, output := range []string{f.plain, filepath.Join(f.dir, ".", "plain.txt"), link} {
		cfg := f.encryptCfg(func(c *config.Config) {
			c.Output = output
			c.Delete = true
		})

		_, err := logic.Run(cfg, f.streams(), nil)
		require.ErrorIs(t, err, fileutil.ErrSameFile, output)
		require.ErrorIs(t, err, failure.ErrIO, output)
	}

	got, err := os.ReadFile(f.plain)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(got))
	assert.Empty(t, f.out.String())
}

//nolint:paralleltest // changes the working directory
func TestRun_RefusesRelativeAndAbsoluteSpellingOfInput(t *testing.T) {
	f := newFixture(t, []byte("keep me"))
	t.Chdir(f.dir)

	cfg := &config.Config{Input: "plain.txt", Output: f.plain, Key: key, Delete: true}

	_, err := logic.Run(cfg, f.streams(), nil)
	require.ErrorIs(t, err, fileutil.ErrSameFile)

	got, err := os.ReadFile(f.plain)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(got))

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
