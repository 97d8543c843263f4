package asset_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/kiln/asset"
	"github.com/plus3/kiln/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textLoader(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func newTestServer(t *testing.T) (*asset.Server, string) {
	t.Helper()
	root := t.TempDir()

	server, err := asset.NewServer(root)
	require.NoError(t, err)
	t.Cleanup(func() { server.Close() })

	server.RegisterLoader(".txt", textLoader)
	return server, root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadAndGet(t *testing.T) {
	server, root := newTestServer(t)
	writeFile(t, filepath.Join(root, "greeting.txt"), "hello")

	handle, err := server.Load("greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "greeting.txt", handle.Path)

	text, ok := asset.Get[string](server, handle)
	require.True(t, ok)
	assert.Equal(t, "hello", text)
}

func TestLoadCachesByPath(t *testing.T) {
	server, root := newTestServer(t)
	writeFile(t, filepath.Join(root, "greeting.txt"), "hello")

	first, err := server.Load("greeting.txt")
	require.NoError(t, err)

	// A second load of the same file returns the same handle, even
	// through a differently spelled path.
	second, err := server.Load("./greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.True(t, server.Loaded("greeting.txt"))
	assert.False(t, server.Loaded("missing.txt"))
}

func TestLoadRejectsEscapingPaths(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{
		"../outside.txt",
		"sub/../../outside.txt",
		"/etc/passwd",
	} {
		_, err := server.Load(path)
		require.Error(t, err, "path %q", path)
		assert.True(t, errs.IsCategory(err, errs.CategoryAsset))
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	server, root := newTestServer(t)
	writeFile(t, filepath.Join(root, "data.bin"), "xx")

	_, err := server.Load("data.bin")
	require.Error(t, err)
	assert.True(t, errs.IsCategory(err, errs.CategoryAsset))
}

func TestLoadMissingFile(t *testing.T) {
	server, _ := newTestServer(t)

	_, err := server.Load("nope.txt")
	require.Error(t, err)
	assert.True(t, errs.IsCategory(err, errs.CategoryAsset))
}

func TestGetWrongType(t *testing.T) {
	server, root := newTestServer(t)
	writeFile(t, filepath.Join(root, "greeting.txt"), "hello")

	handle, err := server.Load("greeting.txt")
	require.NoError(t, err)

	_, ok := asset.Get[int](server, handle)
	assert.False(t, ok)

	_, ok = asset.Get[string](server, asset.Handle{})
	assert.False(t, ok)
}

func TestHotReload(t *testing.T) {
	server, root := newTestServer(t)
	path := filepath.Join(root, "greeting.txt")
	writeFile(t, path, "hello")

	handle, err := server.Load("greeting.txt")
	require.NoError(t, err)

	writeFile(t, path, "goodbye")

	select {
	case ev := <-server.Events():
		require.NoError(t, ev.Err)
		assert.Equal(t, handle.ID, ev.Handle.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload event")
	}

	text, ok := asset.Get[string](server, handle)
	require.True(t, ok)
	assert.Equal(t, "goodbye", text)
}

func TestImageLoader(t *testing.T) {
	server, root := newTestServer(t)
	server.RegisterLoader(".png", asset.ImageLoader)

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(root, "sprite.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	handle, err := server.Load("sprite.png")
	require.NoError(t, err)

	decoded, ok := asset.Get[image.Image](server, handle)
	require.True(t, ok)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}
