package errs_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/plus3/kiln/errs"
	"github.com/stretchr/testify/assert"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "render", errs.CategoryRender.String())
	assert.Equal(t, "asset", errs.CategoryAsset.String())
	assert.Equal(t, "config", errs.CategoryConfig.String())
	assert.Equal(t, "unknown", errs.CategoryUnknown.String())
}

func TestErrorMessage(t *testing.T) {
	err := errs.Render("shader compilation failed")
	assert.Equal(t, "render: shader compilation failed", err.Error())

	wrapped := errs.Wrap(errs.CategoryWindow, "create window", errors.New("no display"))
	assert.Equal(t, "window: create window: no display", wrapped.Error())
}

func TestAssetPathDetail(t *testing.T) {
	err := errs.AssetPath("unsupported format", "textures/hero.bmp")
	assert.Contains(t, err.Error(), "path: textures/hero.bmp")
	assert.Equal(t, errs.CategoryAsset, errs.CategoryOf(err))
}

func TestConfigKeyDetail(t *testing.T) {
	err := errs.ConfigKey("must be positive", "window.width")
	assert.Contains(t, err.Error(), "key: window.width")
	assert.True(t, errs.IsCategory(err, errs.CategoryConfig))
}

func TestUnwrapChain(t *testing.T) {
	cause := fs.ErrNotExist
	err := errs.Wrap(errs.CategoryAsset, "load texture", cause)

	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var engineErr *errs.Error
	assert.True(t, errors.As(err, &engineErr))
	assert.Equal(t, errs.CategoryAsset, engineErr.Category)
}

func TestWithContext(t *testing.T) {
	err := errs.Asset("decode failed")
	ctx := errs.WithContext(err, "loading sprite sheet")

	assert.Equal(t, errs.CategoryAsset, errs.CategoryOf(ctx))
	assert.Contains(t, ctx.Error(), "loading sprite sheet: decode failed")

	// Plain errors get wrapped as unknown but stay reachable via Is.
	plain := errors.New("boom")
	ctx = errs.WithContext(plain, "somewhere")
	assert.Equal(t, errs.CategoryUnknown, errs.CategoryOf(ctx))
	assert.True(t, errors.Is(ctx, plain))

	assert.Nil(t, errs.WithContext(nil, "ignored"))
}

func TestCategoryOfThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("frame setup: %w", errs.Time("clock not ticked"))
	assert.Equal(t, errs.CategoryTime, errs.CategoryOf(err))
	assert.False(t, errs.IsCategory(errors.New("plain"), errs.CategoryTime))
}
