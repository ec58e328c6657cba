package surface

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/domain/entity"
)

func TestHeadlessFactory_Lifecycle(t *testing.T) {
	f := NewHeadlessFactory()

	s, err := f.Create(context.Background(), entity.NewSurfaceSpec("https://a.example"))
	require.NoError(t, err)
	assert.Equal(t, "https://a.example", s.URL())
	assert.False(t, s.IsVisible())
	assert.Equal(t, 1, f.Live())

	s.Show()
	assert.True(t, s.IsVisible())
	s.Hide()
	assert.False(t, s.IsVisible())

	s.Release()
	s.Release()
	assert.Zero(t, f.Live())

	s.Show()
	assert.False(t, s.IsVisible(), "released surfaces stay hidden")
	assert.Equal(t, int64(1), s.(*Headless).ShowCount())
}

func TestHeadlessFactory_UniqueIDs(t *testing.T) {
	f := NewHeadlessFactory()

	a, err := f.Create(context.Background(), entity.NewSurfaceSpec("https://a.example"))
	require.NoError(t, err)
	b, err := f.Create(context.Background(), entity.NewSurfaceSpec("https://a.example"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestHeadlessFactory_RejectsRelativeURL(t *testing.T) {
	_, err := NewHeadlessFactory().Create(context.Background(), entity.NewSurfaceSpec("/relative"))
	assert.ErrorIs(t, err, ErrRelativeURL)
}
