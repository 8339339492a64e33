package pricer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `[
  {"currency": "BLUR", "date": "2023-08-29T07:10:40.000Z", "price": 0.20811525423728813},
  {"currency": "bNEO", "date": "2023-08-29T07:10:50.000Z", "price": 7.1282679},
  {"currency": "USD", "date": "2023-08-29T07:10:30.000Z", "price": "1"},
  {"currency": "BUSD", "date": "2023-08-29T07:10:40.000Z", "price": 0.999183113}
]`

func TestDecodeObservations(t *testing.T) {
	out, err := DecodeObservations([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "BLUR", out[0].Currency)
	assert.True(t, out[0].Price.Equal(decimal.RequireFromString("0.20811525423728813")))
	assert.True(t, time.Date(2023, 8, 29, 7, 10, 40, 0, time.UTC).Equal(out[0].ObservedAt))
	assert.True(t, out[2].Price.Equal(decimal.NewFromInt(1)))

	empty, err := DecodeObservations([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = DecodeObservations([]byte(`{"currency": "x"}`))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0o600))

	src := NewFileSource(path)
	assert.Equal(t, "file:"+path, src.Name())

	out, err := src.Observations(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Observations(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "none.json")).Observations(context.Background())
	assert.Error(t, err)
}
