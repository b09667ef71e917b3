package simulation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()
	require.True(t, gjson.ValidBytes(doc))

	assert.Equal(t, int64(800), gjson.GetBytes(doc, "SC").Int())
	assert.Equal(t, int64(300), gjson.GetBytes(doc, "BF").Int())
	assert.Equal(t, 0.2, gjson.GetBytes(doc, "AmpX").Float())
	assert.Equal(t, 2.0, gjson.GetBytes(doc, "freqY").Float())
	assert.Equal(t, int64(0), gjson.GetBytes(doc, "pyramidCount").Int())
	assert.True(t, gjson.GetBytes(doc, "airfoilCount").Exists())
}

func TestStore_Params(t *testing.T) {
	params := NewStore().Params()
	require.Len(t, params, len(defaultParams))
	for i, p := range params {
		assert.Equal(t, defaultParams[i].key, p.Key)
		assert.Equal(t, "number", p.Kind)
	}
}

func TestStore_SetReplacesDocument(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set([]byte(`{"SC": 100, "label": "run-1"}`)))

	doc := s.Get()
	assert.Equal(t, int64(100), gjson.GetBytes(doc, "SC").Int())
	assert.Equal(t, "run-1", gjson.GetBytes(doc, "label").String())
	assert.False(t, gjson.GetBytes(doc, "BF").Exists())

	params := s.Params()
	require.Len(t, params, 2)
	assert.Equal(t, "string", params[1].Kind)

	s.Reset()
	assert.Equal(t, int64(300), gjson.GetBytes(s.Get(), "BF").Int())
}

func TestStore_SetInvalid(t *testing.T) {
	s := NewStore()
	for _, body := range []string{``, `not json`, `[1,2]`, `{"SC":`} {
		assert.ErrorIs(t, s.Set([]byte(body)), ErrInvalidJSON, body)
	}
	assert.Equal(t, DefaultDocument(), s.Get())
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	doc := s.Get()
	doc[0] = 'x'
	assert.True(t, gjson.ValidBytes(s.Get()))
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Set([]byte(`{"SC": 1}`))
		}()
		go func() {
			defer wg.Done()
			assert.True(t, gjson.ValidBytes(s.Get()))
		}()
	}
	wg.Wait()
}
