package credstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestToken_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetToken("abc123"))

	got, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestToken_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Token()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestToken_StripsJSONQuotes(t *testing.T) {
	s := newTestStore(t)

	// A token persisted as a JSON-stringified value must come back bare.
	require.NoError(t, s.SetToken(`"abc123"`))

	got, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestSetToken_RejectsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SetToken(""))
}

func TestProfile_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := &Profile{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "admin"}
	require.NoError(t, s.SetProfile(in))

	got, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestProfile_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Profile()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClear_RemovesBothEntries(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetToken("abc123"))
	require.NoError(t, s.SetProfile(&Profile{ID: "u1", Role: "admin"}))

	require.NoError(t, s.Clear())

	_, err := s.Token()
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.Profile()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClear_IdempotentWhenEmpty(t *testing.T) {
	s := newTestStore(t)

	// Clearing an already-empty store must not fail.
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}
