package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("warn")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = New("loud")
	assert.Error(t, err)
}

func TestNewTestLogger_RecordsEntries(t *testing.T) {
	l, logs := NewTestLogger()
	l.Warnw("asset missing", "asset", "breve.png")

	entries := logs.FilterMessage("asset missing").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "breve.png", entries[0].ContextMap()["asset"])
}
