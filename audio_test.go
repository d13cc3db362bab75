package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopReaderRewinds(t *testing.T) {
	l := &loopReader{r: bytes.NewReader([]byte("abc"))}

	buf := make([]byte, 8)
	var got []byte
	for len(got) < 8 {
		n, err := l.Read(buf[:2])
		require.NoError(t, err)
		got = append(got, buf[:n]...)
	}
	assert.Equal(t, "abcabcab", string(got[:8]))
}

func TestLoopReaderEmptyTrack(t *testing.T) {
	l := &loopReader{r: bytes.NewReader(nil)}
	n, err := l.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAmbienceMissingTrack(t *testing.T) {
	_, err := newAmbience(t.TempDir()+"/missing.qoa", 0.5)
	assert.Error(t, err)
}
