package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,aGVsbG8="))
	assert.False(t, IsDataURI("https://cdn.example.com/rug.png"))
	assert.False(t, IsDataURI("data:text/plain;base64,aGVsbG8="))
	assert.False(t, IsDataURI(""))
}

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	raw, contentType, ext, err := DecodeDataURI("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), raw)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "png", ext)
}

func TestDecodeDataURIJpegExtension(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8})

	_, contentType, ext, err := DecodeDataURI("data:image/jpeg;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, "jpg", ext, "jpeg normalizes to the jpg extension")
}

func TestDecodeDataURIErrors(t *testing.T) {
	tests := []string{
		"https://cdn.example.com/rug.png",
		"data:image/png;base64",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,%%%not-base64%%%",
	}
	for _, input := range tests {
		_, _, _, err := DecodeDataURI(input)
		assert.Error(t, err, input)
	}
}
