package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("http://localhost:5000/api/tiket/1", 256)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 256)
	assert.Error(t, err)
}
