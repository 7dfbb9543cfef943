package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("127.0.0.1:8731", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.NotNil(t, client.R())
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("127.0.0.1:1", 0)
	client2 := NewHTTPClient("127.0.0.1:1", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_BaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "127.0.0.1:8731", want: "http://127.0.0.1:8731"},
		{in: "http://localhost:8731/", want: "http://localhost:8731"},
		{in: "https://deck.local", want: "https://deck.local"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewHTTPClient(tt.in, 0).BaseURL)
		})
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("127.0.0.1:8731", 3*time.Second)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}
