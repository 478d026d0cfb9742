package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	issueDate := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(issueDate, createdAt, "doc-42")
	require.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token should be safe to put in a query string")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, issueDate.Equal(cursor.Date))
	assert.True(t, createdAt.Equal(cursor.CreatedAt))
	assert.Equal(t, "doc-42", cursor.ID)
}

func TestDecodeTokenError(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{name: "not base64", token: "this is not base64!", message: "base64 decode"},
		{name: "missing parts", token: enc("2024-05-15T00:00:00Z|2024-05-15T00:00:00Z"), message: "split"},
		{name: "empty id", token: enc("2024-05-15T00:00:00Z|2024-05-15T00:00:00Z|"), message: "split"},
		{name: "bad date", token: enc("notadate|2024-05-15T00:00:00Z|x"), message: "date parse"},
		{name: "bad created_at", token: enc("2024-05-15T00:00:00Z|notatime|x"), message: "created_at parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
