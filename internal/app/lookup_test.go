package app

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/applemusic-client/internal/client/itunes"
	mock_itunes "github.com/oshokin/applemusic-client/internal/client/itunes/mocks"
)

// TestParseLookupParams tests argument parsing for the lookup command.
func TestParseLookupParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		expected    url.Values
		expectError bool
	}{
		{
			name:     "single",
			args:     []string{"id=1440833098"},
			expected: url.Values{"id": {"1440833098"}},
		},
		{
			name:     "repeated and empty values",
			args:     []string{"id=1", "id=2", "entity=", "attribute=a=b"},
			expected: url.Values{"id": {"1", "2"}, "entity": {""}, "attribute": {"a=b"}},
		},
		{
			name:     "no arguments",
			args:     nil,
			expected: url.Values{},
		},
		{name: "missing separator", args: []string{"id"}, expectError: true},
		{name: "empty key", args: []string{"=1"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := ParseLookupParams(tt.args)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidLookupParam)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

// TestRunLookup tests that parsed parameters reach the lookup client unchanged.
func TestRunLookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_itunes.NewMockClient(ctrl)

	expected := map[string]any{"resultCount": 1}
	client.EXPECT().
		GetResource(gomock.Any(), url.Values{"id": {"1440833098"}, "entity": {"song"}}).
		Return(expected, nil)

	result, err := RunLookup(context.Background(), client, []string{"id=1440833098", "entity=song"})
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

// TestRunLookup_Errors tests that bad arguments stop before the client and client errors pass through.
func TestRunLookup_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_itunes.NewMockClient(ctrl)

	_, err := RunLookup(context.Background(), client, []string{"id"})
	require.ErrorIs(t, err, ErrInvalidLookupParam)

	client.EXPECT().GetResource(gomock.Any(), gomock.Any()).Return(nil, itunes.ErrLookupFetch)

	_, err = RunLookup(context.Background(), client, []string{"id=1"})
	require.ErrorIs(t, err, itunes.ErrLookupFetch)
}
