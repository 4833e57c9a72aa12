package envelope

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStoreRequestShape(t *testing.T) {
	data, err := BuildStoreRequest("/storage_rpc/v1", []byte("envelope-bytes"))
	require.NoError(t, err)

	var frame Frame
	require.NoError(t, json.Unmarshal(data, &frame))

	assert.Equal(t, "REQUEST", frame.Type)
	require.NotNil(t, frame.Request)
	assert.Equal(t, "PUT", frame.Request.Verb)
	assert.Equal(t, "/storage_rpc/v1", frame.Request.Path)
	assert.Equal(t, 0, frame.Request.ID)

	decoded, err := base64.StdEncoding.DecodeString(frame.Request.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("envelope-bytes"), decoded)
}

func TestParseStoreResponseRoundTrip(t *testing.T) {
	resp := Frame{
		Type: "RESPONSE",
		Response: &rpcResponse{
			ID:     0,
			Status: 200,
			Body:   base64.StdEncoding.EncodeToString([]byte(`{"ok":true}`)),
		},
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	status, body, err := ParseStoreResponse(data)
	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.Equal(t, []byte(`{"ok":true}`), body)
}

func TestParseStoreResponseNotAResponse(t *testing.T) {
	data, err := BuildStoreRequest("/p", []byte("x"))
	require.NoError(t, err)
	_, _, err = ParseStoreResponse(data)
	assert.ErrorIs(t, err, ErrNotAResponse)
}

func TestParseStoreResponseEmptyBody(t *testing.T) {
	resp := Frame{Type: "RESPONSE", Response: &rpcResponse{ID: 0, Status: 404}}
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	status, body, err := ParseStoreResponse(data)
	require.NoError(t, err)
	assert.Equal(t, 404, status)
	assert.Empty(t, body)
}

func TestUnwrapStoreRequestRoundTrip(t *testing.T) {
	data, err := BuildStoreRequest("/api/v1/message", []byte("envelope-bytes"))
	require.NoError(t, err)

	envelopeBytes, err := UnwrapStoreRequest(data)
	require.NoError(t, err)
	assert.Equal(t, []byte("envelope-bytes"), envelopeBytes)
}

func TestUnwrapStoreRequestNotARequest(t *testing.T) {
	resp := Frame{Type: "RESPONSE", Response: &rpcResponse{ID: 0, Status: 200}}
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	_, err = UnwrapStoreRequest(data)
	assert.ErrorIs(t, err, ErrNotARequest)
}
