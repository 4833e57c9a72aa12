package sessioncore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/opd-ai/session-core/identity"
	"github.com/opd-ai/session-core/padding"
	"github.com/opd-ai/session-core/poll"
	"github.com/opd-ai/session-core/storage"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "badzu badzu badzu badzu badzu badzu badzu badzu badzu badzu badzu badzu"

// fakeNetwork dispatches the four RPC shapes a Session issues: seed
// discovery, batch get_swarm, batch retrieve, and store.
type fakeNetwork struct {
	snodeHost string
	snodePort int

	storeHash string

	// retrieveBodies, if set, is returned verbatim as the single batch
	// result for the next retrieve call.
	retrieveBodies []string
}

func (f *fakeNetwork) PostJSON(ctx context.Context, url string, body []byte) (int, []byte, error) {
	var probe struct {
		Method string `json:"method"`
		Params struct {
			Requests []struct {
				Method string `json:"method"`
			} `json:"requests"`
		} `json:"params"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return 0, nil, err
	}

	switch probe.Method {
	case "get_n_service_nodes":
		resp := map[string]interface{}{
			"result": map[string]interface{}{
				"service_node_states": []map[string]interface{}{
					{
						"public_ip":      f.snodeHost,
						"storage_port":   f.snodePort,
						"pubkey_x25519":  "aa",
						"pubkey_ed25519": "bb",
					},
				},
			},
		}
		data, _ := json.Marshal(resp)
		return 200, data, nil

	case "batch":
		if len(probe.Params.Requests) > 0 && probe.Params.Requests[0].Method == "get_swarm" {
			resp := map[string]interface{}{
				"results": []map[string]interface{}{
					{
						"code": 200,
						"body": map[string]interface{}{
							"snodes": []map[string]interface{}{
								{
									"ip":      f.snodeHost,
									"port":    f.snodePort,
									"x25519":  "aa",
									"ed25519": "bb",
								},
							},
						},
					},
				},
			}
			data, _ := json.Marshal(resp)
			return 200, data, nil
		}

		// retrieve batch
		results := make([]json.RawMessage, len(probe.Params.Requests))
		for i := range probe.Params.Requests {
			if i < len(f.retrieveBodies) {
				results[i] = json.RawMessage(f.retrieveBodies[i])
			} else {
				results[i] = json.RawMessage(`{"code":200,"body":{"messages":[]}}`)
			}
		}
		resp, _ := json.Marshal(struct {
			Results []json.RawMessage `json:"results"`
		}{Results: results})
		return 200, resp, nil

	case "store":
		resp, _ := json.Marshal(map[string]string{"hash": f.storeHash})
		return 200, resp, nil
	}

	return 404, nil, nil
}

func newTestSession(t *testing.T, net *fakeNetwork) *Session {
	t.Helper()
	s := New(Config{
		Poster:        net,
		Storage:       storage.NewMemoryStore(),
		PaddingScheme: padding.SchemeA,
		PollInterval:  time.Millisecond,
		Namespaces:    []int{poll.NamespaceUserMessages},
	})
	return s
}

func TestSetMnemonicAuthorizesAndRejectsReset(t *testing.T) {
	s := newTestSession(t, &fakeNetwork{})
	require.NoError(t, s.SetMnemonic(context.Background(), testMnemonic, "alice"))

	id, err := s.SessionID()
	require.NoError(t, err)
	require.True(t, identity.IsValidUserID(id))

	err = s.SetMnemonic(context.Background(), testMnemonic, "alice")
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestSessionIDRequiresAuthorization(t *testing.T) {
	s := newTestSession(t, &fakeNetwork{})
	_, err := s.SessionID()
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSendMessageRequiresAuthorization(t *testing.T) {
	s := newTestSession(t, &fakeNetwork{})
	recipient := identity.KeyPairFromSeed([32]byte{9}).UserID()
	_, err := s.SendMessage(context.Background(), recipient, "hi", nil)
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSendMessageRejectsInvalidRecipient(t *testing.T) {
	net := &fakeNetwork{snodeHost: "203.0.113.1", snodePort: 22021, storeHash: "h1"}
	s := newTestSession(t, net)
	require.NoError(t, s.SetMnemonic(context.Background(), testMnemonic, ""))

	_, err := s.SendMessage(context.Background(), "not-a-valid-id", "hi", nil)
	require.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSendMessageSucceeds(t *testing.T) {
	net := &fakeNetwork{snodeHost: "203.0.113.1", snodePort: 22021, storeHash: "abc123"}
	s := newTestSession(t, net)
	require.NoError(t, s.SetMnemonic(context.Background(), testMnemonic, ""))

	recipient := identity.KeyPairFromSeed([32]byte{9}).UserID()
	result, err := s.SendMessage(context.Background(), recipient, "hello there", nil)
	require.NoError(t, err)
	require.Equal(t, "abc123", result.MessageHash)
	require.NotZero(t, result.Timestamp)
}

func TestGetOurSwarmReresolvesAfterInvalidate(t *testing.T) {
	net := &fakeNetwork{snodeHost: "203.0.113.1", snodePort: 22021}
	s := newTestSession(t, net)
	require.NoError(t, s.SetMnemonic(context.Background(), testMnemonic, ""))

	sw1, err := s.GetOurSwarm(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, sw1.Len())

	s.InvalidateOurSwarm()
	sw2, err := s.GetOurSwarm(context.Background())
	require.NoError(t, err)
	require.Equal(t, sw1.Snodes[0].Host, sw2.Snodes[0].Host)
}

func TestStartPollingRequiresAuthorization(t *testing.T) {
	s := newTestSession(t, &fakeNetwork{})
	require.ErrorIs(t, s.StartPolling(context.Background()), ErrNotAuthorized)
}

func TestStartStopPollingLifecycle(t *testing.T) {
	net := &fakeNetwork{snodeHost: "203.0.113.1", snodePort: 22021}
	s := newTestSession(t, net)
	require.NoError(t, s.SetMnemonic(context.Background(), testMnemonic, ""))

	require.NoError(t, s.StartPolling(context.Background()))
	time.Sleep(5 * time.Millisecond)
	s.StopPolling()
	s.StopPolling() // idempotent
}
