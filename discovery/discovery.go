package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/opd-ai/session-core/snode"
	"github.com/opd-ai/session-core/transport"
	"github.com/sirupsen/logrus"
)

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type serviceNodeState struct {
	PublicIP      string `json:"public_ip"`
	StoragePort   int    `json:"storage_port"`
	PubkeyX25519  string `json:"pubkey_x25519"`
	PubkeyEd25519 string `json:"pubkey_ed25519"`
}

type getSnodesResponse struct {
	Result struct {
		ServiceNodeStates []serviceNodeState `json:"service_node_states"`
	} `json:"result"`
}

// Client discovers and caches the snode pool from the network's seed
// endpoints.
type Client struct {
	poster transport.HTTPPoster
	seeds  []Seed

	mu    sync.Mutex
	cache []snode.Snode
}

// NewClient returns a Client that issues seed RPCs through poster.
func NewClient(poster transport.HTTPPoster) *Client {
	return &Client{poster: poster, seeds: DefaultSeeds}
}

// GetSnodes returns the cached snode pool, fetching it from the seeds on
// first use.
func (c *Client) GetSnodes(ctx context.Context) ([]snode.Snode, error) {
	c.mu.Lock()
	cached := c.cache
	c.mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	return c.Refresh(ctx)
}

// Refresh re-fetches the snode pool from the seeds, ignoring any cached
// value, and updates the cache on success.
func (c *Client) Refresh(ctx context.Context) ([]snode.Snode, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "Refresh",
		"package":  "discovery",
	})

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      0,
		Method:  "get_n_service_nodes",
		Params: map[string]interface{}{
			"fields": map[string]bool{
				"public_ip":      true,
				"storage_port":   true,
				"pubkey_x25519":  true,
				"pubkey_ed25519": true,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, seed := range c.seeds {
		url := fmt.Sprintf("http://%s/json_rpc", seed.Host)
		logger.WithField("seed", url).Debug("trying seed")

		status, respBody, err := c.poster.PostJSON(ctx, url, body)
		if err != nil {
			logger.WithFields(logrus.Fields{"seed": url, "error": err}).Warn("seed request failed")
			continue
		}
		if status != 200 {
			logger.WithFields(logrus.Fields{"seed": url, "status": status}).Warn("seed returned non-200")
			continue
		}

		var parsed getSnodesResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			logger.WithFields(logrus.Fields{"seed": url, "error": err}).Warn("seed returned unparsable body")
			continue
		}

		snodes := make([]snode.Snode, 0, len(parsed.Result.ServiceNodeStates))
		for _, s := range parsed.Result.ServiceNodeStates {
			if s.PublicIP == "" || s.PublicIP == "0.0.0.0" {
				continue
			}
			snodes = append(snodes, snode.Snode{
				Host:          s.PublicIP,
				Port:          uint16(s.StoragePort),
				PubkeyX25519:  s.PubkeyX25519,
				PubkeyEd25519: s.PubkeyEd25519,
			})
		}

		if len(snodes) > 0 {
			c.mu.Lock()
			c.cache = snodes
			c.mu.Unlock()
			logger.WithFields(logrus.Fields{"seed": url, "count": len(snodes)}).Info("fetched snode pool")
			return snodes, nil
		}
		logger.WithField("seed", url).Warn("seed returned empty snode list")
	}

	return nil, ErrAllSeedsFailed
}
