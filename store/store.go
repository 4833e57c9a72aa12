package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/opd-ai/session-core/snode"
	"github.com/opd-ai/session-core/transport"
	"github.com/sirupsen/logrus"
)

// DefaultTTLMs is the default time-to-live applied to stored messages.
const DefaultTTLMs = 86_400_000

// DefaultMaxAttempts is the number of swarm candidates tried before giving
// up, per spec §4.K.
const DefaultMaxAttempts = 5

type storeRequest struct {
	Method string `json:"method"`
	Params struct {
		Pubkey    string `json:"pubkey"`
		Timestamp int64  `json:"timestamp"`
		TTL       int64  `json:"ttl"`
		Data      string `json:"data"`
	} `json:"params"`
}

type storeResponse struct {
	Hash string `json:"hash"`
}

// Result is returned on a successful store.
type Result struct {
	MessageHash string
	Timestamp   int64
}

// Client submits store RPCs to a recipient's swarm.
type Client struct {
	poster      transport.HTTPPoster
	maxAttempts int
}

// NewClient returns a Client with spec-default retry parameters.
func NewClient(poster transport.HTTPPoster) *Client {
	return &Client{poster: poster, maxAttempts: DefaultMaxAttempts}
}

// Store places envelopeWrapper (the base64-ready websocket-style wire
// wrapper bytes) on recipientPubkey's swarm, trying up to maxAttempts
// distinct swarms drawn at random from swarms.
func (c *Client) Store(ctx context.Context, swarms []snode.Swarm, recipientPubkey string, envelopeWrapper []byte, timestampMs, ttlMs int64) (Result, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function":  "Store",
		"package":   "store",
		"recipient": recipientPubkey,
	})

	if len(swarms) == 0 {
		return Result{}, fmt.Errorf("%w: no swarms available", ErrStoreFailed)
	}
	if ttlMs == 0 {
		ttlMs = DefaultTTLMs
	}

	candidates := make([]snode.Swarm, len(swarms))
	copy(candidates, swarms)

	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if len(candidates) == 0 {
			break
		}

		swIdx := rand.Intn(len(candidates))
		sw := candidates[swIdx]
		if sw.Len() == 0 {
			candidates = append(candidates[:swIdx], candidates[swIdx+1:]...)
			continue
		}

		target := sw.Snodes[rand.Intn(sw.Len())]

		result, err := c.storeOn(ctx, target, recipientPubkey, envelopeWrapper, timestampMs, ttlMs)
		if err == nil {
			return result, nil
		}

		lastErr = err
		logger.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"snode":   target.Host,
			"error":   err,
		}).Warn("store attempt failed, trying another swarm")

		candidates = append(candidates[:swIdx], candidates[swIdx+1:]...)
	}

	return Result{}, fmt.Errorf("%w: %v", ErrStoreFailed, lastErr)
}

func (c *Client) storeOn(ctx context.Context, target snode.Snode, recipientPubkey string, envelopeWrapper []byte, timestampMs, ttlMs int64) (Result, error) {
	var req storeRequest
	req.Method = "store"
	req.Params.Pubkey = recipientPubkey
	req.Params.Timestamp = timestampMs
	req.Params.TTL = ttlMs
	req.Params.Data = base64.StdEncoding.EncodeToString(envelopeWrapper)

	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, err
	}

	status, respBody, err := c.poster.PostJSON(ctx, target.StorageURL(), body)
	if err != nil {
		return Result{}, err
	}
	if status != 200 {
		return Result{}, fmt.Errorf("snode returned status %d", status)
	}

	var parsed storeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Result{}, err
	}

	return Result{MessageHash: parsed.Hash, Timestamp: timestampMs}, nil
}
