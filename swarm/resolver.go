package swarm

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/opd-ai/session-core/snode"
	"github.com/opd-ai/session-core/transport"
	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts and DefaultRetryDelay are the resolver's retry
// parameters per spec §4.I.
const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = time.Second
)

type batchRequest struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type batchEnvelope struct {
	Method string `json:"method"`
	Params struct {
		Requests []batchRequest `json:"requests"`
	} `json:"params"`
}

type rawSnode struct {
	IP            string      `json:"ip"`
	Port          json.Number `json:"port"`
	X25519        string      `json:"x25519"`
	Ed25519       string      `json:"ed25519"`
	PublicIP      string      `json:"public_ip"`
	StoragePort   json.Number `json:"storage_port"`
	PubkeyX25519  string      `json:"pubkey_x25519"`
	PubkeyEd25519 string      `json:"pubkey_ed25519"`
}

func (r rawSnode) toSnode() (snode.Snode, bool) {
	host := r.IP
	if host == "" {
		host = r.PublicIP
	}
	portStr := r.Port.String()
	if portStr == "" || portStr == "0" {
		portStr = r.StoragePort.String()
	}
	var port int64
	fmt.Sscanf(portStr, "%d", &port)

	x := r.X25519
	if x == "" {
		x = r.PubkeyX25519
	}
	ed := r.Ed25519
	if ed == "" {
		ed = r.PubkeyEd25519
	}

	if host == "" || port == 0 {
		return snode.Snode{}, false
	}
	return snode.Snode{Host: host, Port: uint16(port), PubkeyX25519: x, PubkeyEd25519: ed}, true
}

type batchResultItem struct {
	Code int `json:"code"`
	Body struct {
		Snodes []rawSnode `json:"snodes"`
	} `json:"body"`
}

type batchResponse struct {
	Results []batchResultItem `json:"results"`
}

// Resolver fetches the swarm responsible for a given user id.
type Resolver struct {
	poster      transport.HTTPPoster
	maxAttempts int
	retryDelay  time.Duration
	sleep       func(time.Duration)
}

// NewResolver returns a Resolver with spec-default retry parameters.
func NewResolver(poster transport.HTTPPoster) *Resolver {
	return &Resolver{
		poster:      poster,
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		sleep:       time.Sleep,
	}
}

// GetSwarmFor resolves the swarm for userID, drawing candidates uniformly
// at random from pool without replacement across attempts.
func (r *Resolver) GetSwarmFor(ctx context.Context, userID string, pool []snode.Snode) (snode.Swarm, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "GetSwarmFor",
		"package":  "swarm",
		"user_id":  userID,
	})

	if len(pool) == 0 {
		return snode.Swarm{}, ErrNoSnodes
	}

	candidates := make([]snode.Snode, len(pool))
	copy(candidates, pool)

	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if len(candidates) == 0 {
			logger.Warn("ran out of candidate snodes during swarm fetch")
			break
		}

		idx := rand.Intn(len(candidates))
		s := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		sw, err := r.fetchFrom(ctx, s, userID)
		if err == nil {
			return sw, nil
		}

		lastErr = err
		logger.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"snode":   s.Host,
			"error":   err,
		}).Warn("swarm fetch attempt failed, retrying")

		if attempt < r.maxAttempts-1 {
			r.sleep(r.retryDelay)
		}
	}

	return snode.Swarm{}, fmt.Errorf("%w: %v", ErrFetch, lastErr)
}

func (r *Resolver) fetchFrom(ctx context.Context, s snode.Snode, userID string) (snode.Swarm, error) {
	var env batchEnvelope
	env.Method = "batch"
	env.Params.Requests = []batchRequest{{
		Method: "get_swarm",
		Params: map[string]string{"pubkey": userID},
	}}

	body, err := json.Marshal(env)
	if err != nil {
		return snode.Swarm{}, err
	}

	status, respBody, err := r.poster.PostJSON(ctx, s.StorageURL(), body)
	if err != nil {
		return snode.Swarm{}, err
	}
	if status != 200 {
		return snode.Swarm{}, fmt.Errorf("snode returned status %d", status)
	}

	var parsed batchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return snode.Swarm{}, err
	}
	if len(parsed.Results) == 0 {
		return snode.Swarm{}, fmt.Errorf("empty batch response")
	}

	result := parsed.Results[0]
	if len(result.Body.Snodes) == 0 {
		if result.Code == 421 {
			return snode.Swarm{}, fmt.Errorf("snode returned 421, not responsible")
		}
		return snode.Swarm{}, fmt.Errorf("no snodes in swarm response")
	}

	snodes := make([]snode.Snode, 0, len(result.Body.Snodes))
	for _, raw := range result.Body.Snodes {
		if sn, ok := raw.toSnode(); ok {
			snodes = append(snodes, sn)
		}
	}
	if len(snodes) == 0 {
		return snode.Swarm{}, fmt.Errorf("no usable snodes in swarm response")
	}

	return snode.Swarm{Snodes: snodes}, nil
}
