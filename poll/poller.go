package poll

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/opd-ai/session-core/envelope"
	"github.com/opd-ai/session-core/identity"
	"github.com/opd-ai/session-core/msgcrypto"
	"github.com/opd-ai/session-core/padding"
	"github.com/opd-ai/session-core/signing"
	"github.com/opd-ai/session-core/snode"
	"github.com/opd-ai/session-core/storage"
	"github.com/opd-ai/session-core/transport"
	"github.com/sirupsen/logrus"
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 3 * time.Second

// SwarmProvider resolves the snode swarm responsible for our own messages.
type SwarmProvider interface {
	GetOurSwarm(ctx context.Context) (snode.Swarm, error)
}

// Config configures a Poller.
type Config struct {
	Keys          identity.KeyPair
	UserID        string
	Poster        transport.HTTPPoster
	Swarms        SwarmProvider
	Cursors       *storage.CursorStore
	Namespaces    []int
	Interval      time.Duration
	PaddingScheme padding.Scheme
	GroupKeyring  [][32]byte // used for NamespaceClosedGroup, if polled
	OnMessage     func(Message)
}

// Poller drives the retrieve/decrypt/dispatch loop of spec §4.L.
type Poller struct {
	cfg Config

	mu      sync.Mutex
	polling bool
	cancel  context.CancelFunc
}

// New returns a Poller. Zero-value Interval/Namespaces fall back to
// defaults.
func New(cfg Config) *Poller {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Namespaces == nil {
		cfg.Namespaces = DefaultNamespaces
	}
	return &Poller{cfg: cfg}
}

// Start begins the background polling loop. It returns ErrAlreadyPolling if
// already running.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.polling {
		return ErrAlreadyPolling
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.polling = true
	p.cancel = cancel

	go p.loop(loopCtx)
	return nil
}

// SetGroupKeyring replaces the closed-group decryption keyring used for
// NamespaceClosedGroup messages. Safe to call while polling is running.
func (p *Poller) SetGroupKeyring(keyring [][32]byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.GroupKeyring = keyring
}

// Stop cancels the polling loop. An in-flight iteration finishes or is
// cancelled at the transport layer; it does not advance cursors for the
// iteration in which it is cancelled.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.polling {
		return
	}
	p.polling = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) loop(ctx context.Context) {
	logger := logrus.WithFields(logrus.Fields{"function": "loop", "package": "poll"})
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := p.PollOnce(ctx); err != nil {
			logger.WithField("error", err).Warn("poll iteration failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.cfg.Interval):
		}
	}
}

type retrieveRequest struct {
	Method string `json:"method"`
	Params struct {
		Pubkey        string `json:"pubkey"`
		Namespace     int    `json:"namespace"`
		LastHash      string `json:"last_hash"`
		Timestamp     int64  `json:"timestamp"`
		Signature     string `json:"signature"`
		PubkeyEd25519 string `json:"pubkeyEd25519"`
	} `json:"params"`
}

type rawStoredMessage struct {
	Hash       string `json:"hash"`
	Data       string `json:"data"`
	Pubkey     string `json:"pubkey"`
	Timestamp  int64  `json:"timestamp"`
	Expiration int64  `json:"expiration"`
}

type retrieveResult struct {
	Code int `json:"code"`
	Body struct {
		Messages []rawStoredMessage `json:"messages"`
	} `json:"body"`
}

type batchEnvelope struct {
	Method string `json:"method"`
	Params struct {
		Requests []retrieveRequest `json:"requests"`
	} `json:"params"`
}

type batchResponse struct {
	Results []retrieveResult `json:"results"`
}

// PollOnce runs a single retrieve/decrypt/dispatch iteration and returns
// the messages delivered.
func (p *Poller) PollOnce(ctx context.Context) ([]Message, error) {
	logger := logrus.WithFields(logrus.Fields{"function": "PollOnce", "package": "poll"})

	sw, err := p.cfg.Swarms.GetOurSwarm(ctx)
	if err != nil {
		return nil, err
	}
	if sw.Len() == 0 {
		return nil, nil
	}
	target := sw.Snodes[rand.Intn(sw.Len())]

	var env batchEnvelope
	env.Method = "batch"
	for _, ns := range p.cfg.Namespaces {
		lastHash, err := p.cfg.Cursors.LastHash(ctx, ns)
		if err != nil {
			return nil, err
		}

		ts := time.Now().UnixMilli()
		sig := signing.SignRetrieve(p.cfg.Keys, "retrieve", ns, ts)

		var req retrieveRequest
		req.Method = "retrieve"
		req.Params.Pubkey = p.cfg.UserID
		req.Params.Namespace = ns
		req.Params.LastHash = lastHash
		req.Params.Timestamp = ts
		req.Params.Signature = sig.Signature
		req.Params.PubkeyEd25519 = sig.PubkeyEd25519

		env.Params.Requests = append(env.Params.Requests, req)
	}

	body, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}

	status, respBody, err := p.cfg.Poster.PostJSON(ctx, target.StorageURL(), body)
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, fmt.Errorf("poll: snode returned status %d", status)
	}

	var parsed batchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, err
	}

	var delivered []Message

	for i, result := range parsed.Results {
		if i >= len(p.cfg.Namespaces) {
			break
		}
		ns := p.cfg.Namespaces[i]

		if result.Code != 200 {
			logger.WithFields(logrus.Fields{"namespace": ns, "code": result.Code}).Warn("sub-request failed")
			continue
		}
		if len(result.Body.Messages) == 0 {
			continue
		}

		for _, raw := range result.Body.Messages {
			msg, err := p.decryptOne(ns, raw)
			if err != nil {
				logger.WithFields(logrus.Fields{"namespace": ns, "hash": raw.Hash, "error": err}).Warn("failed to decrypt message")
				continue
			}
			delivered = append(delivered, *msg)
			if p.cfg.OnMessage != nil {
				p.cfg.OnMessage(*msg)
			}
		}

		if err := ctx.Err(); err != nil {
			return delivered, err
		}

		lastRaw := result.Body.Messages[len(result.Body.Messages)-1]
		if err := p.cfg.Cursors.Advance(ctx, ns, lastRaw.Hash); err != nil {
			logger.WithFields(logrus.Fields{"namespace": ns, "error": err}).Error("failed to persist cursor")
		}
	}

	return delivered, nil
}

func (p *Poller) decryptOne(namespace int, raw rawStoredMessage) (*Message, error) {
	frameBytes, err := base64.StdEncoding.DecodeString(raw.Data)
	if err != nil {
		return nil, err
	}

	envelopeBytes, err := envelope.UnwrapStoreRequest(frameBytes)
	if err != nil {
		// Not every deployment wraps the stored bytes in the websocket-style
		// frame; fall back to treating the decoded bytes as the raw
		// envelope directly.
		envelopeBytes = frameBytes
	}

	env, err := envelope.Parse(envelopeBytes)
	if err != nil {
		return nil, err
	}

	var (
		plaintext       []byte
		authorSessionID string
	)

	switch namespace {
	case NamespaceClosedGroup:
		p.mu.Lock()
		keyring := p.cfg.GroupKeyring
		p.mu.Unlock()
		decrypted, err := msgcrypto.DecryptClosedGroupKeyring(keyring, env.Content)
		if err != nil {
			return nil, err
		}
		plaintext = decrypted.Plaintext
		senderXPub, err := identity.EdToX25519PublicKey(decrypted.SenderEdPub)
		if err != nil {
			return nil, err
		}
		authorSessionID = identity.FormatUserID(senderXPub)
	default:
		decrypted, err := msgcrypto.DecryptOneToOne(p.cfg.Keys, env.Content)
		if err != nil {
			return nil, err
		}
		plaintext = decrypted.Plaintext
		authorSessionID = identity.FormatUserID(decrypted.SenderXPub)
	}

	unpadded, err := padding.Remove(p.cfg.PaddingScheme, plaintext)
	if err != nil {
		return nil, err
	}

	content, err := envelope.ParseContent(unpadded)
	if err != nil {
		return nil, err
	}
	if content.DataMessage != nil {
		content.DataMessage.AuthorSessionID = authorSessionID
	}

	return &Message{
		Namespace:       namespace,
		Hash:            raw.Hash,
		Envelope:        env,
		Content:         content,
		AuthorSessionID: authorSessionID,
	}, nil
}
