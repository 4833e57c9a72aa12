package sessioncore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/session-core/discovery"
	"github.com/opd-ai/session-core/envelope"
	"github.com/opd-ai/session-core/identity"
	"github.com/opd-ai/session-core/msgcrypto"
	"github.com/opd-ai/session-core/padding"
	"github.com/opd-ai/session-core/poll"
	"github.com/opd-ai/session-core/snode"
	"github.com/opd-ai/session-core/storage"
	"github.com/opd-ai/session-core/store"
	"github.com/opd-ai/session-core/swarm"
	"github.com/opd-ai/session-core/transport"
	"github.com/sirupsen/logrus"
)

const mnemonicStorageKey = "mnemonic"
const displayNameStorageKey = "display_name"

// storePath is the fixed endpoint the websocket-style store wrapper is
// addressed to, per spec §4.E.
const storePath = "/api/v1/message"

// Config configures a Session's collaborators. Poster and Storage are
// required; the rest fall back to spec defaults.
type Config struct {
	Poster        transport.HTTPPoster
	Storage       storage.Store
	PaddingScheme padding.Scheme
	PollInterval  time.Duration
	Namespaces    []int
	OnMessage     func(poll.Message)
}

// SendResult is returned by SendMessage on success.
type SendResult struct {
	MessageHash string
	Timestamp   int64
}

// Session is the public facade of spec §4.M: it owns identity and
// authorization state and composes discovery, swarm resolution, signing,
// storage, and polling.
type Session struct {
	cfg Config

	mu         sync.RWMutex
	authorized bool
	keys       identity.KeyPair

	discoveryClient *discovery.Client
	resolver        *swarm.Resolver
	storeClient     *store.Client
	cursors         *storage.CursorStore
	clock           *discovery.Clock

	swarmMu sync.Mutex
	swarm   snode.Swarm

	poller *poll.Poller

	groupMu  sync.Mutex
	groupKey [][32]byte
}

// New constructs a Session. The returned Session is Unauthorized until
// SetMnemonic succeeds.
func New(cfg Config) *Session {
	return &Session{
		cfg:             cfg,
		discoveryClient: discovery.NewClient(cfg.Poster),
		resolver:        swarm.NewResolver(cfg.Poster),
		storeClient:     store.NewClient(cfg.Poster),
		cursors:         storage.NewCursorStore(cfg.Storage),
		clock:           &discovery.Clock{},
	}
}

// SetMnemonic derives the identity key pair from mnemonic, persists it, and
// transitions the Session from Unauthorized to Authorized. Calling it a
// second time returns ErrAlreadyInitialized, per spec §4.M's state machine.
func (s *Session) SetMnemonic(ctx context.Context, mnemonic string, displayName string) error {
	logger := logrus.WithFields(logrus.Fields{"function": "SetMnemonic", "package": "session"})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.authorized {
		return ErrAlreadyInitialized
	}

	keys, err := identity.KeyPairFromMnemonic(mnemonic)
	if err != nil {
		logger.WithField("error", err).Error("failed to derive key pair from mnemonic")
		return err
	}

	if err := s.cfg.Storage.Set(ctx, mnemonicStorageKey, mnemonic); err != nil {
		return err
	}
	if displayName != "" {
		if err := s.cfg.Storage.Set(ctx, displayNameStorageKey, displayName); err != nil {
			return err
		}
	}

	s.keys = keys
	s.authorized = true

	s.groupMu.Lock()
	keyring := append([][32]byte(nil), s.groupKey...)
	s.groupMu.Unlock()

	s.poller = poll.New(poll.Config{
		Keys:          keys,
		UserID:        keys.UserID(),
		Poster:        s.cfg.Poster,
		Swarms:        s,
		Cursors:       s.cursors,
		Namespaces:    s.cfg.Namespaces,
		Interval:      s.cfg.PollInterval,
		PaddingScheme: s.cfg.PaddingScheme,
		GroupKeyring:  keyring,
		OnMessage:     s.cfg.OnMessage,
	})

	logger.WithField("session_id", keys.UserID()).Info("session authorized")
	return nil
}

// SessionID returns this session's "05"-prefixed user identifier. It
// requires prior authorization.
func (s *Session) SessionID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authorized {
		return "", ErrNotAuthorized
	}
	return s.keys.UserID(), nil
}

// GetSnodes returns the cached or freshly fetched service node pool.
func (s *Session) GetSnodes(ctx context.Context) ([]snode.Snode, error) {
	return s.discoveryClient.GetSnodes(ctx)
}

// GetSwarmsFor resolves the swarm responsible for id.
func (s *Session) GetSwarmsFor(ctx context.Context, id string) (snode.Swarm, error) {
	pool, err := s.GetSnodes(ctx)
	if err != nil {
		return snode.Swarm{}, err
	}
	return s.resolver.GetSwarmFor(ctx, id, pool)
}

// GetOurSwarm returns this session's own swarm, re-resolving it on first
// use or after a prior failure. It satisfies poll.SwarmProvider.
func (s *Session) GetOurSwarm(ctx context.Context) (snode.Swarm, error) {
	s.mu.RLock()
	authorized := s.authorized
	keys := s.keys
	s.mu.RUnlock()
	if !authorized {
		return snode.Swarm{}, ErrNotAuthorized
	}

	s.swarmMu.Lock()
	defer s.swarmMu.Unlock()

	if s.swarm.Len() > 0 {
		return s.swarm, nil
	}

	sw, err := s.GetSwarmsFor(ctx, keys.UserID())
	if err != nil {
		return snode.Swarm{}, err
	}
	s.swarm = sw
	return sw, nil
}

// InvalidateOurSwarm drops the cached own-swarm, forcing re-resolution on
// the next GetOurSwarm call. Callers invoke this after a store failure
// suggests the cached swarm is stale.
func (s *Session) InvalidateOurSwarm() {
	s.swarmMu.Lock()
	defer s.swarmMu.Unlock()
	s.swarm = snode.Swarm{}
}

// SendMessage encrypts text (and any attachments) for to, stores it on to's
// swarm, and returns the resulting message hash and timestamp.
func (s *Session) SendMessage(ctx context.Context, to string, text string, attachments []envelope.AttachmentPointer) (SendResult, error) {
	logger := logrus.WithFields(logrus.Fields{"function": "SendMessage", "package": "session", "to": to})

	s.mu.RLock()
	authorized := s.authorized
	keys := s.keys
	s.mu.RUnlock()
	if !authorized {
		return SendResult{}, ErrNotAuthorized
	}
	if !identity.IsValidUserID(to) {
		return SendResult{}, ErrInvalidRecipient
	}

	recipientXPub, err := identity.ParseUserID(to)
	if err != nil {
		return SendResult{}, ErrInvalidRecipient
	}

	timestampMs := s.clock.NowMs()

	content := envelope.Content{
		DataMessage: &envelope.DataMessage{
			Body:        text,
			Timestamp:   uint64(timestampMs),
			Attachments: attachments,
		},
	}
	plain := content.Marshal()

	padded, err := padding.Add(s.cfg.PaddingScheme, plain)
	if err != nil {
		return SendResult{}, err
	}

	ciphertext, err := msgcrypto.EncryptOneToOne(keys, recipientXPub, padded)
	if err != nil {
		logger.WithField("error", err).Error("failed to encrypt message")
		return SendResult{}, err
	}

	env := envelope.Envelope{
		Type:      envelope.TypeSessionMessage,
		Source:    keys.UserID(),
		Timestamp: uint64(timestampMs),
		Content:   ciphertext,
	}

	frameBytes, err := envelope.BuildStoreRequest(storePath, env.Marshal())
	if err != nil {
		return SendResult{}, err
	}

	targetSwarm, err := s.GetSwarmsFor(ctx, to)
	if err != nil {
		return SendResult{}, err
	}

	result, err := s.storeClient.Store(ctx, []snode.Swarm{targetSwarm}, to, frameBytes, timestampMs, 0)
	if err != nil {
		return SendResult{}, fmt.Errorf("session: send failed: %w", err)
	}

	return SendResult{MessageHash: result.MessageHash, Timestamp: result.Timestamp}, nil
}

// AddGroupKey admits a symmetric key to the closed-group decryption
// keyring, per the epoch-keyring design of spec §4.D. Safe to call before
// or after StartPolling.
func (s *Session) AddGroupKey(key [32]byte) {
	s.groupMu.Lock()
	s.groupKey = append(s.groupKey, key)
	keyring := append([][32]byte(nil), s.groupKey...)
	s.groupMu.Unlock()

	s.mu.RLock()
	p := s.poller
	s.mu.RUnlock()
	if p != nil {
		p.SetGroupKeyring(keyring)
	}
}

// StartPolling begins the background polling loop. Requires prior
// authorization.
func (s *Session) StartPolling(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authorized {
		return ErrNotAuthorized
	}
	return s.poller.Start(ctx)
}

// StopPolling cancels the background polling loop.
func (s *Session) StopPolling() {
	s.mu.RLock()
	p := s.poller
	s.mu.RUnlock()
	if p != nil {
		p.Stop()
	}
}

// PollOnce runs a single retrieve/decrypt/dispatch iteration synchronously.
func (s *Session) PollOnce(ctx context.Context) ([]poll.Message, error) {
	s.mu.RLock()
	authorized := s.authorized
	p := s.poller
	s.mu.RUnlock()
	if !authorized {
		return nil, ErrNotAuthorized
	}
	return p.PollOnce(ctx)
}
