package services

import (
	"sync"
	"time"
)

type tokenInfo struct {
	uid       string
	expiresAt time.Time
}

// TokenStore manages user sessions in memory. Tokens expire after the
// configured TTL; a background goroutine prunes expired entries hourly.
type TokenStore struct {
	tokens map[string]*tokenInfo
	ttl    time.Duration
	mu     sync.RWMutex
}

// NewTokenStore creates a session store with the given token lifetime and
// starts its cleanup goroutine.
func NewTokenStore(ttl time.Duration) *TokenStore {
	ts := &TokenStore{
		tokens: make(map[string]*tokenInfo),
		ttl:    ttl,
	}
	go ts.cleanupExpiredTokens()
	return ts
}

// StoreToken stores a token with its associated user ID.
func (ts *TokenStore) StoreToken(token, uid string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.tokens[token] = &tokenInfo{
		uid:       uid,
		expiresAt: time.Now().Add(ts.ttl),
	}
}

// GetUserID retrieves the user ID associated with a live token.
func (ts *TokenStore) GetUserID(token string) (string, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	info, exists := ts.tokens[token]
	if !exists {
		return "", false
	}
	if time.Now().After(info.expiresAt) {
		return "", false
	}
	return info.uid, true
}

// DeleteToken removes a token from the store.
func (ts *TokenStore) DeleteToken(token string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	delete(ts.tokens, token)
}

// RefreshToken extends the lifetime of an existing token.
func (ts *TokenStore) RefreshToken(token string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	info, exists := ts.tokens[token]
	if !exists {
		return false
	}
	if time.Now().After(info.expiresAt) {
		delete(ts.tokens, token)
		return false
	}
	info.expiresAt = time.Now().Add(ts.ttl)
	return true
}

// cleanupExpiredTokens removes expired tokens periodically
func (ts *TokenStore) cleanupExpiredTokens() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ts.mu.Lock()
		now := time.Now()
		for token, info := range ts.tokens {
			if now.After(info.expiresAt) {
				delete(ts.tokens, token)
			}
		}
		ts.mu.Unlock()
	}
}
