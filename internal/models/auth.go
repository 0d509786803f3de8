package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims is the access-token payload issued by the upstream backend.
// Collector identity has shipped under three different claim names over time,
// so all of them are kept and resolved with a fallback chain.
type JWTClaims struct {
	CollectorID       *int64 `json:"collectorId,omitempty"`
	LegacyCollectorID *int64 `json:"collector_id,omitempty"`
	AccountID         *int64 `json:"id,omitempty"`
	Email             string `json:"email,omitempty"`
	Name              string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// ResolveCollectorID picks the collector id with the collectorId →
// collector_id → id precedence. False when none is present.
func (c *JWTClaims) ResolveCollectorID() (int64, bool) {
	for _, candidate := range []*int64{c.CollectorID, c.LegacyCollectorID, c.AccountID} {
		if candidate != nil && *candidate != 0 {
			return *candidate, true
		}
	}
	return 0, false
}

// DisplayName returns the best available actor name for audit entries.
func (c *JWTClaims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Email
}
