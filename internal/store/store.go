// Package store provides the process-lifetime repository for client
// profiles and prompt packages. It is the only shared mutable state in
// the system and is injected wherever persistence-shaped behavior is
// needed. Contents live as long as the process: created at start,
// cleared on restart, no durability guarantee.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/velora-labs/promptforge/internal/campaign"
	"github.com/velora-labs/promptforge/internal/profile"
)

// Store is the repository abstraction handed to the HTTP layer.
// Concurrent writes to the same key race with last-write-wins
// semantics; that is acceptable by design.
type Store interface {
	// SaveProfile stores a profile, assigning a fresh id when it has
	// none, and returns the stored copy.
	SaveProfile(p profile.ClientProfile) profile.ClientProfile
	// Profile returns the profile for id, if present.
	Profile(id string) (profile.ClientProfile, bool)
	// SavePackage stores the prompt package for one (profile, campaign)
	// pair, overwriting any previous package for that pair.
	SavePackage(profileID, campaignID string, pkg campaign.PromptPackage)
	// Package returns the package for one (profile, campaign) pair, if
	// present.
	Package(profileID, campaignID string) (campaign.PromptPackage, bool)
}

// Compile-time interface compliance check.
var _ Store = (*Memory)(nil)

// Memory is the in-memory Store implementation.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]profile.ClientProfile
	packages map[packageKey]campaign.PromptPackage
}

type packageKey struct {
	profileID  string
	campaignID string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]profile.ClientProfile),
		packages: make(map[packageKey]campaign.PromptPackage),
	}
}

// SaveProfile stores a profile, assigning a uuid when it has no id.
func (m *Memory) SaveProfile(p profile.ClientProfile) profile.ClientProfile {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = p
	return p
}

// Profile returns the profile for id, if present.
func (m *Memory) Profile(id string) (profile.ClientProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[id]
	return p, ok
}

// SavePackage stores the package for one (profile, campaign) pair.
func (m *Memory) SavePackage(profileID, campaignID string, pkg campaign.PromptPackage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.packages[packageKey{profileID, campaignID}] = pkg
}

// Package returns the package for one (profile, campaign) pair.
func (m *Memory) Package(profileID, campaignID string) (campaign.PromptPackage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pkg, ok := m.packages[packageKey{profileID, campaignID}]
	return pkg, ok
}
