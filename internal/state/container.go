// state/container.go - Single source of truth for portfolio content
package state

import (
	"crypto/subtle"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/noor-latif/foliocms/internal/models"
)

// Config holds the shared admin secret. Exactly one of Password or
// PasswordHash should be set; when only the bcrypt hash is configured the
// recovery flow cannot disclose a plaintext secret and always fails.
type Config struct {
	Password       string
	PasswordHash   string
	RecoveryAnswer string
}

// Container is the application state container: one in-memory PortfolioData
// value plus the session flags, mutated only through the methods below.
// Operations are synchronous; observers fire after every content mutation.
type Container struct {
	mu          sync.RWMutex
	data        models.PortfolioData
	submissions []models.ContactSubmission
	authed      bool
	lastID      int64
	observers   []func()
	cfg         Config
}

// New creates a container seeded with the default portfolio content
func New(cfg Config) *Container {
	return &Container{
		data: models.DefaultPortfolio(),
		cfg:  cfg,
	}
}

// Restore replaces the content with a previously persisted snapshot.
// Used at boot; does not notify observers.
func (c *Container) Restore(data models.PortfolioData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = cloneData(data)
}

// Subscribe registers a callback fired after every content mutation.
// Auth and submission changes do not fire it.
func (c *Container) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Container) notify() {
	c.mu.RLock()
	obs := make([]func(), len(c.observers))
	copy(obs, c.observers)
	c.mu.RUnlock()
	for _, fn := range obs {
		fn()
	}
}

// Snapshot returns a deep copy of the current content
func (c *Container) Snapshot() models.PortfolioData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneData(c.data)
}

// Login compares the supplied password against the shared secret and sets
// the authenticated flag on match. No lockout, no rate limiting.
func (c *Container) Login(password string) bool {
	if !c.checkPassword(password) {
		return false
	}
	c.mu.Lock()
	c.authed = true
	c.mu.Unlock()
	return true
}

func (c *Container) checkPassword(password string) bool {
	if c.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.cfg.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(c.cfg.Password), []byte(password)) == 1
}

// RecoverPassword compares the answer against the configured recovery answer.
// On match it returns the plaintext shared secret and logs in. This discloses
// the password by design of the original flow; when the deployment configures
// a bcrypt hash instead of a plaintext secret the flow is disabled.
func (c *Container) RecoverPassword(answer string) (bool, string) {
	if c.cfg.Password == "" || c.cfg.RecoveryAnswer == "" {
		return false, ""
	}
	if !strings.EqualFold(strings.TrimSpace(answer), c.cfg.RecoveryAnswer) {
		return false, ""
	}
	c.mu.Lock()
	c.authed = true
	c.mu.Unlock()
	return true, c.cfg.Password
}

// Logout clears the authenticated flag
func (c *Container) Logout() {
	c.mu.Lock()
	c.authed = false
	c.mu.Unlock()
}

// Authenticated reports the session flag
func (c *Container) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authed
}

// AddSubmission appends a contact message stamped with the current time.
// The log is append-only: no cap, no deduplication.
func (c *Container) AddSubmission(sub models.ContactSubmission) models.ContactSubmission {
	sub.SubmittedAt = time.Now()
	c.mu.Lock()
	c.submissions = append(c.submissions, sub)
	c.mu.Unlock()
	return sub
}

// Submissions returns a copy of the submissions log in arrival order
func (c *Container) Submissions() []models.ContactSubmission {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ContactSubmission, len(c.submissions))
	copy(out, c.submissions)
	return out
}

// nextID returns a fresh timestamp-derived ID. IDs stay unique even when
// two adds land in the same millisecond. Callers must hold c.mu.
func (c *Container) nextID() string {
	now := time.Now().UnixMilli()
	if now <= c.lastID {
		now = c.lastID + 1
	}
	c.lastID = now
	return strconv.FormatInt(now, 10)
}
