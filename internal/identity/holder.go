package identity

import (
	"errors"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

var ErrEmptyUserID = errors.New("user id cannot be empty")

// Profile is the signed-in user, as handed over by the auth provider.
type Profile struct {
	ID        string `json:"userId"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Holder keeps the currently signed-in user of this process.
type Holder struct {
	mutex   sync.RWMutex
	profile *Profile
}

// NewHolder creates a holder, signed in as defaultUserID when it is not empty.
func NewHolder(defaultUserID string) *Holder {
	h := &Holder{}
	if defaultUserID = strings.TrimSpace(defaultUserID); defaultUserID != "" {
		h.profile = &Profile{ID: defaultUserID}
	}
	return h
}

func (h *Holder) SignIn(profile Profile) error {
	profile.ID = strings.TrimSpace(profile.ID)
	if profile.ID == "" {
		return ErrEmptyUserID
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.profile = &profile
	log.Infof("user [%s] signed in", profile.ID)
	return nil
}

func (h *Holder) SignOut() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.profile != nil {
		log.Infof("user [%s] signed out", h.profile.ID)
	}
	h.profile = nil
}

// CurrentUserID returns an empty string when nobody is signed in.
func (h *Holder) CurrentUserID() string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.profile == nil {
		return ""
	}
	return h.profile.ID
}

func (h *Holder) Current() (Profile, bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.profile == nil {
		return Profile{}, false
	}
	return *h.profile, true
}
