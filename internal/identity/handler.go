package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/sensefit/internal/telemetry/tracing"
	"github.com/2beens/sensefit/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	holder *Holder
}

func NewHandler(holder *Holder) *Handler {
	return &Handler{
		holder: holder,
	}
}

type whoAmIResponse struct {
	SignedIn bool     `json:"signedIn"`
	Profile  *Profile `json:"profile,omitempty"`
}

func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.identity.signin")
	defer span.End()

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Errorf("sign in, unmarshal json params: %s", err)
		http.Error(w, "sign in failed, invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.holder.SignIn(profile); err != nil {
		if errors.Is(err, ErrEmptyUserID) {
			http.Error(w, "sign in failed, user id empty", http.StatusBadRequest)
			return
		}
		log.Errorf("sign in: %s", err)
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	current, _ := h.holder.Current()
	pkg.WriteJSON(w, whoAmIResponse{SignedIn: true, Profile: &current}, http.StatusOK)
}

func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.identity.signout")
	defer span.End()

	h.holder.SignOut()
	pkg.WriteJSON(w, whoAmIResponse{SignedIn: false}, http.StatusOK)
}

func (h *Handler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.identity.whoami")
	defer span.End()

	resp := whoAmIResponse{}
	if current, ok := h.holder.Current(); ok {
		resp.SignedIn = true
		resp.Profile = &current
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}
