package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/middleware"
	"github.com/vangoframework/wayfarer/internal/store"
	"github.com/vangoframework/wayfarer/internal/templates/pages"
)

// Login renders the login page.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render(w, r, http.StatusOK, pages.Login("", ""))
}

// LoginSubmit signs a traveler in by e-mail address.
// Credentials are not checked here; the address only selects whose trips to show.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, pages.Login("", "Invalid form submission."))
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	if email == "" {
		h.render(w, r, http.StatusBadRequest, pages.Login("", "Enter your email address."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	traveler, err := h.trips.FindTravelerByEmail(ctx, email)
	if errors.Is(err, store.ErrTravelerNotFound) {
		h.render(w, r, http.StatusUnauthorized, pages.Login(email, "We couldn't find an account for that email."))
		return
	}
	if err != nil {
		h.logger.Error("failed to look up traveler", "error", err)
		h.render(w, r, http.StatusInternalServerError, pages.Login(email, "Something went wrong. Please try again."))
		return
	}

	if err := h.sessions.Set(w, auth.NewSessionData(traveler)); err != nil {
		h.logger.Error("failed to set session", "error", err)
		h.render(w, r, http.StatusInternalServerError, pages.Login(email, "Something went wrong. Please try again."))
		return
	}

	h.logger.Info("traveler signed in", "traveler_id", traveler.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and returns to the login page.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
