package http

import (
	"fmt"
	"net/http"
)

// Page handlers render minimal shells. The interactive client is the
// terminal application; these routes exist so the route guard has real
// page-shaped targets to protect and redirect between.

func (h *Handler) feedPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, "Feed")
}

func (h *Handler) tweetPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, "Tweet")
}

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	writePage(w, "Profile")
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, "Log in")
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, "Create account")
}

func writePage(w http.ResponseWriter, title string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>%s</title></head><body><h1>%s</h1></body></html>", title, title)
}
