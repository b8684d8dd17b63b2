package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes the token-issuing endpoint.
type Handler struct {
	Tokens *TokenService
}

func NewHandler(tokens *TokenService) *Handler {
	return &Handler{Tokens: tokens}
}

// POST /jwt
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var claims map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.Tokens.Issue(claims)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// The token is the whole response body, as a bare string.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, token)
}
