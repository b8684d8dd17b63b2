package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"kidcare/auth"
	"kidcare/globals"
	"kidcare/models"
	"kidcare/store"
	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Guard gates routes on a verified bearer token and, optionally, on the
// admin role of the user record behind it.
type Guard struct {
	tokens *auth.TokenService
	users  store.Collection
}

func NewGuard(tokens *auth.TokenService, users store.Collection) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// Authenticate requires a valid "Bearer <token>" Authorization header and
// stores the token's email in the request context.
func (g *Guard) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorised access")
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		claims, err := g.tokens.Verify(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireAdmin must run after Authenticate. It looks up the authenticated
// user and denies access unless its role is "admin".
func (g *Guard) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email, _ := r.Context().Value(globals.EmailKey).(string)

		var user models.User
		err := g.users.FindOne(r.Context(), bson.M{"email": email}, &user)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("Error verifying admin for %s: %v", email, err)
			utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if user.Role != "admin" {
			utils.RespondWithError(w, http.StatusForbidden, "Access Denied")
			return
		}

		next(w, r, ps)
	}
}

// Chain composes middleware left to right: the first wraps outermost.
func Chain(mws ...func(httprouter.Handle) httprouter.Handle) func(httprouter.Handle) httprouter.Handle {
	return func(h httprouter.Handle) httprouter.Handle {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
