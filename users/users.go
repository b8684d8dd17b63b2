package users

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kidcare/models"
	"kidcare/store"
	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service handles the users collection routes.
type Service struct {
	users store.Collection
}

func NewService(users store.Collection) *Service {
	return &Service{users: users}
}

// GET /users  (admin)
func (s *Service) GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := s.users.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// POST /users
//
// Inserts the posted user unless one with the same email already exists. The
// existence check and the insert are two separate calls; concurrent submits
// of the same email can race past the check and both insert.
func (s *Service) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user bson.M
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	email, _ := user["email"].(string)
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	var existing models.User
	err := s.users.FindOne(r.Context(), bson.M{"email": email}, &existing)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Already an user"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Error checking existing user %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	result, err := s.users.InsertOne(r.Context(), user)
	if err != nil {
		log.Printf("Error inserting user %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GET /users/admin/:email
//
// Public check used by clients to decide whether to show admin UI; it gates
// nothing on the server.
func (s *Service) IsAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	var user models.User
	err := s.users.FindOne(r.Context(), bson.M{"email": email}, &user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Error looking up user %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"admin": user.Role == "admin"})
}

// PATCH /users/admin/:id  (admin)
func (s *Service) PromoteToAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := s.users.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		log.Printf("Error promoting user %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
