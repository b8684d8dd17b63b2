package services

import (
	"encoding/json"
	"log"
	"net/http"

	"kidcare/store"
	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service handles the service-listing routes.
type Service struct {
	services store.Collection
}

func NewService(services store.Collection) *Service {
	return &Service{services: services}
}

// GET /services
func (s *Service) GetServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := s.services.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing services: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// POST /services  (admin)
func (s *Service) CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var service bson.M
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.services.InsertOne(r.Context(), service)
	if err != nil {
		log.Printf("Error inserting service: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// DELETE /services/:id  (admin)
func (s *Service) DeleteService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := s.services.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		log.Printf("Error deleting service %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
