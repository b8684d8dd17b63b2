package reviews

import (
	"encoding/json"
	"log"
	"net/http"

	"kidcare/store"
	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Service handles the review routes. Reviews are publicly written and read;
// there is no update or delete path.
type Service struct {
	reviews store.Collection
}

func NewService(reviews store.Collection) *Service {
	return &Service{reviews: reviews}
}

// GET /reviews
func (s *Service) GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := s.reviews.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// POST /reviews
func (s *Service) CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var review bson.M
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.reviews.InsertOne(r.Context(), review)
	if err != nil {
		log.Printf("Error inserting review: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
