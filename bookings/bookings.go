package bookings

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

// Service handles the booking routes.
type Service struct {
	bookings store.Collection
}

func NewService(bookings store.Collection) *Service {
	return &Service{bookings: bookings}
}

// GET /bookings?email=...
func (s *Service) GetBookingsByEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")

	result, err := s.bookings.FindMany(r.Context(), bson.M{"email": email})
	if err != nil {
		log.Printf("Error listing bookings for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// POST /bookings
func (s *Service) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking bson.M
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.bookings.InsertOne(r.Context(), booking)
	if err != nil {
		log.Printf("Error inserting booking: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GET /allbookings  (admin)
func (s *Service) GetAllBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := s.bookings.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing all bookings: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// POST /allbookings
//
// Skips the insert when a booking with the same status value already exists.
// Keying the duplicate check on status mirrors the service this API fronts;
// the check and the insert are separate calls and can race.
func (s *Service) CreateBookingIfNew(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking bson.M
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, _ := booking["status"].(string)

	var existing models.Booking
	err := s.bookings.FindOne(r.Context(), bson.M{"status": status}, &existing)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "already exists"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Error checking existing booking: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	result, err := s.bookings.InsertOne(r.Context(), booking)
	if err != nil {
		log.Printf("Error inserting booking: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GET /allbookings/status/:id
//
// Answers whether the stored status of the booking equals the status in the
// request body. A missing booking answers false.
func (s *Service) CheckBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var booking models.Booking
	err = s.bookings.FindOne(r.Context(), bson.M{"_id": id}, &booking)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Error looking up booking %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": err == nil && booking.Status == body.Status})
}

// PATCH /allbookings/status/:id  (admin)
//
// Status is the only field this route may change.
func (s *Service) UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.bookings.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": bson.M{"status": body.Status}})
	if err != nil {
		log.Printf("Error updating booking %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
