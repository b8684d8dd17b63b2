package pay

import (
	"encoding/json"
	"log"
	"net/http"

	"kidcare/store"
	"kidcare/stripe"
	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Service handles payment-intent creation and payment records.
type Service struct {
	payments store.Collection
	intents  stripe.IntentCreator
}

func NewService(payments store.Collection, intents stripe.IntentCreator) *Service {
	return &Service{payments: payments, intents: intents}
}

// POST /create-payment-intent
//
// The price is expected in the smallest currency unit; conversion is the
// caller's responsibility.
func (s *Service) CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price int64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	clientSecret, err := s.intents.CreateIntent(r.Context(), body.Price, "usd")
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clientSecret": clientSecret})
}

// POST /payments
//
// Records the payment document. The referenced bookedServices booking ids are
// not mutated here.
func (s *Service) CreatePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payment bson.M
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	insertResult, err := s.payments.InsertOne(r.Context(), payment)
	if err != nil {
		log.Printf("Error inserting payment: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertResult": insertResult})
}
