package nannies

import (
	"log"
	"net/http"

	"kidcare/store"
	"kidcare/utils"

	"github.com/julienschmidt/httprouter"
)

// Service handles the nanny-profile routes. Profiles are read-only through
// this API.
type Service struct {
	nannies store.Collection
}

func NewService(nannies store.Collection) *Service {
	return &Service{nannies: nannies}
}

// GET /nannies
func (s *Service) GetNannies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := s.nannies.FindAll(r.Context())
	if err != nil {
		log.Printf("Error listing nannies: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
