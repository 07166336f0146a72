package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"recruitdesk/internal/merge"
	"recruitdesk/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddAddress prepends a new address to the client's list so the most recent
// entry is always first.
func AddAddress(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Line1   string `json:"line1" validate:"required"`
			Line2   string `json:"line2"`
			Line3   string `json:"line3"`
			City    string `json:"city" validate:"required"`
			State   string `json:"state" validate:"required"`
			Country string `json:"country"`
			Pin     int    `json:"pin" validate:"required"`
			GSTIN   string `json:"gstin"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		if errs := checkRequest(req); errs != nil {
			respondFieldErrors(w, errs)
			return
		}

		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		if c.Addresses.HasGSTIN(req.GSTIN) {
			respondFieldErrors(w, []fieldError{{Msg: "Address with the same GSTIN already exists"}})
			return
		}

		if req.Country == "" {
			req.Country = "India"
		}
		a := models.Address{
			ID:      uuid.NewString(),
			Line1:   req.Line1,
			Line2:   req.Line2,
			Line3:   req.Line3,
			City:    req.City,
			State:   req.State,
			Country: req.Country,
			Pin:     req.Pin,
			GSTIN:   req.GSTIN,
		}
		c.Addresses = c.Addresses.Prepend(a)
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("add address failed", "client", c.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

func ListAddresses(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		respondJSON(w, http.StatusOK, c.Addresses)
	}
}

func GetAddress(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		a, ok := c.Addresses.Find(chi.URLParam(r, "addressID"))
		if !ok {
			respondMsg(w, http.StatusNotFound, "Address not found")
			return
		}
		respondJSON(w, http.StatusOK, a)
	}
}

func UpdateAddress(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch merge.AddressPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		a, ok := c.Addresses.Find(chi.URLParam(r, "addressID"))
		if !ok {
			respondMsg(w, http.StatusNotFound, "Address not found")
			return
		}
		patch.Apply(&a)
		c.Addresses, _ = c.Addresses.Replace(a)
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("update address failed", "client", c.ID, "address", a.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c.Addresses)
	}
}

func DeleteAddress(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		rest, ok := c.Addresses.Remove(chi.URLParam(r, "addressID"))
		if !ok {
			respondMsg(w, http.StatusNotFound, "Address not found")
			return
		}
		c.Addresses = rest
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("delete address failed", "client", c.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}
