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

// AddContactPerson prepends a new contact person after checking that none
// of its emails is already attached to another contact person of the client.
func AddContactPerson(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FirstName      string                 `json:"firstName" validate:"required"`
			LastName       string                 `json:"lastName" validate:"required"`
			Designation    string                 `json:"designation"`
			ContactNumbers merge.FlexList[int64]  `json:"contactNumbers" validate:"required,min=1"`
			Emails         merge.FlexList[string] `json:"emails" validate:"required,min=1,dive,email"`
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
		if c.ContactPersons.EmailsTaken(req.Emails) {
			respondMsg(w, http.StatusBadRequest, "Email already exists")
			return
		}

		p := models.ContactPerson{
			ID:             uuid.NewString(),
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Designation:    req.Designation,
			ContactNumbers: models.NumberList(req.ContactNumbers),
			Emails:         models.StringList(req.Emails),
		}
		c.ContactPersons = c.ContactPersons.Prepend(p)
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("add contact person failed", "client", c.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c.ContactPersons)
	}
}

func ListContactPersons(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		respondJSON(w, http.StatusOK, c.ContactPersons)
	}
}

func GetContactPerson(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		p, ok := c.ContactPersons.Find(chi.URLParam(r, "contactPersonID"))
		if !ok {
			respondMsg(w, http.StatusNotFound, "Contact person not found")
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

func UpdateContactPerson(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch merge.ContactPersonPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		p, ok := c.ContactPersons.Find(chi.URLParam(r, "contactPersonID"))
		if !ok {
			respondMsg(w, http.StatusNotFound, "Contact person not found")
			return
		}
		for _, field := range patch.Apply(&p) {
			lg.Debugw("value already present, skipping", "client", c.ID, "contactPerson", p.ID, "field", field)
		}
		c.ContactPersons, _ = c.ContactPersons.Replace(p)
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("update contact person failed", "client", c.ID, "contactPerson", p.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c.ContactPersons)
	}
}

func DeleteContactPerson(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		rest, ok := c.ContactPersons.Remove(chi.URLParam(r, "contactPersonID"))
		if !ok {
			respondMsg(w, http.StatusNotFound, "Contact person not found")
			return
		}
		c.ContactPersons = rest
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("delete contact person failed", "client", c.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}
