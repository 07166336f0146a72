package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"recruitdesk/internal/merge"
	"recruitdesk/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// findClient loads a client by id. A malformed id errors the query the same
// way an unknown one does; both map to the caller's "does not exist" path.
func findClient(db *gorm.DB, id string) (models.Client, bool) {
	var c models.Client
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		return models.Client{}, false
	}
	return c, true
}

func CreateClient(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name           string                 `json:"name" validate:"required"`
			Division       string                 `json:"division"`
			Vertical       string                 `json:"vertical"`
			Logo           string                 `json:"logo"`
			ContactNumbers merge.FlexList[int64]  `json:"contactNumbers"`
			Emails         merge.FlexList[string] `json:"emails" validate:"required,min=1,dive,email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if errs := checkRequest(req); errs != nil {
			respondFieldErrors(w, errs)
			return
		}

		var count int64
		if err := db.Model(&models.Client{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
			lg.Errorw("count clients failed", "error", err)
			respondServerError(w)
			return
		}
		if count > 0 {
			respondFieldErrors(w, []fieldError{{Msg: "Client already exists"}})
			return
		}

		nums := models.NumberList(req.ContactNumbers)
		if nums == nil {
			nums = models.NumberList{}
		}
		now := time.Now()
		c := models.Client{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Division:       req.Division,
			Vertical:       req.Vertical,
			Logo:           req.Logo,
			ContactNumbers: nums,
			Emails:         models.StringList(req.Emails),
			Addresses:      models.AddressList{},
			ContactPersons: models.ContactPersonList{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := db.Create(&c).Error; err != nil {
			lg.Errorw("create client failed", "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusCreated, c)
	}
}

func ListClients(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cs []models.Client
		if err := db.Order("created_at desc").Find(&cs).Error; err != nil {
			lg.Errorw("list clients failed", "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, cs)
	}
}

func GetClient(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

func UpdateClient(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch merge.ClientPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		c, ok := findClient(db, chi.URLParam(r, "clientID"))
		if !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		// renaming onto another client's name is the same conflict as on create
		if patch.Name != nil && *patch.Name != "" && *patch.Name != c.Name {
			var count int64
			if err := db.Model(&models.Client{}).Where("name = ?", *patch.Name).Count(&count).Error; err != nil {
				lg.Errorw("count clients failed", "error", err)
				respondServerError(w)
				return
			}
			if count > 0 {
				respondFieldErrors(w, []fieldError{{Msg: "Client already exists"}})
				return
			}
		}
		for _, field := range patch.Apply(&c) {
			lg.Debugw("value already present, skipping", "client", c.ID, "field", field)
		}
		c.UpdatedAt = time.Now()
		if err := db.Save(&c).Error; err != nil {
			lg.Errorw("update client failed", "client", c.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

func DeleteClient(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "clientID")
		if _, ok := findClient(db, id); !ok {
			respondMsg(w, http.StatusBadRequest, "Client does not exist")
			return
		}
		if err := db.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
			lg.Errorw("delete client failed", "client", id, "error", err)
			respondServerError(w)
			return
		}
		respondMsg(w, http.StatusOK, "Client deleted")
	}
}
