package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/merge"
	"recruitdesk/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterUser creates a user and, like the login endpoint, answers with a
// signed token for the new account.
func RegisterUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FirstName string                 `json:"firstName" validate:"required"`
			LastName  string                 `json:"lastName" validate:"required"`
			Email     string                 `json:"email" validate:"required,email"`
			UserTypes merge.FlexList[string] `json:"userType" validate:"required,min=1"`
			Password  string                 `json:"password" validate:"required,min=6"`
			Avatar    string                 `json:"avatar"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		if errs := checkRequest(req); errs != nil {
			respondFieldErrors(w, errs)
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			lg.Errorw("count users failed", "error", err)
			respondServerError(w)
			return
		}
		if count > 0 {
			respondFieldErrors(w, []fieldError{{Msg: "User already exists"}})
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			lg.Errorw("hash password failed", "error", err)
			respondServerError(w)
			return
		}
		now := time.Now()
		u := models.User{
			ID:           uuid.NewString(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			UserTypes:    models.StringList(req.UserTypes),
			PasswordHash: hash,
			Avatar:       req.Avatar,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(&u).Error; err != nil {
			lg.Errorw("create user failed", "error", err)
			respondServerError(w)
			return
		}
		tok, err := auth.Sign(u.ID)
		if err != nil {
			lg.Errorw("sign token failed", "user", u.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"token": tok})
	}
}

func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			lg.Errorw("list users failed", "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

func GetUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u models.User
		if err := db.First(&u, "id = ?", chi.URLParam(r, "userID")).Error; err != nil {
			respondMsg(w, http.StatusNotFound, "User does not exist")
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

func UpdateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch merge.UserPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		var u models.User
		if err := db.First(&u, "id = ?", chi.URLParam(r, "userID")).Error; err != nil {
			respondMsg(w, http.StatusBadRequest, "User does not exist")
			return
		}
		for _, field := range patch.Apply(&u) {
			lg.Debugw("value already present, skipping", "user", u.ID, "field", field)
		}
		if patch.Password != nil && *patch.Password != "" {
			hash, err := auth.HashPassword(*patch.Password)
			if err != nil {
				lg.Errorw("hash password failed", "user", u.ID, "error", err)
				respondServerError(w)
				return
			}
			u.PasswordHash = hash
		}
		u.UpdatedAt = time.Now()
		if err := db.Save(&u).Error; err != nil {
			lg.Errorw("update user failed", "user", u.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

// DeleteUser takes the target id in the request body rather than the path.
func DeleteUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		if errs := checkRequest(req); errs != nil {
			respondFieldErrors(w, errs)
			return
		}
		if err := db.Delete(&models.User{}, "id = ?", req.ID).Error; err != nil {
			lg.Errorw("delete user failed", "user", req.ID, "error", err)
			respondServerError(w)
			return
		}
		respondMsg(w, http.StatusOK, "User deleted")
	}
}
