package handlers

import (
	"encoding/json"
	"net/http"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		if errs := checkRequest(req); errs != nil {
			respondFieldErrors(w, errs)
			return
		}
		var u models.User
		if err := db.First(&u, "email = ?", req.Email).Error; err != nil {
			respondFieldErrors(w, []fieldError{{Msg: "Invalid credentials"}})
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
			respondFieldErrors(w, []fieldError{{Msg: "Invalid credentials"}})
			return
		}
		tok, err := auth.Sign(u.ID)
		if err != nil {
			lg.Errorw("sign token failed", "user", u.ID, "error", err)
			respondServerError(w)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"token": tok})
	}
}

// Me returns the account behind the presented token.
func Me(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u models.User
		if err := db.First(&u, "id = ?", auth.Subject(r.Context())).Error; err != nil {
			respondMsg(w, http.StatusNotFound, "User does not exist")
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}
