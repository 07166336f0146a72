package httpserver

import (
	"net/http"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/httpserver/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Post("/users", handlers.RegisterUser(db, lg))
	r.Post("/auth", handlers.Login(db, lg))

	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth)
		protected.Get("/auth", handlers.Me(db, lg))

		protected.Get("/users", handlers.ListUsers(db, lg))
		protected.Get("/users/{userID}", handlers.GetUser(db, lg))
		protected.Put("/users/{userID}", handlers.UpdateUser(db, lg))
		protected.Delete("/users", handlers.DeleteUser(db, lg))

		protected.Route("/clients", func(cr chi.Router) {
			cr.Post("/", handlers.CreateClient(db, lg))
			cr.Get("/", handlers.ListClients(db, lg))

			cr.Put("/address/{clientID}", handlers.AddAddress(db, lg))
			cr.Get("/address/{clientID}", handlers.ListAddresses(db, lg))
			cr.Get("/address/{clientID}/{addressID}", handlers.GetAddress(db, lg))
			cr.Put("/address/{clientID}/{addressID}", handlers.UpdateAddress(db, lg))
			cr.Delete("/address/{clientID}/{addressID}", handlers.DeleteAddress(db, lg))

			cr.Put("/contactperson/{clientID}", handlers.AddContactPerson(db, lg))
			cr.Get("/contactperson/{clientID}", handlers.ListContactPersons(db, lg))
			cr.Get("/contactperson/{clientID}/{contactPersonID}", handlers.GetContactPerson(db, lg))
			cr.Put("/contactperson/{clientID}/{contactPersonID}", handlers.UpdateContactPerson(db, lg))
			cr.Delete("/contactperson/{clientID}/{contactPersonID}", handlers.DeleteContactPerson(db, lg))

			cr.Get("/{clientID}", handlers.GetClient(db, lg))
			cr.Put("/{clientID}", handlers.UpdateClient(db, lg))
			cr.Delete("/{clientID}", handlers.DeleteClient(db, lg))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
