package http

import (
	"net/http"

	"go-petclinic/internal/delivery/http/handler"
	"go-petclinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	ownerHandler        *handler.OwnerHandler
	petHandler          *handler.PetHandler
	visitHandler        *handler.VisitHandler
	vetHandler          *handler.VetHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	recoverMiddleware   *middleware.RecoverMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	ownerHandler *handler.OwnerHandler,
	petHandler *handler.PetHandler,
	visitHandler *handler.VisitHandler,
	vetHandler *handler.VetHandler,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	recoverMiddleware *middleware.RecoverMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		ownerHandler:        ownerHandler,
		petHandler:          petHandler,
		visitHandler:        visitHandler,
		vetHandler:          vetHandler,
		requestIDMiddleware: requestIDMiddleware,
		recoverMiddleware:   recoverMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Owner search and forms
	r.router.HandleFunc("/owners", r.ownerHandler.Search).Methods(http.MethodGet)
	r.router.HandleFunc("/owners/new", r.ownerHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/owners/{ownerId:[0-9]+}", r.ownerHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/owners/{ownerId:[0-9]+}/edit", r.ownerHandler.Update).Methods(http.MethodPost)

	// Pets
	r.router.HandleFunc("/pettypes", r.petHandler.ListTypes).Methods(http.MethodGet)
	r.router.HandleFunc("/owners/{ownerId:[0-9]+}/pets/new", r.petHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/owners/{ownerId:[0-9]+}/pets/{petId:[0-9]+}/edit", r.petHandler.Update).Methods(http.MethodPost)

	// Visits
	r.router.HandleFunc("/owners/{ownerId:[0-9]+}/pets/{petId:[0-9]+}/visits/new", r.visitHandler.Create).Methods(http.MethodPost)

	// Vets
	r.router.HandleFunc("/vets.html", r.vetHandler.ListPage).Methods(http.MethodGet)
	r.router.HandleFunc("/vets", r.vetHandler.ListAll).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.recoverMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
