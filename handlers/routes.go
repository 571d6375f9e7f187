package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"taskman-api/auth"
	"taskman-api/middlewares"
)

func home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Welcome to the Task Manager API")
}

// Routes registers every endpoint on a new router. Protected routes are
// wrapped by the auth gate; handlers behind it read the caller identity from
// the request context.
func Routes(h *Handler, tokens *auth.TokenManager) *mux.Router {
	requireAuth := middlewares.RequireAuth(tokens)

	r := mux.NewRouter()
	r.HandleFunc("/", home).Methods("GET")

	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/auth/user", requireAuth(h.CurrentUser)).Methods("GET")

	r.HandleFunc("/api/settings/username", requireAuth(h.UpdateUsername)).Methods("PUT")
	r.HandleFunc("/api/settings/password", requireAuth(h.ChangePassword)).Methods("PUT")
	r.HandleFunc("/api/settings/profile-picture", requireAuth(h.UpdateProfilePicture)).Methods("PUT")

	r.HandleFunc("/api/tasks", requireAuth(h.ListTasks)).Methods("GET")
	r.HandleFunc("/api/tasks", requireAuth(h.CreateTask)).Methods("POST")
	r.HandleFunc("/api/tasks/{id}", requireAuth(h.GetTask)).Methods("GET")
	r.HandleFunc("/api/tasks/{id}", requireAuth(h.UpdateTask)).Methods("PUT")
	r.HandleFunc("/api/tasks/{id}", requireAuth(h.DeleteTask)).Methods("DELETE")

	r.HandleFunc("/api/uploads", requireAuth(h.UploadImage)).Methods("POST")

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}
