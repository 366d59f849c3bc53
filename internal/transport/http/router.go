package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Group(func(pr chi.Router) {
		pr.Use(middlewareChi.Timeout(30 * time.Second))

		pr.Route("/rooms", func(rm chi.Router) {
			rm.Get("/", h.ListRooms)
			rm.Post("/", h.CreateRoom)

			rm.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.GetRoom)
				rr.Put("/", h.UpdateRoom)
				rr.Delete("/", h.DeleteRoom)
				rr.Get("/students", h.ListRoomStudents)
			})
		})

		pr.Route("/students", func(st chi.Router) {
			st.Get("/", h.ListStudents)
			st.Post("/", h.CreateStudent)

			st.Route("/{id}", func(sr chi.Router) {
				sr.Get("/", h.GetStudent)
				sr.Put("/", h.UpdateStudent)
				sr.Delete("/", h.DeleteStudent)
				sr.Post("/move", h.MoveStudent)
			})
		})

		pr.Get("/combined", h.Combined)
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
