package server

import (
	"net/http"
	"time"

	"rajubill/internal/auth"
	billctrl "rajubill/internal/bill/controller"
	exportctrl "rajubill/internal/export/controller"
	"rajubill/internal/settings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	authCtrl *auth.Controller,
	billCtrl *billctrl.BillController,
	exportCtrl *exportctrl.ExportController,
	settingsCtrl *settings.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authCtrl.HandleRegister)
			r.Post("/login", authCtrl.HandleLogin)
			r.Get("/me", authCtrl.HandleMe)
			r.Post("/logout", authCtrl.HandleLogout)
		})

		r.Group(func(r chi.Router) {
			r.Use(authCtrl.RequireToken)

			r.Route("/bills", func(r chi.Router) {
				r.Get("/", billCtrl.HandleList)
				r.Post("/", billCtrl.HandleCreate)
				r.Get("/{id}", billCtrl.HandleGet)
				r.Put("/{id}", billCtrl.HandleUpdate)
				r.Delete("/{id}", billCtrl.HandleDelete)

				r.Get("/{id}/document", exportCtrl.HandleDocument)
				r.Get("/{id}/pdf", exportCtrl.HandleDownloadPDF)
				r.Post("/{id}/print", exportCtrl.HandlePrint)
				r.Post("/{id}/share", exportCtrl.HandleShare)
			})

			r.Get("/export/status", exportCtrl.HandleStatus)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsCtrl.HandleGet)
				r.Put("/", settingsCtrl.HandleSave)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
