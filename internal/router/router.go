package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/certlab/certprep-lambda/internal/auth"
	"github.com/certlab/certprep-lambda/internal/certification"
	"github.com/certlab/certprep-lambda/internal/gamification"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/certlab/certprep-lambda/internal/middlewares"
	"github.com/certlab/certprep-lambda/internal/progress"
	"github.com/certlab/certprep-lambda/internal/quiz"
	"github.com/certlab/certprep-lambda/internal/studyguide"
	"github.com/certlab/certprep-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler          *user.Handler
	CertificationHandler *certification.Handler
	QuizHandler          *quiz.Handler
	MasteryHandler       *mastery.Handler
	ProgressHandler      *progress.Handler
	GamificationHandler  *gamification.Handler
	StudyGuideHandler    *studyguide.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/certifications", certification.Routes(cfg.CertificationHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/mastery", mastery.Routes(cfg.MasteryHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/gamification", gamification.Routes(cfg.GamificationHandler))
		r.Mount("/study-guides", studyguide.Routes(cfg.StudyGuideHandler))
	})
	return r
}
