package container

import (
	"context"
	"log"
	"os"

	"github.com/certlab/certprep-lambda/internal/auth"
	"github.com/certlab/certprep-lambda/internal/certification"
	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/certlab/certprep-lambda/internal/gamification"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/certlab/certprep-lambda/internal/progress"
	"github.com/certlab/certprep-lambda/internal/quiz"
	"github.com/certlab/certprep-lambda/internal/studyguide"
	"github.com/certlab/certprep-lambda/internal/user"
)

type Container struct {
	UserContainer          *user.UserContainer
	CertificationContainer *certification.CertificationContainer
	MasteryContainer       *mastery.MasteryContainer
	ProgressContainer      *progress.ProgressContainer
	GamificationContainer  *gamification.GamificationContainer
	StudyGuideContainer    *studyguide.StudyGuideContainer
	QuizContainer          *quiz.QuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&certification.Certification{},
		&certification.Category{},
		&certification.Subcategory{},
		&mastery.MasteryRecord{},
		&progress.CategoryProgress{},
		&gamification.Badge{},
		&gamification.UserBadge{},
		&gamification.GameStats{},
		&studyguide.StudyGuide{},
		&quiz.Quiz{},
		&quiz.QuizQuestion{},
		&quiz.QuizAnswer{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	certificationContainer := certification.NewCertificationContainer(config.DB)
	masteryContainer := mastery.NewMasteryContainer(config.DB)
	progressContainer := progress.NewProgressContainer(config.DB)
	gamificationContainer := gamification.NewGamificationContainer(config.DB, masteryContainer.Repo)
	studyGuideContainer := studyguide.NewStudyGuideContainer(config.DB, progressContainer.Repo)

	quizContainer := quiz.NewQuizContainer(
		config.DB,
		masteryContainer.Service,
		progressContainer.Service,
		gamificationContainer.Service,
	)

	if err := gamification.SeedBadges(ctx, gamificationContainer.Repo); err != nil {
		log.Fatalf("failed to seed badge catalog: %v", err)
	}

	return &Container{
		UserContainer:          userContainer,
		CertificationContainer: certificationContainer,
		MasteryContainer:       masteryContainer,
		ProgressContainer:      progressContainer,
		GamificationContainer:  gamificationContainer,
		StudyGuideContainer:    studyGuideContainer,
		QuizContainer:          quizContainer,
	}
}
