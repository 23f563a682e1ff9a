package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/certlab/certprep-lambda/internal/container"
	"github.com/certlab/certprep-lambda/internal/router"
)

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.WithError(err).Warn("No .env file loaded")
		}
	}

	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:          c.UserContainer.Handler,
		CertificationHandler: c.CertificationContainer.Handler,
		QuizHandler:          c.QuizContainer.Handler,
		MasteryHandler:       c.MasteryContainer.Handler,
		ProgressHandler:      c.ProgressContainer.Handler,
		GamificationHandler:  c.GamificationContainer.Handler,
		StudyGuideHandler:    c.StudyGuideContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
