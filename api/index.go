package handler

import (
	"net/http"

	"checklist/config"
	"checklist/di"
	"checklist/shared/logger"
)

// Handler adapts the app for serverless platforms that route every request
// through a single function.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	di.InitializeService().Handler().ServeHTTP(w, r)
}
