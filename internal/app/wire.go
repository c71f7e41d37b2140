//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"api-playground/internal/api/server"
	"api-playground/internal/api/v1/auth"
	"api-playground/internal/api/v1/routes"
	"api-playground/internal/app/api"
	"api-playground/internal/app/api/openai"
	"api-playground/internal/app/api/openai/whisper"
	"api-playground/internal/app/audiototext"
	"api-playground/internal/config"
)

// provideRegistry gives each server its own metrics registry
func provideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func InitializeServer(cfg config.ServerConfig, logger *zap.Logger) *server.Server {
	wire.Build(auth.DefaultUsers, routes.NewHandlers, provideRegistry, server.NewServer)
	return &server.Server{}
}

// InitializeAudioToText uses openai's remote service, OPENAI_API_KEY must be set for the call to succeed
func InitializeAudioToText(keys *config.APIKeys, whisperOptions whisper.Options, options audiototext.Options, logger *zap.Logger) *audiototext.Job {
	wire.Build(
		openai.NewClient,
		whisper.NewRemoteTranscriber,
		wire.Bind(new(api.Transcriber), new(*whisper.RemoteTranscriber)),
		audiototext.NewJob,
	)
	return &audiototext.Job{}
}
