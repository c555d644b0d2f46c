//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/verdantly/gardenmate/internal/bootstrap"
	"github.com/verdantly/gardenmate/internal/domain/chatbot"
	"github.com/verdantly/gardenmate/internal/domain/identify"
	"github.com/verdantly/gardenmate/internal/domain/plant"
	"github.com/verdantly/gardenmate/internal/domain/recommend"
	"github.com/verdantly/gardenmate/internal/domain/weather"
	"github.com/verdantly/gardenmate/internal/infra/config"
	"github.com/verdantly/gardenmate/internal/infra/llm/chatgpt"
	httpiface "github.com/verdantly/gardenmate/internal/interface/http"
	"github.com/verdantly/gardenmate/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatGPTClient,
		providePgxPool,
		providePlantBackend,
		providePlantRepository,
		provideCandidateSource,
		provideCollaborator,
		provideChatConfig,
		provideQuestionRepository,
		provideChatStore,
		provideTokenCounter,
		provideIdentifyConfig,
		provideObjectStorage,
		provideClassifier,
		provideWeatherProvider,
		provideMaxUploadBytes,
		plant.NewService,
		recommend.NewService,
		chatbot.NewService,
		identify.NewService,
		weather.NewService,
		wire.Bind(new(chatbot.ChatClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
