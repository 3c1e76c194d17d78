package assistantService

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/assistant"
	"duitai/internal/state"
	"duitai/pkg/gemini"
	"duitai/pkg/nlp"
	"duitai/pkg/utils"
)

type IAssistantService interface {
	SendMessage(ctx context.Context, req assistant.SendMessageRequest) (assistant.SendMessageResponse, error)
	GetMessages(ctx context.Context) (assistant.MessageListResponse, error)
}

type assistantService struct {
	log         *logrus.Logger
	state       *state.Controller
	gemini      gemini.IGemini
	localParser nlp.IParser
	utils       utils.IUtils

	// processing guards the single parse-in-flight rule: a second chat turn
	// arriving while one is being parsed is refused, not queued.
	processing atomic.Bool
}

func New(log *logrus.Logger, stateController *state.Controller, geminiClient gemini.IGemini, localParser nlp.IParser, utils utils.IUtils) IAssistantService {
	return &assistantService{
		log:         log,
		state:       stateController,
		gemini:      geminiClient,
		localParser: localParser,
		utils:       utils,
	}
}
