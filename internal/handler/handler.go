package handler

import (
	"github.com/go-telegram/bot"

	"github.com/alder-apps/growthbot/internal/config"
	"github.com/alder-apps/growthbot/internal/conversation"
	"github.com/alder-apps/growthbot/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot              *bot.Bot
	cfg              *config.Config
	sessions         *conversation.Store
	userService      *service.UserService
	situationService *service.SituationService
	journalService   *service.JournalService
	adviceService    *service.AdviceService
	advisor          *service.AdvisorService
	analyzer         *service.AnalyzerService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot              *bot.Bot
	Cfg              *config.Config
	Sessions         *conversation.Store
	UserService      *service.UserService
	SituationService *service.SituationService
	JournalService   *service.JournalService
	AdviceService    *service.AdviceService
	Advisor          *service.AdvisorService
	Analyzer         *service.AnalyzerService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:              deps.Bot,
		cfg:              deps.Cfg,
		sessions:         deps.Sessions,
		userService:      deps.UserService,
		situationService: deps.SituationService,
		journalService:   deps.JournalService,
		adviceService:    deps.AdviceService,
		advisor:          deps.Advisor,
		analyzer:         deps.Analyzer,
	}
}
