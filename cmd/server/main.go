package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"kaio/config"
	"kaio/database"
	"kaio/router"

	"kaio/pkg/ai"
	"kaio/pkg/notify"
	"kaio/pkg/planstore"
	snapRepoImp "kaio/pkg/planstore/repositoryImp"
	"kaio/pkg/scheduler"

	planCtrlImp "kaio/pkg/plan/controllerImp"
	planSvcImp "kaio/pkg/plan/serviceImp"

	exportCtrlImp "kaio/pkg/export/controllerImp"
	groceryCtrlImp "kaio/pkg/grocery/controllerImp"
	healthCtrlImp "kaio/pkg/health/controllerImp"
	historyCtrlImp "kaio/pkg/history/controllerImp"
	profileCtrlImp "kaio/pkg/profile/controllerImp"
	settingsCtrlImp "kaio/pkg/settings/controllerImp"

	kbCtrlImp "kaio/pkg/kb/controllerImp"
	kbRepoImp "kaio/pkg/kb/repositoryImp"
	kbSvcImp "kaio/pkg/kb/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Storage: sqlite row or diskv file, one snapshot blob either way
	var db *gorm.DB
	var store *planstore.Store
	switch cfg.StorageBackend {
	case "file":
		store = planstore.New(snapRepoImp.NewDiskv(cfg.DataPath, planstore.SnapshotName))
		// KB still lives in sqlite
		db = database.OpenSQLite(cfg.DBPath)
	default:
		db = database.OpenSQLite(cfg.DBPath)
		store = planstore.New(snapRepoImp.NewGorm(db, planstore.SnapshotName))
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/app.js"); err != nil {
		log.Printf("WARN: static/app.js not found: %v", err)
	}

	// 4) Generator (mock fallback)
	var llm ai.Client
	switch {
	case cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "":
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	case cfg.GeminiAPIKey != "":
		g, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini: %v", err)
		}
		llm = g
	default:
		log.Printf("[ai] no generator configured, using mock")
		llm = ai.NewMock()
	}

	// 5) KB wiring
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 6) Services/Controllers
	planSvc := planSvcImp.NewPlanService(store, llm, kbSvc)
	plCtrl := planCtrlImp.NewPlanCtrl(store, planSvc)
	grCtrl := groceryCtrlImp.New(store)
	prCtrl := profileCtrlImp.New(store)
	seCtrl := settingsCtrlImp.New(store)
	hiCtrl := historyCtrlImp.New(store)
	exCtrl := exportCtrlImp.New(store)
	heCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Notifications + periodic expiry check
	var sender notify.Sender
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		s, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("WARN: telegram disabled: %v", err)
			sender = notify.NewNoop()
		} else {
			sender = s
		}
	} else {
		sender = notify.NewNoop()
	}
	sched := scheduler.New(store, planSvc, sender, cfg.CheckIntervalMin, cfg.AutoRegenerate)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer sched.Stop()

	// 8) Routes + serve
	router.New(e, plCtrl, grCtrl, prCtrl, seCtrl, hiCtrl, exCtrl, kbCtrl, heCtrl)
	log.Fatal(e.Start(":" + cfg.Port))
}
