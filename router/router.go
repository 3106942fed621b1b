package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	planCtrl interface {
		Get(echo.Context) error
		Generate(echo.Context) error
		GenerateWeekly(echo.Context) error
		Check(echo.Context) error
		SetDay(echo.Context) error
		NextDay(echo.Context) error
		PreviousDay(echo.Context) error
		ToggleChecklist(echo.Context) error
	},
	groceryCtrl interface {
		Get(echo.Context) error
		Toggle(echo.Context) error
	},
	profileCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
		PutGoals(echo.Context) error
	},
	settingsCtrl interface {
		Get(echo.Context) error
		PutResetTime(echo.Context) error
		Clear(echo.Context) error
	},
	historyCtrl interface{ List(echo.Context) error },
	exportCtrl interface{ WeeklyXLSX(echo.Context) error },
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	g := e.Group("/plan")
	g.GET("", planCtrl.Get)
	g.POST("/generate", planCtrl.Generate)
	g.POST("/generate/weekly", planCtrl.GenerateWeekly)
	g.GET("/check", planCtrl.Check)
	g.PUT("/day", planCtrl.SetDay)
	g.POST("/day/next", planCtrl.NextDay)
	g.POST("/day/prev", planCtrl.PreviousDay)
	g.POST("/checklist/:index/toggle", planCtrl.ToggleChecklist)

	e.GET("/grocery", groceryCtrl.Get)
	e.POST("/grocery/:id/toggle", groceryCtrl.Toggle)

	e.GET("/profile", profileCtrl.Get)
	e.PUT("/profile", profileCtrl.Put)
	e.PUT("/goals", profileCtrl.PutGoals)

	e.GET("/settings", settingsCtrl.Get)
	e.PUT("/settings/reset-time", settingsCtrl.PutResetTime)
	e.POST("/settings/clear", settingsCtrl.Clear)

	e.GET("/history", historyCtrl.List)
	e.GET("/export/weekly.xlsx", exportCtrl.WeeklyXLSX)

	// KB endpoints
	e.POST("/kb/ingest", kbCtrl.IngestText)
	e.POST("/kb/ingest/url", kbCtrl.IngestURL)
	e.GET("/kb/search", kbCtrl.Search)

	return e
}
