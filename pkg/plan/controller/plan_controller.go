package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Get(c echo.Context) error
	Generate(c echo.Context) error
	GenerateWeekly(c echo.Context) error
	Check(c echo.Context) error
	SetDay(c echo.Context) error
	NextDay(c echo.Context) error
	PreviousDay(c echo.Context) error
	ToggleChecklist(c echo.Context) error
}
