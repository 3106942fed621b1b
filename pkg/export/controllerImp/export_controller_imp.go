package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kaio/pkg/export"
	"kaio/pkg/planstore"
)

type ExportCtrl struct{ store *planstore.Store }

func New(store *planstore.Store) *ExportCtrl { return &ExportCtrl{store} }

func (h *ExportCtrl) WeeklyXLSX(c echo.Context) error {
	snap := h.store.Snapshot()
	if snap.WeeklyPlan == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no weekly plan yet"})
	}
	buf, err := export.WeeklyWorkbook(snap.WeeklyPlan, snap.GroceryList)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="weekly-plan.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
