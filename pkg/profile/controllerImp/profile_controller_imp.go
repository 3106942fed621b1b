package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kaio/entities"
	"kaio/pkg/planstore"
)

type ProfileCtrl struct{ store *planstore.Store }

func New(store *planstore.Store) *ProfileCtrl { return &ProfileCtrl{store} }

func (h *ProfileCtrl) Get(c echo.Context) error {
	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, map[string]any{
		"profile": snap.UserProfile,
		"goals":   snap.Goals,
	})
}

// Put replaces the profile wholesale; any subset of fields is accepted.
func (h *ProfileCtrl) Put(c echo.Context) error {
	var p entities.UserProfile
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	h.store.SetUserProfile(p)
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) PutGoals(c echo.Context) error {
	var req struct {
		Goals string `json:"goals"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	h.store.SetGoals(req.Goals)
	return c.JSON(http.StatusOK, map[string]string{"goals": req.Goals})
}
