package studio_api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/utils/filename"
)

type descriptorResponse struct {
	ID         string         `json:"id"`
	Surface    string         `json:"surface"`
	Descriptor sparse.Section `json:"descriptor"`
	UpdatedAt  string         `json:"updated_at"`
}

func newDescriptorResponse(ws studio.Workspace) descriptorResponse {
	return descriptorResponse{
		ID:         ws.ID.String(),
		Surface:    string(ws.Surface),
		Descriptor: ws.Descriptor,
		UpdatedAt:  ws.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// HandleDescriptor returns the canonical descriptor of a workspace. With
// ?download=1 the bare descriptor is sent as an attachment, ready to be
// PUT back or checked with studioctl.
func HandleDescriptor(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		ws, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return common.StudioError(err)
		}
		if c.QueryParam("download") != "" {
			c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename.Descriptor(ws.Name)))
			return c.JSONPretty(http.StatusOK, ws.Descriptor, "  ")
		}
		return c.JSON(http.StatusOK, newDescriptorResponse(ws))
	}
}

// HandleDescriptorReplace swaps the descriptor for the request body after
// schema and range validation.
func HandleDescriptorReplace(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return common.ErrBadRequest("failed to read body")
		}
		ws, err := svc.ReplaceDescriptor(c.Request().Context(), id, raw)
		if err != nil {
			if httpErr := common.StudioError(err); httpErr.Code == http.StatusBadRequest {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return common.StudioError(err)
		}
		slog.Info("descriptor replaced", "workspace_id", ws.ID)
		return c.JSON(http.StatusOK, newDescriptorResponse(ws))
	}
}

// HandleDelete removes a workspace.
func HandleDelete(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return common.StudioError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
