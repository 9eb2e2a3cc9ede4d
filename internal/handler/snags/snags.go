package snags

import (
	"errors"
	"net/http"

	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/handler"
	"github.com/burdstermcfc/site-app/internal/model"
	"github.com/burdstermcfc/site-app/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgProjectNotFound = "Project not found"
	msgSnagNotFound    = "Snag not found"
	msgProjectMissing  = "Project does not exist"
	msgInvalidStatus   = "status must be one of: open, in-progress, resolved, closed"
)

var (
	getProjectForOwner = store.GetProjectForOwner
	createSnag         = store.CreateSnag
	listSnagsByProject = store.ListSnagsByProject
	updateSnagStatus   = store.UpdateSnagStatus
)

// ownedProjectID resolves :projectId and checks the caller owns it. When ok
// is false the response has already been written or err is set.
func ownedProjectID(c echo.Context, db database.DB) (id int, ok bool, err error) {
	user, err := handler.CurrentUser(c)
	if err != nil {
		return 0, false, err
	}
	id, valid := handler.ParseID(c, "projectId")
	if !valid {
		return 0, false, handler.Error(c, http.StatusBadRequest, "invalid project id")
	}
	if _, err := getProjectForOwner(c.Request().Context(), db, id, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, false, handler.Error(c, http.StatusNotFound, msgProjectNotFound)
		}
		return 0, false, handler.InternalError(c, err, "Failed to load project")
	}
	return id, true, nil
}

// ListSnagsHandler lists the snags of one of the caller's projects
// @Summary     List snags
// @Description Returns the project's snags, newest first
// @Tags        snags
// @Produce     json
// @Param       projectId path     int true "Project ID"
// @Success     200       {array}  model.Snag
// @Failure     400       {object} api.ErrorResponse
// @Failure     404       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects/{projectId}/snags [get]
func ListSnagsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, ok, err := ownedProjectID(c, db)
		if !ok {
			return err
		}
		snags, err := listSnagsByProject(c.Request().Context(), db, projectID)
		if err != nil {
			return handler.InternalError(c, err, "Failed to list snags")
		}
		return c.JSON(http.StatusOK, snags)
	}
}

// CreateSnagHandler records a snag against one of the caller's projects
// @Summary     Create snag
// @Description Status defaults to open. The image is stored as an opaque URL.
// @Tags        snags
// @Accept      json
// @Produce     json
// @Param       projectId path     int             true "Project ID"
// @Param       body      body     api.SnagRequest true "Snag"
// @Success     201       {object} model.Snag
// @Failure     400       {object} api.ErrorResponse
// @Failure     404       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects/{projectId}/snags [post]
func CreateSnagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, ok, err := ownedProjectID(c, db)
		if !ok {
			return err
		}
		var req api.SnagRequest
		if err := c.Bind(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, api.ValidationMessage(err))
		}

		s, err := createSnag(c.Request().Context(), db, &model.Snag{
			ProjectID:   projectID,
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			AssignedTo:  req.AssignedTo,
			ImageURL:    req.Image,
		})
		if err != nil {
			// the project can disappear between the ownership check and the insert
			if errors.Is(err, store.ErrProjectMissing) {
				return handler.Error(c, http.StatusBadRequest, msgProjectMissing)
			}
			if errors.Is(err, store.ErrConstraint) {
				return handler.Error(c, http.StatusBadRequest, msgInvalidStatus)
			}
			return handler.InternalError(c, err, "Failed to create snag")
		}
		return c.JSON(http.StatusCreated, s)
	}
}

// UpdateSnagStatusHandler moves a snag to a new status
// @Summary     Update snag status
// @Description Any status may move to any other
// @Tags        snags
// @Accept      json
// @Produce     json
// @Param       projectId path     int                   true "Project ID"
// @Param       snagId    path     int                   true "Snag ID"
// @Param       body      body     api.SnagStatusRequest true "New status"
// @Success     200       {object} model.Snag
// @Failure     400       {object} api.ErrorResponse
// @Failure     404       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects/{projectId}/snags/{snagId} [patch]
func UpdateSnagStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, ok, err := ownedProjectID(c, db)
		if !ok {
			return err
		}
		snagID, valid := handler.ParseID(c, "snagId")
		if !valid {
			return handler.Error(c, http.StatusBadRequest, "invalid snag id")
		}
		var req api.SnagStatusRequest
		if err := c.Bind(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, api.ValidationMessage(err))
		}

		s, err := updateSnagStatus(c.Request().Context(), db, projectID, snagID, req.Status)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return handler.Error(c, http.StatusNotFound, msgSnagNotFound)
			}
			if errors.Is(err, store.ErrConstraint) {
				return handler.Error(c, http.StatusBadRequest, msgInvalidStatus)
			}
			return handler.InternalError(c, err, "Failed to update snag")
		}
		return c.JSON(http.StatusOK, s)
	}
}
