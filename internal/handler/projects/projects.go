package projects

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

const msgNotFound = "Project not found"

var (
	createProject         = store.CreateProject
	listProjectsByOwner   = store.ListProjectsByOwner
	getProjectForOwner    = store.GetProjectForOwner
	deleteProjectForOwner = store.DeleteProjectForOwner
)

// ListProjectsHandler lists the caller's projects
// @Summary     List projects
// @Description Returns the projects owned by the caller, newest first
// @Tags        projects
// @Produce     json
// @Success     200 {array}  model.Project
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := handler.CurrentUser(c)
		if err != nil {
			return err
		}
		projects, err := listProjectsByOwner(c.Request().Context(), db, user.ID)
		if err != nil {
			return handler.InternalError(c, err, "Failed to list projects")
		}
		return c.JSON(http.StatusOK, projects)
	}
}

// CreateProjectHandler creates a project owned by the caller
// @Summary     Create project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body     api.ProjectRequest true "Project"
// @Success     201  {object} model.Project
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := handler.CurrentUser(c)
		if err != nil {
			return err
		}
		var req api.ProjectRequest
		if err := c.Bind(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, api.ValidationMessage(err))
		}

		p, err := createProject(c.Request().Context(), db, &model.Project{
			UserID:   user.ID,
			Name:     req.Name,
			Number:   req.Number,
			Location: req.Location,
		})
		if err != nil {
			return handler.InternalError(c, err, "Failed to create project")
		}
		return c.JSON(http.StatusCreated, p)
	}
}

// GetProjectHandler returns one of the caller's projects
// @Summary     Get project
// @Tags        projects
// @Produce     json
// @Param       projectId path     int true "Project ID"
// @Success     200       {object} model.Project
// @Failure     400       {object} api.ErrorResponse
// @Failure     404       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects/{projectId} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := handler.CurrentUser(c)
		if err != nil {
			return err
		}
		id, ok := handler.ParseID(c, "projectId")
		if !ok {
			return handler.Error(c, http.StatusBadRequest, "invalid project id")
		}
		p, err := getProjectForOwner(c.Request().Context(), db, id, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return handler.Error(c, http.StatusNotFound, msgNotFound)
			}
			return handler.InternalError(c, err, "Failed to load project")
		}
		return c.JSON(http.StatusOK, p)
	}
}

// DeleteProjectHandler deletes a project and all of its snags
// @Summary     Delete project
// @Description Deletes the project; its snags are removed in the same statement
// @Tags        projects
// @Param       projectId path int true "Project ID"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /projects/{projectId} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := handler.CurrentUser(c)
		if err != nil {
			return err
		}
		id, ok := handler.ParseID(c, "projectId")
		if !ok {
			return handler.Error(c, http.StatusBadRequest, "invalid project id")
		}
		if err := deleteProjectForOwner(c.Request().Context(), db, id, user.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return handler.Error(c, http.StatusNotFound, msgNotFound)
			}
			return handler.InternalError(c, err, "Failed to delete project")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
