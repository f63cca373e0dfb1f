package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-list-api/internal/domain/model"
	"task-list-api/internal/domain/usecase/goal"
	"task-list-api/pkg/msg"
)

type GoalController struct {
	api     *echo.Group
	useCase goal.UseCase
}

func NewGoalController(api *echo.Group, useCase goal.UseCase) *GoalController {
	return &GoalController{api: api, useCase: useCase}
}

// InitGoalRoutes initializes goal routes
func (controller *GoalController) InitGoalRoutes() {
	controller.api.GET("/goals", controller.FindAll)
	controller.api.GET("/goals/:id", controller.FindByID)
	controller.api.POST("/goals", controller.Create)
	controller.api.PUT("/goals/:id", controller.Update)
	controller.api.DELETE("/goals/:id", controller.Delete)
	controller.api.POST("/goals/:id/tasks", controller.AttachTasks)
	controller.api.GET("/goals/:id/tasks", controller.FindTasks)
}

// FindAll godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Param sort query string false "Title order" Enums(asc, desc)
// @Success 200 {array} model.GoalView
// @Router /goals [get]
func (controller *GoalController) FindAll(c echo.Context) error {
	goals, err := controller.useCase.FindAll(c.Request().Context(), model.SortOrder(c.QueryParam("sort")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewGoalViews(goals))
}

// FindByID godoc
// @Summary Get a goal
// @Tags goals
// @Produce json
// @Param id path int true "Goal id"
// @Success 200 {object} model.GoalResponse
// @Failure 400 {object} model.MessageResponse "Id is not an integer"
// @Failure 404 {object} model.MessageResponse "Goal not found"
// @Router /goals/{id} [get]
func (controller *GoalController) FindByID(c echo.Context) error {
	found, err := controller.useCase.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.GoalResponse{Goal: model.NewGoalView(*found)})
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body model.CreateGoalDTO true "Goal data"
// @Success 201 {object} model.GoalResponse
// @Failure 400 {object} model.DetailsResponse "Invalid data"
// @Router /goals [post]
func (controller *GoalController) Create(c echo.Context) error {
	var dto model.CreateGoalDTO
	if err := c.Bind(&dto); err != nil {
		dto = model.CreateGoalDTO{}
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.GoalResponse{Goal: model.NewGoalView(*created)})
}

// Update godoc
// @Summary Rename a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal id"
// @Param goal body model.UpdateGoalDTO true "Goal data"
// @Success 200 {object} model.GoalResponse
// @Failure 400 {object} model.DetailsResponse "Invalid id or data"
// @Failure 404 {object} model.MessageResponse "Goal not found"
// @Router /goals/{id} [put]
func (controller *GoalController) Update(c echo.Context) error {
	var dto model.UpdateGoalDTO
	if err := c.Bind(&dto); err != nil {
		dto = model.UpdateGoalDTO{}
	}

	updated, err := controller.useCase.Update(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.GoalResponse{Goal: model.NewGoalView(*updated)})
}

// Delete godoc
// @Summary Delete a goal
// @Description The goal's tasks are kept and detached from it
// @Tags goals
// @Produce json
// @Param id path int true "Goal id"
// @Success 200 {object} model.DetailsResponse
// @Failure 400 {object} model.MessageResponse "Id is not an integer"
// @Failure 404 {object} model.MessageResponse "Goal not found"
// @Router /goals/{id} [delete]
func (controller *GoalController) Delete(c echo.Context) error {
	deleted, err := controller.useCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.DetailsResponse{
		Details: msg.GetMessage("goal.deleted", deleted.ID, deleted.Title),
	})
}

// AttachTasks godoc
// @Summary Attach tasks to a goal
// @Description Every id is validated before any task is changed
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal id"
// @Param tasks body model.AttachTasksDTO true "Task ids"
// @Success 200 {object} model.GoalTaskIDsResponse
// @Failure 400 {object} model.MessageResponse "Invalid goal or task id"
// @Failure 404 {object} model.MessageResponse "Goal or task not found"
// @Router /goals/{id}/tasks [post]
func (controller *GoalController) AttachTasks(c echo.Context) error {
	var dto model.AttachTasksDTO
	if err := c.Bind(&dto); err != nil {
		dto = model.AttachTasksDTO{}
	}

	found, taskIDs, err := controller.useCase.AttachTasks(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.GoalTaskIDsResponse{ID: found.ID, TaskIDs: taskIDs})
}

// FindTasks godoc
// @Summary List a goal's tasks
// @Tags goals
// @Produce json
// @Param id path int true "Goal id"
// @Success 200 {object} model.GoalTasksResponse
// @Failure 400 {object} model.MessageResponse "Id is not an integer"
// @Failure 404 {object} model.MessageResponse "Goal not found"
// @Router /goals/{id}/tasks [get]
func (controller *GoalController) FindTasks(c echo.Context) error {
	found, err := controller.useCase.FindTasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.GoalTasksResponse{
		ID:    found.ID,
		Title: found.Title,
		Tasks: model.NewTaskViews(found.Tasks),
	})
}
