package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-list-api/internal/domain/model"
	"task-list-api/internal/domain/usecase/task"
	"task-list-api/pkg/msg"
)

type TaskController struct {
	api     *echo.Group
	useCase task.UseCase
}

func NewTaskController(api *echo.Group, useCase task.UseCase) *TaskController {
	return &TaskController{api: api, useCase: useCase}
}

// InitTaskRoutes initializes task routes
func (controller *TaskController) InitTaskRoutes() {
	controller.api.GET("/tasks", controller.FindAll)
	controller.api.GET("/tasks/:id", controller.FindByID)
	controller.api.POST("/tasks", controller.Create)
	controller.api.PUT("/tasks/:id", controller.Update)
	controller.api.PATCH("/tasks/:id/:mark", controller.MarkCompletion)
	controller.api.DELETE("/tasks/:id", controller.Delete)
}

// FindAll godoc
// @Summary List tasks
// @Description Retrieve every task, optionally sorted by title
// @Tags tasks
// @Produce json
// @Param sort query string false "Title order" Enums(asc, desc)
// @Success 200 {array} model.TaskView
// @Failure 500 {object} model.MessageResponse
// @Router /tasks [get]
func (controller *TaskController) FindAll(c echo.Context) error {
	tasks, err := controller.useCase.FindAll(c.Request().Context(), model.SortOrder(c.QueryParam("sort")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTaskViews(tasks))
}

// FindByID godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} model.TaskResponse
// @Failure 400 {object} model.MessageResponse "Id is not an integer"
// @Failure 404 {object} model.MessageResponse "Task not found"
// @Router /tasks/{id} [get]
func (controller *TaskController) FindByID(c echo.Context) error {
	found, err := controller.useCase.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.TaskResponse{Task: model.NewTaskView(*found)})
}

// Create godoc
// @Summary Create a task
// @Description title and description are required, completed_at is optional
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body model.CreateTaskDTO true "Task data"
// @Success 201 {object} model.TaskResponse
// @Failure 400 {object} model.DetailsResponse "Invalid data"
// @Router /tasks [post]
func (controller *TaskController) Create(c echo.Context) error {
	var dto model.CreateTaskDTO
	if err := c.Bind(&dto); err != nil {
		dto = model.CreateTaskDTO{}
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.TaskResponse{Task: model.NewTaskView(*created)})
}

// Update godoc
// @Summary Replace a task's title and description
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param task body model.UpdateTaskDTO true "Task data"
// @Success 200 {object} model.TaskResponse
// @Failure 400 {object} model.DetailsResponse "Invalid id or data"
// @Failure 404 {object} model.MessageResponse "Task not found"
// @Router /tasks/{id} [put]
func (controller *TaskController) Update(c echo.Context) error {
	// An unreadable body is treated as an empty one so that id errors take
	// precedence over payload errors.
	var dto model.UpdateTaskDTO
	if err := c.Bind(&dto); err != nil {
		dto = model.UpdateTaskDTO{}
	}

	updated, err := controller.useCase.Update(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.TaskResponse{Task: model.NewTaskView(*updated)})
}

// MarkCompletion godoc
// @Summary Mark a task complete or incomplete
// @Description mark_complete sets the completion date to today and notifies the team channel
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Param mark path string true "Completion mark" Enums(mark_complete, mark_incomplete)
// @Success 200 {object} model.TaskResponse
// @Failure 400 {object} model.MessageResponse "Id is not an integer"
// @Failure 404 {object} model.MessageResponse "Task not found"
// @Router /tasks/{id}/{mark} [patch]
func (controller *TaskController) MarkCompletion(c echo.Context) error {
	updated, err := controller.useCase.MarkCompletion(c.Request().Context(), c.Param("id"), model.CompletionMark(c.Param("mark")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.TaskResponse{Task: model.NewTaskView(*updated)})
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} model.DetailsResponse
// @Failure 400 {object} model.MessageResponse "Id is not an integer"
// @Failure 404 {object} model.MessageResponse "Task not found"
// @Router /tasks/{id} [delete]
func (controller *TaskController) Delete(c echo.Context) error {
	deleted, err := controller.useCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.DetailsResponse{
		Details: msg.GetMessage("task.deleted", deleted.ID, deleted.Title),
	})
}
