package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SinaFr/todolist-backend/internal/common"
)

func (s *Server) listTasksForAccount(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid account id")
	}

	tasks, err := s.tasks.ListForAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.String(http.StatusNotFound, "Account not found.")
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, tasksToDTO(tasks))
}

func (s *Server) getTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid task id")
	}

	task, err := s.tasks.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, taskToDTO(task))
}

func (s *Server) createTask(c echo.Context) error {
	var dto taskDTO
	if err := c.Bind(&dto); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	principal := principalFromContext(c)

	task, err := s.tasks.Create(c.Request().Context(), principal.Username, dto.toModel())
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.NoContent(http.StatusUnauthorized)
		}
		return s.serverError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/tasks/%d", task.ID))
	return c.JSON(http.StatusCreated, taskToDTO(task))
}

func (s *Server) updateTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid task id")
	}

	var dto taskDTO
	if err := c.Bind(&dto); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	task, err := s.tasks.Update(c.Request().Context(), id, dto.toModel())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return s.serverError(c, err)
	}

	return c.JSON(http.StatusOK, taskToDTO(task))
}

func (s *Server) deleteTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid task id")
	}

	if err := s.tasks.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return s.serverError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
