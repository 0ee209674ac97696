package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}

	token, err := s.auth.SignUp(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"code":    "USERNAME_TAKEN",
				"message": "username already exists",
			})
			return
		}
		s.internalError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"accessToken": token})
}

func (s *Server) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}

	token, err := s.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "invalid username or password",
			})
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

func (s *Server) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title is required")
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), currentUserID(c), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, common.ErrorEmptyTaskTitle) {
			badRequest(c, "task title must not be empty")
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (s *Server) listTasks(c *gin.Context) {
	var filter models.TaskFilter

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			badRequest(c, "invalid task status")
			return
		}
		filter.Status = status
	}
	filter.Search = c.Query("search")

	result, err := s.tasks.List(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if result == nil {
		result = []*models.Task{}
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) getTask(c *gin.Context) {
	task, err := s.tasks.GetByID(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		s.taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) updateTaskStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		badRequest(c, "invalid task status")
		return
	}

	task, err := s.tasks.UpdateStatus(c.Request.Context(), currentUserID(c), c.Param("id"), status)
	if err != nil {
		s.taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.tasks.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.taskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// taskError maps task-store failures: missing and not-owned are the same
// 404; anything else is a server error.
func (s *Server) taskError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "NOT_FOUND",
			"message": "task not found",
		})
		return
	}
	s.internalError(c, err)
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "internal error",
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    "INVALID_INPUT",
		"message": msg,
	})
}
