package http

import (
	"net/http"

	"registry/internal/core/application/usecases/commands"
	"registry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserServer exposes the user use cases over HTTP.
type UserServer struct {
	createUserHandler commands.CreateUserCommandHandler
	deleteUserHandler commands.DeleteUserCommandHandler

	listUsersHandler queries.ListUsersQueryHandler
	getUserHandler   queries.GetUserQueryHandler

	logger *zap.Logger
}

// NewUserServer wires the user command and query handlers into an HTTP server.
func NewUserServer(
	createUserHandler commands.CreateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	listUsersHandler queries.ListUsersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	logger *zap.Logger,
) *UserServer {
	return &UserServer{
		createUserHandler: createUserHandler,
		deleteUserHandler: deleteUserHandler,
		listUsersHandler:  listUsersHandler,
		getUserHandler:    getUserHandler,
		logger:            logger.With(zap.String("component", "user_server")),
	}
}

// Register mounts the user routes on e.
func (s *UserServer) Register(e *echo.Echo) {
	e.GET("/users", s.ListUsers)
	e.GET("/users/:id", s.GetUser)
	e.POST("/users", s.CreateUser)
	e.DELETE("/users/:id", s.DeleteUser)
}

func (s *UserServer) ListUsers(c echo.Context) error {
	users, err := s.listUsersHandler.Handle(c.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return writeError(c, s.logger, err, msgUserNotFound, msgCreateUserInvalid)
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, response)
}

func (s *UserServer) GetUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgUserNotFound)
	}

	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, msgUserNotFound)
	}

	u, err := s.getUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err, msgUserNotFound, msgCreateUserInvalid)
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

func (s *UserServer) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, msgCreateUserInvalid)
	}

	cmd, err := commands.NewCreateUserCommand(req.Email, req.Name)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, msgCreateUserInvalid)
	}

	created, err := s.createUserHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err, msgUserNotFound, msgCreateUserInvalid)
	}

	s.logger.Info("user created", zap.String("user_id", created.ID().String()))
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

func (s *UserServer) DeleteUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgUserNotFound)
	}

	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, msgUserNotFound)
	}

	if err = s.deleteUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err, msgUserNotFound, msgCreateUserInvalid)
	}
	return c.NoContent(http.StatusNoContent)
}
