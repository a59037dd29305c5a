//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"lendhub/internal/handler/api"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"
	"lendhub/tests/common/httptest"
	commandsmock "lendhub/tests/mock/commands"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	router       *gin.Engine
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router = gin.New()
	users := s.router.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreateUser() {
	ub := builder.NewUserBuilder()

	s.Run("created user is returned with 201", func() {
		view := ub.BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), ub.Name, ub.Email).
			Return(view, nil)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodPost, "/users", ub.BuildCreateRequestDTO())

		s.Equal(http.StatusCreated, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(view.ID.String(), resp["id"])
		s.Equal(ub.Email, resp["email"])
	})

	s.Run("duplicate email maps to 409", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), ub.Name, ub.Email).
			Return(nil, commands.ErrEmailConflict)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodPost, "/users", ub.BuildCreateRequestDTO())

		s.Equal(http.StatusConflict, w.Code)
		s.JSONEq(`{"error": "Email address already registered"}`, w.Body.String())
	})

	s.Run("missing email maps to 400", func() {
		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "No Email"})

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *UserHandlerTestSuite) TestUpdateUser() {
	id := uuid.New()

	s.Run("patched user is returned", func() {
		view := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
			u.ID = id
			u.Email = "new@example.com"
		}).BuildView()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			Return(view, nil)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(),
			map[string]any{"email": "new@example.com"})

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("new@example.com", resp["email"])
	})

	s.Run("unknown user maps to 404", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrUserNotFound)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(),
			map[string]any{"name": "New Name"})

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("email taken by another user maps to 409", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrEmailConflict)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(),
			map[string]any{"email": "taken@example.com"})

		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *UserHandlerTestSuite) TestGetUser() {
	s.Run("existing user is returned", func() {
		view := builder.NewUserBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodGet, "/users/"+view.ID.String(), nil)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown user maps to 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil)

		s.Equal(http.StatusNotFound, w.Code)
		s.JSONEq(`{"error": "User not found"}`, w.Body.String())
	})

	s.Run("malformed id maps to 400", func() {
		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodGet, "/users/not-a-uuid", nil)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *UserHandlerTestSuite) TestListUsers() {
	views := []*queries.UserView{builder.NewUserBuilder().BuildView(), builder.NewUserBuilder().BuildView()}
	s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

	w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodGet, "/users", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 2)
}

func (s *UserHandlerTestSuite) TestDeleteUser() {
	s.Run("deletion returns 204 with no body", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodDelete, "/users/"+id.String(), nil)

		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(w.Body.String())
	})

	s.Run("unknown user maps to 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrUserNotFound)

		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodDelete, "/users/"+id.String(), nil)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
