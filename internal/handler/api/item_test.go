//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"lendhub/internal/domain/comment"
	"lendhub/internal/handler/api"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/pkg/page"
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

type ItemHandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockItemCommands *commandsmock.MockItemCommands
	mockComments     *commandsmock.MockCommentCommands
	mockQueries      *queriesmock.MockItemQueries
	router           *gin.Engine
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockItemCommands = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.mockComments = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)

	h := api.NewItemHandler(s.mockItemCommands, s.mockComments, s.mockQueries)
	identity := middleware.NewIdentityMiddleware()

	s.router = gin.New()
	items := s.router.Group("/items")
	items.Use(identity.RequireSharerID())
	items.POST("", h.CreateItem)
	items.GET("", h.ListOwnItems)
	items.GET("/search", h.SearchItems)
	items.GET("/:itemId", h.GetItem)
	items.PATCH("/:itemId", h.UpdateItem)
	items.POST("/:itemId/comment", h.CreateComment)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (s *ItemHandlerTestSuite) TestCreateItem() {
	sharer := uuid.New()
	ib := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.OwnerID = sharer })

	s.Run("created item is returned with 201", func() {
		s.mockItemCommands.EXPECT().
			Create(gomock.Any(), sharer, ib.Name, ib.Description, true).
			Return(ib.BuildSummary(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items", ib.BuildCreateRequestDTO(), sharer)

		s.Equal(http.StatusCreated, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(ib.Name, resp["name"])
	})

	s.Run("unknown owner maps to 404", func() {
		s.mockItemCommands.EXPECT().
			Create(gomock.Any(), sharer, ib.Name, ib.Description, true).
			Return(nil, commands.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items", ib.BuildCreateRequestDTO(), sharer)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("missing availability flag maps to 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items",
			map[string]any{"name": "Drill", "description": "A drill"}, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ItemHandlerTestSuite) TestUpdateItem() {
	sharer := uuid.New()
	itemID := uuid.New()

	s.Run("patched item is returned", func() {
		summary := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
			b.ID = itemID
			b.OwnerID = sharer
			b.Available = false
		}).BuildSummary()
		s.mockItemCommands.EXPECT().
			Update(gomock.Any(), itemID, sharer, gomock.Any()).
			Return(summary, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/"+itemID.String(),
			map[string]any{"available": false}, sharer)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(false, resp["available"])
	})

	s.Run("non-owner update looks like a missing item", func() {
		s.mockItemCommands.EXPECT().
			Update(gomock.Any(), itemID, sharer, gomock.Any()).
			Return(nil, commands.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/"+itemID.String(),
			map[string]any{"name": "Stolen"}, sharer)

		s.Equal(http.StatusNotFound, w.Code)
		s.JSONEq(`{"error": "Item not found"}`, w.Body.String())
	})
}

func (s *ItemHandlerTestSuite) TestGetItem() {
	sharer := uuid.New()

	s.Run("item view with annotations is returned", func() {
		ib := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.OwnerID = sharer })
		view := ib.BuildView()
		view.LastBooking = builder.NewBookingBuilder().BuildRef()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), view.ID, sharer).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+view.ID.String(), nil, sharer)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Contains(resp, "lastBooking")
		s.NotContains(resp, "nextBooking")
	})

	s.Run("unknown item maps to 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id, sharer).
			Return(nil, queries.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+id.String(), nil, sharer)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ItemHandlerTestSuite) TestListOwnItems() {
	sharer := uuid.New()

	s.mockQueries.EXPECT().
		ListByOwner(gomock.Any(), sharer, page.Spec{Offset: 0, Limit: 20}).
		Return([]*queries.ItemView{}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, sharer)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *ItemHandlerTestSuite) TestSearchItems() {
	sharer := uuid.New()

	s.Run("matching items are returned", func() {
		expected := []*queries.ItemSummary{builder.NewItemBuilder().BuildSummary()}
		s.mockQueries.EXPECT().
			Search(gomock.Any(), "drill", page.Spec{Offset: 0, Limit: 20}).
			Return(expected, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search?text=drill", nil, sharer)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("blank text returns an empty page", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), "", gomock.Any()).
			Return([]*queries.ItemSummary{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search", nil, sharer)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})
}

func (s *ItemHandlerTestSuite) TestCreateComment() {
	sharer := uuid.New()
	itemID := uuid.New()

	s.Run("created comment is returned with 201", func() {
		view := &queries.CommentView{ID: uuid.New(), ItemID: itemID, AuthorID: sharer, AuthorName: "Test User", Text: "great drill"}
		s.mockComments.EXPECT().
			Create(gomock.Any(), itemID, sharer, "great drill").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment",
			map[string]any{"text": "great drill"}, sharer)

		s.Equal(http.StatusCreated, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("great drill", resp["text"])
		s.Equal("Test User", resp["authorName"])
	})

	s.Run("commenting without a finished rental maps to 400", func() {
		s.mockComments.EXPECT().
			Create(gomock.Any(), itemID, sharer, "nice").
			Return(nil, comment.ErrBookingNotCompleted)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment",
			map[string]any{"text": "nice"}, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
		s.JSONEq(`{"error": "No completed booking qualifies for a comment"}`, w.Body.String())
	})

	s.Run("commenting with no history maps to the same 400", func() {
		s.mockComments.EXPECT().
			Create(gomock.Any(), itemID, sharer, "nice").
			Return(nil, comment.ErrNoBookingHistory)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment",
			map[string]any{"text": "nice"}, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing text maps to 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment",
			map[string]any{}, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
