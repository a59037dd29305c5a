//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"lendhub/internal/handler/api"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/pkg/errs"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	router       *gin.Engine
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	identity := middleware.NewIdentityMiddleware()

	s.router = gin.New()
	bookings := s.router.Group("/bookings")
	bookings.Use(identity.RequireSharerID())
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookerBookings)
	bookings.GET("/owner", h.ListOwnerBookings)
	bookings.GET("/:bookingId", h.GetBooking)
	bookings.PATCH("/:bookingId", h.DecideBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestSharerHeader() {
	s.Run("missing header is rejected before the handler runs", func() {
		w := httptest.PerformAnonymousRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)

		s.Equal(http.StatusBadRequest, w.Code)
		s.JSONEq(`{"error": "X-Sharer-User-Id header is required"}`, w.Body.String())
	})

	s.Run("malformed header is rejected", func() {
		req := nethttptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(middleware.SharerHeader, "not-a-uuid")
		w := nethttptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
		s.JSONEq(`{"error": "Invalid X-Sharer-User-Id header"}`, w.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	sharer := uuid.New()
	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()

	s.Run("created booking is returned with 201", func() {
		view := bb.BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), bb.ItemID, sharer, gomock.Any(), gomock.Any()).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, sharer)

		s.Equal(http.StatusCreated, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(view.ID.String(), resp["id"])
		s.Equal("WAITING", resp["status"])
	})

	s.Run("unknown item maps to 404", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), bb.ItemID, sharer, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, sharer)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("unavailable item maps to 400", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), bb.ItemID, sharer, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrItemUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed body maps to 400 without touching the use case", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			map[string]any{"item_id": "not-a-uuid"}, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	sharer := uuid.New()
	bookingID := uuid.New()

	s.Run("approval returns the updated booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
		}).BuildView()
		view.Status = "APPROVED"
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), bookingID, sharer, true).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=true", nil, sharer)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("APPROVED", resp["status"])
	})

	s.Run("missing approved parameter maps to 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String(), nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("second decision maps to 400", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), bookingID, sharer, false).
			Return(nil, commands.ErrAlreadyDecided)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=false", nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("non-owner maps to 400", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), bookingID, sharer, true).
			Return(nil, commands.ErrNotOwner)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=true", nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("booker deciding own booking maps to 404", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), bookingID, sharer, true).
			Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+bookingID.String()+"?approved=true", nil, sharer)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	sharer := uuid.New()

	s.Run("state defaults to ALL", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), sharer, "ALL", page.Spec{Offset: 0, Limit: 20}).
			Return([]*queries.BookingView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, sharer)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})

	s.Run("unsupported state echoes the raw value", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), sharer, "UNSUPPORTED_STATUS", gomock.Any()).
			Return(nil, errs.Mark(errs.New("unknown state filter"), queries.ErrUnsupportedState))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?state=UNSUPPORTED_STATUS", nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
		s.JSONEq(`{"error": "Unknown state: UNSUPPORTED_STATUS"}`, w.Body.String())
	})

	s.Run("owner listing delegates with the owner scope", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().
			ListForOwner(gomock.Any(), sharer, "PAST", page.Spec{Offset: 1, Limit: 5}).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/owner?state=PAST&from=1&size=5", nil, sharer)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("negative offset maps to 400 without touching the query", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?from=-1&size=10", nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("zero size maps to 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?from=0&size=0", nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown user maps to 404", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), sharer, "ALL", gomock.Any()).
			Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, sharer)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	sharer := uuid.New()

	s.Run("participant gets the booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().
			GetForParticipant(gomock.Any(), view.ID, sharer).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+view.ID.String(), nil, sharer)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("outsider gets 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetForParticipant(gomock.Any(), id, sharer).
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+id.String(), nil, sharer)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed booking id maps to 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/not-a-uuid", nil, sharer)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
