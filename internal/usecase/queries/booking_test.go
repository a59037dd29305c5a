//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/page"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBookings *queriesmock.MockBookingReadStore
	mockUsers    *queriesmock.MockUserReadStore
	mockItems    *queriesmock.MockItemReadStore
	clock        *clock.MockClock
	queries      queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.mockItems = queriesmock.NewMockItemReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewBookingQueries(s.mockBookings, s.mockUsers, s.mockItems, s.clock)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetForParticipant() {
	ctx := context.Background()
	bb := builder.NewBookingBuilder()
	view := bb.BuildView()
	owner := uuid.New()
	itemSummary := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.ID = view.ItemID
		b.OwnerID = owner
	}).BuildSummary()

	s.Run("booker sees the booking", func() {
		s.mockUsers.EXPECT().Exists(gomock.Any(), view.BookerID).Return(true, nil)
		s.mockBookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.mockItems.EXPECT().FindByID(gomock.Any(), view.ItemID).Return(itemSummary, nil)

		got, err := s.queries.GetForParticipant(ctx, view.ID, view.BookerID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("item owner sees the booking", func() {
		s.mockUsers.EXPECT().Exists(gomock.Any(), owner).Return(true, nil)
		s.mockBookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.mockItems.EXPECT().FindByID(gomock.Any(), view.ItemID).Return(itemSummary, nil)

		got, err := s.queries.GetForParticipant(ctx, view.ID, owner)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("outsider gets the same not-found as a missing booking", func() {
		stranger := uuid.New()
		s.mockUsers.EXPECT().Exists(gomock.Any(), stranger).Return(true, nil)
		s.mockBookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.mockItems.EXPECT().FindByID(gomock.Any(), view.ItemID).Return(itemSummary, nil)

		_, err := s.queries.GetForParticipant(ctx, view.ID, stranger)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})

	s.Run("unknown viewer", func() {
		stranger := uuid.New()
		s.mockUsers.EXPECT().Exists(gomock.Any(), stranger).Return(false, nil)

		_, err := s.queries.GetForParticipant(ctx, view.ID, stranger)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListForBooker() {
	ctx := context.Background()
	bookerID := uuid.New()
	p := page.Spec{Offset: 0, Limit: 20}

	filters := []struct {
		raw    string
		expect booking.StateFilter
	}{
		{raw: "ALL", expect: booking.FilterAll},
		{raw: "current", expect: booking.FilterCurrent},
		{raw: "Past", expect: booking.FilterPast},
		{raw: "future", expect: booking.FilterFuture},
		{raw: "waiting", expect: booking.FilterWaiting},
		{raw: "rejected", expect: booking.FilterRejected},
	}
	for _, tc := range filters {
		s.Run("filter "+tc.raw+" resolves case-insensitively", func() {
			s.mockUsers.EXPECT().Exists(gomock.Any(), bookerID).Return(true, nil)
			s.mockBookings.EXPECT().
				ListByBooker(gomock.Any(), bookerID, tc.expect, s.clock.Now(), p).
				Return([]*queries.BookingView{}, nil)

			views, err := s.queries.ListForBooker(ctx, bookerID, tc.raw, p)
			s.NoError(err)
			s.Empty(views)
		})
	}

	s.Run("unsupported filter", func() {
		s.mockUsers.EXPECT().Exists(gomock.Any(), bookerID).Return(true, nil)

		_, err := s.queries.ListForBooker(ctx, bookerID, "UNSUPPORTED_STATUS", p)
		s.ErrorIs(err, queries.ErrUnsupportedState)
	})

	s.Run("status value APPROVED is not a list filter", func() {
		s.mockUsers.EXPECT().Exists(gomock.Any(), bookerID).Return(true, nil)

		_, err := s.queries.ListForBooker(ctx, bookerID, "APPROVED", p)
		s.ErrorIs(err, queries.ErrUnsupportedState)
	})

	s.Run("user check precedes filter parsing", func() {
		s.mockUsers.EXPECT().Exists(gomock.Any(), bookerID).Return(false, nil)

		_, err := s.queries.ListForBooker(ctx, bookerID, "UNSUPPORTED_STATUS", p)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListForOwner() {
	ctx := context.Background()
	ownerID := uuid.New()
	p := page.Spec{Offset: 2, Limit: 2}

	s.Run("delegates with the parsed filter and one now snapshot", func() {
		expected := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockUsers.EXPECT().Exists(gomock.Any(), ownerID).Return(true, nil)
		s.mockBookings.EXPECT().
			ListByOwner(gomock.Any(), ownerID, booking.FilterCurrent, s.clock.Now(), p).
			Return(expected, nil)

		views, err := s.queries.ListForOwner(ctx, ownerID, "CURRENT", p)
		s.NoError(err)
		s.Equal(expected, views)
	})
}
