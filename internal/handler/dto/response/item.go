package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	OwnerID     uuid.UUID           `json:"ownerId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	LastBooking *BookingRefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingRefResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse   `json:"comments"`
}

type ItemSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, rm)
	if resp.Comments == nil {
		resp.Comments = []CommentResponse{}
	}
	return &resp
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromItemView(rm)
	}
	return resps
}

func FromItemSummary(rm *queries.ItemSummary) *ItemSummaryResponse {
	var resp ItemSummaryResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromItemSummaries(rms []*queries.ItemSummary) []*ItemSummaryResponse {
	resps := make([]*ItemSummaryResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromItemSummary(rm)
	}
	return resps
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
