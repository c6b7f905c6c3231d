package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/model"
)

func testimonialScanFunc(id string, approved bool, now time.Time) func(dest ...any) error {
	siteID := "test-site-1"
	return func(dest ...any) error {
		*(dest[0].(*string)) = id
		*(dest[1].(**string)) = &siteID
		*(dest[2].(*string)) = "Pat Seller"
		*(dest[3].(**string)) = nil // company
		*(dest[4].(*string)) = "Sold in a week."
		*(dest[5].(*int)) = 5
		*(dest[6].(*bool)) = approved
		*(dest[7].(*time.Time)) = now
		*(dest[8].(*time.Time)) = now
		return nil
	}
}

func TestTestimonialService_Create_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewTestimonialService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	siteID := "test-site-1"
	tm := &model.Testimonial{SiteID: &siteID, AuthorName: "Pat Seller", Quote: "Sold in a week.", Rating: 5}
	err := svc.Create(ctx, tm)
	require.NoError(t, err)
	assert.NotEmpty(t, tm.ID)
	db.AssertExpectations(t)
}

func TestTestimonialService_List_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewTestimonialService(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Microsecond)
	rows := newMockRows(testimonialScanFunc("test-testimonial-1", true, now))
	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	items, hasMore, err := svc.List(ctx, true, request.ListParams{Limit: 50})
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, items, 1)
	assert.True(t, items[0].Approved)
	db.AssertExpectations(t)
}

func TestTestimonialService_SetApproved_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewTestimonialService(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Microsecond)
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
	row := &mockRow{scanFunc: testimonialScanFunc("test-testimonial-1", true, now)}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(row)

	tm, err := svc.SetApproved(ctx, "test-testimonial-1", true)
	require.NoError(t, err)
	assert.True(t, tm.Approved)
	db.AssertExpectations(t)
}

func TestTestimonialService_SetApproved_NotFound(t *testing.T) {
	db := &mockDB{}
	svc := NewTestimonialService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	tm, err := svc.SetApproved(ctx, "nonexistent", true)
	require.Error(t, err)
	assert.Nil(t, tm)
	assert.Contains(t, err.Error(), "not found")
}

func TestTestimonialService_Delete_DBError(t *testing.T) {
	db := &mockDB{}
	svc := NewTestimonialService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, errors.New("db error"))

	err := svc.Delete(ctx, "test-testimonial-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete testimonial")
}
