package handlers

import (
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	body := `{"propertyId":"` + primitive.NewObjectID().Hex() + `","rating":7,"comment":"great"}`
	c, _ := newTestContext(t, http.MethodPost, "/reviews", body)
	c.Set("user_id", primitive.NewObjectID())
	c.Set("user_email", "a@b.com")

	rc := &ReviewController{}
	if err := rc.CreateReview(c); err == nil {
		t.Fatalf("CreateReview accepted rating 7, want validation error")
	}
}

func TestCreateReviewRejectsMalformedPropertyID(t *testing.T) {
	body := `{"propertyId":"not-an-id","rating":4,"comment":"great"}`
	c, rec := newTestContext(t, http.MethodPost, "/reviews", body)
	c.Set("user_id", primitive.NewObjectID())
	c.Set("user_email", "a@b.com")

	rc := &ReviewController{}
	if err := rc.CreateReview(c); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateReviewRejectsMalformedID(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPut, "/reviews/xyz", "")
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	c.Set("user_id", primitive.NewObjectID())

	rc := &ReviewController{}
	if err := rc.UpdateReview(c); err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteFavoriteRejectsMalformedID(t *testing.T) {
	c, rec := newTestContext(t, http.MethodDelete, "/favorites/xyz", "")
	c.SetParamNames("propertyId")
	c.SetParamValues("xyz")
	c.Set("user_id", primitive.NewObjectID())

	fc := &FavoriteController{}
	if err := fc.DeleteFavorite(c); err != nil {
		t.Fatalf("DeleteFavorite: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
