package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventura/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestLoginSendsCredentialsAsQueryParams(t *testing.T) {
	var gotMethod, gotEmail, gotPassword string
	var gotBody int64

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotEmail = r.URL.Query().Get("email")
		gotPassword = r.URL.Query().Get("password")
		gotBody = r.ContentLength
		json.NewEncoder(w).Encode(models.Account{Email: "a@b.c", Role: "user"})
	})

	account, err := client.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotEmail != "a@b.c" || gotPassword != "pw" {
		t.Errorf("credentials not sent as query params: %s/%s", gotEmail, gotPassword)
	}
	if gotBody > 0 {
		t.Errorf("login must be bodyless, got %d bytes", gotBody)
	}
	if account.Email != "a@b.c" {
		t.Errorf("account = %+v", account)
	}
}

func TestCreateBookingSendsFormEncoded(t *testing.T) {
	var gotContentType, gotPlanner, gotEventType string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotPlanner = r.PostFormValue("plannerId")
		gotEventType = r.PostFormValue("eventType")
		json.NewEncoder(w).Encode(models.Booking{ID: 1})
	})

	_, err := client.CreateBooking(context.Background(), models.BookingRequest{
		Name: "Asha", Email: "a@b.c", EventType: "Wedding", PlannerID: 7,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %s", gotContentType)
	}
	if gotPlanner != "7" || gotEventType != "Wedding" {
		t.Errorf("form fields: plannerId=%s eventType=%s", gotPlanner, gotEventType)
	}
}

func TestRecordPaymentTargetsPaymentPath(t *testing.T) {
	var gotPath, gotAmount, gotMethod, gotTx string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAmount = r.URL.Query().Get("amount")
		gotMethod = r.URL.Query().Get("method")
		gotTx = r.URL.Query().Get("txId")
		json.NewEncoder(w).Encode(models.Booking{ID: 42, PaymentStatus: "PARTIALLY_PAID"})
	})

	booking, err := client.RecordPayment(context.Background(), 42, 10000, "RAZORPAY", "pay_1")
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if gotPath != "/booking/payment/42" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAmount != "10000" || gotMethod != "RAZORPAY" || gotTx != "pay_1" {
		t.Errorf("query: amount=%s method=%s txId=%s", gotAmount, gotMethod, gotTx)
	}
	if booking.PaymentStatus != "PARTIALLY_PAID" {
		t.Errorf("booking = %+v", booking)
	}
}

func TestReplyEnquirySendsJSONBody(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		json.NewEncoder(w).Encode(models.Enquiry{ID: 5, Status: models.EnquiryReplied})
	})

	enquiry, err := client.ReplyEnquiry(context.Background(), 5, "Yes, we cover Pune")
	if err != nil {
		t.Fatalf("ReplyEnquiry: %v", err)
	}
	if gotPath != "/enquiries/5/reply" {
		t.Errorf("path = %s", gotPath)
	}
	if gotPayload["reply"] != "Yes, we cover Pune" {
		t.Errorf("payload = %+v", gotPayload)
	}
	if !enquiry.Answered() {
		t.Errorf("enquiry should come back Replied")
	}
}

func TestRecommendReturnsPlainText(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Try Asha Menon for weddings in Mumbai."))
	})

	text, err := client.Recommend(context.Background(), models.RecommendRequest{Criteria: "wedding mumbai"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if text != "Try Asha Menon for weddings in Mumbai." {
		t.Errorf("text = %q", text)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "booking not found", http.StatusNotFound)
	})

	_, err := client.Bookings(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsAPIError(err) {
		t.Fatalf("want APIError, got %T: %v", err, err)
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := client.Bookings(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if IsAPIError(err) {
		t.Fatalf("network failure must not be an APIError")
	}
}
