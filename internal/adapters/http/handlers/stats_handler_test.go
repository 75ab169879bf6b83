package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"iclug-backend/internal/adapters/persistence/models"
	"iclug-backend/internal/core/services"
)

func TestStatsMatrixEndpoint(t *testing.T) {
	memberRepo := &fakeMemberRepo{members: []*models.Member{
		{ID: "2", FullName: "Bob", Active: true},
		{ID: "1", FullName: "Ana", Active: true},
	}}
	paymentRepo := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "p1", MemberID: "1", Year: 2024, Month: 3, Amount: 10, Currency: "EUR"},
		{ID: "p2", MemberID: "1", Year: 2024, Month: 3, Amount: 5, Currency: "EUR"},
		{ID: "p3", MemberID: "2", Year: 2023, Month: 1, Amount: 99, Currency: "EUR"},
	}}
	app := newTestApp(memberRepo, paymentRepo, &fakeDonationRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/stats/matrix?year=2024", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var rows []services.MatrixRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].FullName != "Ana" || rows[1].FullName != "Bob" {
		t.Fatalf("rows not sorted by name: %v, %v", rows[0].FullName, rows[1].FullName)
	}
	if rows[0].Months[2] != 15.0 || rows[0].Total != 15.0 {
		t.Fatalf("expected Ana months[2]=15 total=15, got %+v", rows[0])
	}
	// Bob's only payment is from another year
	if rows[1].Total != 0.0 {
		t.Fatalf("expected Bob total 0, got %v", rows[1].Total)
	}
}

func TestStatsMatrixRequiresYear(t *testing.T) {
	app := newTestApp(&fakeMemberRepo{}, &fakePaymentRepo{}, &fakeDonationRepo{})

	for _, target := range []string{"/stats/matrix", "/stats/matrix?year=abc"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != 422 {
			t.Fatalf("%s: expected 422, got %d", target, resp.StatusCode)
		}
	}
}

func TestStatsMatrixFieldNames(t *testing.T) {
	memberRepo := &fakeMemberRepo{members: []*models.Member{
		{ID: "1", FullName: "Ana", Active: true},
	}}
	app := newTestApp(memberRepo, &fakePaymentRepo{}, &fakeDonationRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/stats/matrix?year=2024", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	for _, field := range []string{"id", "full_name", "months", "total"} {
		if _, ok := raw[0][field]; !ok {
			t.Fatalf("matrix row missing field %q", field)
		}
	}

	var months []float64
	if err := json.Unmarshal(raw[0]["months"], &months); err != nil {
		t.Fatalf("months not an array: %v", err)
	}
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
}

func TestStatsSummaryEndpoint(t *testing.T) {
	memberRepo := &fakeMemberRepo{members: []*models.Member{
		{ID: "1", FullName: "Ana"}, {ID: "2", FullName: "Bob"},
		{ID: "3", FullName: "Cera"}, {ID: "4", FullName: "Dino"},
		{ID: "5", FullName: "Ema"},
	}}
	paymentRepo := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "p1", MemberID: "1", Year: 2024, Month: 1, Amount: 20},
		{ID: "p2", MemberID: "2", Year: 2024, Month: 2, Amount: 30},
		{ID: "p3", MemberID: "2", Year: 2020, Month: 2, Amount: 500},
	}}
	donationRepo := &fakeDonationRepo{donations: []*models.Donation{
		{ID: "d1", Name: "Anon", Amount: 100},
	}}
	app := newTestApp(memberRepo, paymentRepo, donationRepo)

	resp, err := app.Test(httptest.NewRequest("GET", "/stats/summary?year=2024", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var got map[string]float64
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode body %s: %v", body, err)
	}

	if got["members"] != 5 {
		t.Fatalf("expected members 5, got %v", got["members"])
	}
	if got["payments_year"] != 50.0 {
		t.Fatalf("expected payments_year 50, got %v", got["payments_year"])
	}
	if got["donations_total"] != 100.0 {
		t.Fatalf("expected donations_total 100, got %v", got["donations_total"])
	}
}

func TestStatsSummaryRequiresYear(t *testing.T) {
	app := newTestApp(&fakeMemberRepo{}, &fakePaymentRepo{}, &fakeDonationRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/stats/summary", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 422 {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
