package handlers

import (
	"context"

	"iclug-backend/internal/adapters/persistence/models"
	"iclug-backend/internal/adapters/persistence/repositories"
	"iclug-backend/internal/core/domain"
	"iclug-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// In-memory repository fakes. Like the real storage layer they assign
// the opaque string identity on create.

type fakeMemberRepo struct {
	members []*models.Member
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	f.members = append(f.members, member)
	return nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id string) (*models.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]*models.Member, error) {
	return f.members, nil
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.members)), nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) List(ctx context.Context, filter repositories.PaymentFilter) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if filter.MemberID != "" && p.MemberID != filter.MemberID {
			continue
		}
		if filter.Year != 0 && p.Year != filter.Year {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeDonationRepo struct {
	donations []*models.Donation
}

func (f *fakeDonationRepo) Create(ctx context.Context, donation *models.Donation) error {
	if donation.ID == "" {
		donation.ID = uuid.NewString()
	}
	f.donations = append(f.donations, donation)
	return nil
}

func (f *fakeDonationRepo) List(ctx context.Context) ([]*models.Donation, error) {
	return f.donations, nil
}

// newTestApp wires the handlers against the fakes, mirroring routes.Setup
func newTestApp(memberRepo *fakeMemberRepo, paymentRepo *fakePaymentRepo, donationRepo *fakeDonationRepo) *fiber.App {
	app := fiber.New()

	statsService := services.NewStatsService(memberRepo, paymentRepo, donationRepo)

	memberHandler := NewMemberHandler(memberRepo)
	paymentHandler := NewPaymentHandler(paymentRepo)
	donationHandler := NewDonationHandler(donationRepo)
	statsHandler := NewStatsHandler(statsService)

	app.Post("/members", memberHandler.Create)
	app.Get("/members", memberHandler.List)
	app.Get("/members/:id", memberHandler.Get)
	app.Post("/payments", paymentHandler.Create)
	app.Get("/payments", paymentHandler.List)
	app.Post("/donations", donationHandler.Create)
	app.Get("/donations", donationHandler.List)
	app.Get("/stats/matrix", statsHandler.Matrix)
	app.Get("/stats/summary", statsHandler.Summary)

	return app
}
