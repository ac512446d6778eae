package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/domain/ticket"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

type mockOrgDirectory struct {
	OrganizationsOfFunc func(ctx context.Context, principal string) ([]*organization.Organization, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*organization.Organization, error)
}

func (m *mockOrgDirectory) OrganizationsOf(ctx context.Context, principal string) ([]*organization.Organization, error) {
	if m.OrganizationsOfFunc != nil {
		return m.OrganizationsOfFunc(ctx, principal)
	}
	return nil, nil
}

func (m *mockOrgDirectory) FindByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockEventRepository struct {
	FindByOrganizationIDFunc  func(ctx context.Context, organizationID uint) ([]*event.Event, error)
	FindByIDFunc              func(ctx context.Context, id uint) (*event.Event, error)
	FindByShortNameFunc       func(ctx context.Context, shortName string) (*event.Event, error)
	StatisticsForFunc         func(ctx context.Context, eventID uint) (*event.StatisticView, error)
	StatisticsForIDsFunc      func(ctx context.Context, eventIDs []uint) ([]event.StatisticView, error)
	GrossIncomeMinorUnitsFunc func(ctx context.Context, eventID uint) (int64, error)
	DescriptionsForFunc       func(ctx context.Context, eventID uint) (map[string]string, error)
}

func (m *mockEventRepository) FindByOrganizationID(ctx context.Context, organizationID uint) ([]*event.Event, error) {
	if m.FindByOrganizationIDFunc != nil {
		return m.FindByOrganizationIDFunc(ctx, organizationID)
	}
	return nil, nil
}

func (m *mockEventRepository) FindByID(ctx context.Context, id uint) (*event.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepository) FindByShortName(ctx context.Context, shortName string) (*event.Event, error) {
	if m.FindByShortNameFunc != nil {
		return m.FindByShortNameFunc(ctx, shortName)
	}
	return nil, nil
}

func (m *mockEventRepository) StatisticsFor(ctx context.Context, eventID uint) (*event.StatisticView, error) {
	if m.StatisticsForFunc != nil {
		return m.StatisticsForFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockEventRepository) StatisticsForIDs(ctx context.Context, eventIDs []uint) ([]event.StatisticView, error) {
	if m.StatisticsForIDsFunc != nil {
		return m.StatisticsForIDsFunc(ctx, eventIDs)
	}
	return nil, nil
}

func (m *mockEventRepository) GrossIncomeMinorUnits(ctx context.Context, eventID uint) (int64, error) {
	if m.GrossIncomeMinorUnitsFunc != nil {
		return m.GrossIncomeMinorUnitsFunc(ctx, eventID)
	}
	return 0, nil
}

func (m *mockEventRepository) DescriptionsFor(ctx context.Context, eventID uint) (map[string]string, error) {
	if m.DescriptionsForFunc != nil {
		return m.DescriptionsForFunc(ctx, eventID)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	FindByEventIDFunc           func(ctx context.Context, eventID uint) ([]*category.TicketCategory, error)
	FindByIDFunc                func(ctx context.Context, id uint) (*category.TicketCategory, error)
	StatisticsByCategoryFunc    func(ctx context.Context, eventID uint) (map[uint]category.StatisticView, error)
	DescriptionsForFunc         func(ctx context.Context, categoryID uint) (category.DescriptionSet, error)
	SpecialPricesByCategoryFunc func(ctx context.Context, categoryID uint) ([]category.SpecialPrice, error)
}

func (m *mockCategoryRepository) FindByEventID(ctx context.Context, eventID uint) ([]*category.TicketCategory, error) {
	if m.FindByEventIDFunc != nil {
		return m.FindByEventIDFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*category.TicketCategory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) StatisticsByCategory(ctx context.Context, eventID uint) (map[uint]category.StatisticView, error) {
	if m.StatisticsByCategoryFunc != nil {
		return m.StatisticsByCategoryFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) DescriptionsFor(ctx context.Context, categoryID uint) (category.DescriptionSet, error) {
	if m.DescriptionsForFunc != nil {
		return m.DescriptionsForFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) SpecialPricesByCategory(ctx context.Context, categoryID uint) ([]category.SpecialPrice, error) {
	if m.SpecialPricesByCategoryFunc != nil {
		return m.SpecialPricesByCategoryFunc(ctx, categoryID)
	}
	return nil, nil
}

type mockTicketRepository struct {
	FindAllModifiedFunc      func(ctx context.Context, eventID, categoryID uint) ([]*ticket.Ticket, error)
	CountReleasedUnboundFunc func(ctx context.Context, eventID uint) (int, error)
}

func (m *mockTicketRepository) FindAllModified(ctx context.Context, eventID, categoryID uint) ([]*ticket.Ticket, error) {
	if m.FindAllModifiedFunc != nil {
		return m.FindAllModifiedFunc(ctx, eventID, categoryID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountReleasedUnbound(ctx context.Context, eventID uint) (int, error) {
	if m.CountReleasedUnboundFunc != nil {
		return m.CountReleasedUnboundFunc(ctx, eventID)
	}
	return 0, nil
}

type mockReservationRepository struct {
	FindByIDFunc                   func(ctx context.Context, id string) (*reservation.TicketReservation, error)
	FindPendingOfflinePaymentsFunc func(ctx context.Context, eventID uint) ([]*reservation.TicketReservation, error)
	UpdatePaymentStatusFunc        func(ctx context.Context, id string, status reservation.PaymentStatus) error
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id string) (*reservation.TicketReservation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReservationRepository) FindPendingOfflinePayments(ctx context.Context, eventID uint) ([]*reservation.TicketReservation, error) {
	if m.FindPendingOfflinePaymentsFunc != nil {
		return m.FindPendingOfflinePaymentsFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockReservationRepository) UpdatePaymentStatus(ctx context.Context, id string, status reservation.PaymentStatus) error {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, id, status)
	}
	return nil
}

type mockTransactionRepository struct {
	FindByReservationIDFunc func(ctx context.Context, reservationID string) (*reservation.Transaction, error)
}

func (m *mockTransactionRepository) FindByReservationID(ctx context.Context, reservationID string) (*reservation.Transaction, error) {
	if m.FindByReservationIDFunc != nil {
		return m.FindByReservationIDFunc(ctx, reservationID)
	}
	return nil, nil
}

type mockStatisticsCache struct {
	GetFunc   func(ctx context.Context, principal string) ([]event.Statistic, bool, error)
	SetFunc   func(ctx context.Context, principal string, stats []event.Statistic) error
	ClearFunc func(ctx context.Context) error
}

func (m *mockStatisticsCache) Get(ctx context.Context, principal string) ([]event.Statistic, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, principal)
	}
	return nil, false, nil
}

func (m *mockStatisticsCache) Set(ctx context.Context, principal string, stats []event.Statistic) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, principal, stats)
	}
	return nil
}

func (m *mockStatisticsCache) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
