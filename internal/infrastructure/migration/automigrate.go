package migration

import (
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.OrganizationMembershipModel{},
		&models.EventModel{},
		&models.EventDescriptionModel{},
		&models.TicketCategoryModel{},
		&models.TicketCategoryDescriptionModel{},
		&models.SpecialPriceModel{},
		&models.TicketModel{},
		&models.TicketReservationModel{},
		&models.TransactionModel{},
	}
}
