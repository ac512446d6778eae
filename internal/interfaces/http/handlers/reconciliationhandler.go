package handlers

import (
	"encoding/csv"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	reconUsecases "github.com/tessera-live/tessera/internal/application/reconciliation/usecases"
	"github.com/tessera-live/tessera/internal/interfaces/http/middleware"
	"github.com/tessera-live/tessera/internal/shared/logger"
	"github.com/tessera-live/tessera/internal/shared/utils"
)

// ReconciliationHandler exposes the offline-payment reconciliation workflow:
// listing pending bank transfers, confirming or deleting single payments and
// uploading a whole bank statement as CSV.
type ReconciliationHandler struct {
	bulkConfirmUC reconUsecases.BulkConfirmPaymentsExecutor
	confirmUC     reconUsecases.ConfirmOfflinePaymentExecutor
	deleteUC      reconUsecases.DeleteOfflinePaymentExecutor
	pendingUC     reconUsecases.PendingPaymentsExecutor
	logger        logger.Interface
}

func NewReconciliationHandler(
	bulkConfirmUC reconUsecases.BulkConfirmPaymentsExecutor,
	confirmUC reconUsecases.ConfirmOfflinePaymentExecutor,
	deleteUC reconUsecases.DeleteOfflinePaymentExecutor,
	pendingUC reconUsecases.PendingPaymentsExecutor,
	logger logger.Interface,
) *ReconciliationHandler {
	return &ReconciliationHandler{
		bulkConfirmUC: bulkConfirmUC,
		confirmUC:     confirmUC,
		deleteUC:      deleteUC,
		pendingUC:     pendingUC,
		logger:        logger,
	}
}

type PendingPaymentResponse struct {
	ReservationID string `json:"reservation_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
}

func (h *ReconciliationHandler) GetPendingPayments(c *gin.Context) {
	query := reconUsecases.PendingPaymentsQuery{
		EventShortName: c.Param("short_name"),
		Principal:      middleware.PrincipalFromContext(c),
	}

	pending, err := h.pendingUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list pending payments",
			"error", err,
			"short_name", query.EventShortName)
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := make([]PendingPaymentResponse, 0, len(pending))
	for _, res := range pending {
		response = append(response, PendingPaymentResponse{
			ReservationID: res.ID(),
			FullName:      res.FullName(),
			Email:         res.Email(),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *ReconciliationHandler) ConfirmPayment(c *gin.Context) {
	cmd := reconUsecases.ConfirmOfflinePaymentCommand{
		EventShortName: c.Param("short_name"),
		ReservationID:  c.Param("reservation_id"),
		Principal:      middleware.PrincipalFromContext(c),
	}

	if err := h.confirmUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to confirm offline payment",
			"error", err,
			"reservation_id", cmd.ReservationID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment confirmed", nil)
}

func (h *ReconciliationHandler) DeletePayment(c *gin.Context) {
	cmd := reconUsecases.DeleteOfflinePaymentCommand{
		EventShortName: c.Param("short_name"),
		ReservationID:  c.Param("reservation_id"),
		Principal:      middleware.PrincipalFromContext(c),
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to delete offline payment",
			"error", err,
			"reservation_id", cmd.ReservationID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// BulkConfirmPayments accepts a CSV body where each line is
// `reservation_id,amount`. The response carries one entry per input row; a
// malformed row fails alone without aborting the batch.
func (h *ReconciliationHandler) BulkConfirmPayments(c *gin.Context) {
	rows, err := h.readCSVRows(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read CSV payload: "+err.Error())
		return
	}

	cmd := reconUsecases.BulkConfirmPaymentsCommand{
		EventShortName: c.Param("short_name"),
		Principal:      middleware.PrincipalFromContext(c),
		Rows:           rows,
	}

	results, err := h.bulkConfirmUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to run bulk confirmation",
			"error", err,
			"short_name", cmd.EventShortName)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

func (h *ReconciliationHandler) readCSVRows(c *gin.Context) ([][]string, error) {
	var source io.Reader = c.Request.Body

	// Multipart uploads carry the statement in a "file" part.
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		source = f
	}

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return reader.ReadAll()
}
