package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de balance y el tablero (protegido).
type ReportHandler struct {
	balanceUC   *ledger.BalanceUseCase
	pdfUC       *ledger.ReportPDFUseCase
	dashboardUC *usecase.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(
	balanceUC *ledger.BalanceUseCase,
	pdfUC *ledger.ReportPDFUseCase,
	dashboardUC *usecase.DashboardUseCase,
) *ReportHandler {
	return &ReportHandler{balanceUC: balanceUC, pdfUC: pdfUC, dashboardUC: dashboardUC}
}

// Balance godoc
// @Summary      Reporte plano de balances (ceros suprimidos)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceReportResponse
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	out, err := h.balanceUC.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BalanceRaw godoc
// @Summary      Balance crudo product_id → location_id → neto
// @Description  Conserva las entradas en cero, a diferencia del reporte plano.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RawBalanceResponse
// @Router       /api/reports/balance/raw [get]
func (h *ReportHandler) BalanceRaw(c *fiber.Ctx) error {
	out, err := h.balanceUC.Raw(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BalancePDF godoc
// @Summary      Reporte de balances en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/balance/pdf [get]
func (h *ReportHandler) BalancePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="balances.pdf"`)
	return c.Send(pdfBytes)
}

// Dashboard godoc
// @Summary      Contadores del tablero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
