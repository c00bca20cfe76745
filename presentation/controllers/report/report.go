package report

import (
	"net/http"

	"github.com/catspotter/cat-tracker/application/usecases/report"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type ReportController interface {
	Summary(ctx *gin.Context)
	Export(ctx *gin.Context)
}

type reportController struct {
	reportUC report.ReportUseCase
}

func NewReportController(reportUC report.ReportUseCase) ReportController {
	return &reportController{
		reportUC: reportUC,
	}
}

func (c *reportController) Summary(ctx *gin.Context) {
	summary, err := c.reportUC.Summary(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "report_failed",
			Message: "failed to build summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// Export streams every sighting as CSV. Headers go out before the first
// row, so a mid-stream failure can only truncate the body.
func (c *reportController) Export(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename=cat_sightings.csv`)
	ctx.Status(http.StatusOK)

	if _, err := c.reportUC.ExportCSV(ctx.Request.Context(), ctx.Writer); err != nil {
		ctx.Error(err)
	}
}
