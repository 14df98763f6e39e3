package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"signsheet/internal/service"
)

// SheetHandler handles sign-in sheet parsing endpoints.
type SheetHandler struct {
	sheetService service.SheetService
}

// NewSheetHandler creates a new SheetHandler.
func NewSheetHandler(sheetService service.SheetService) *SheetHandler {
	return &SheetHandler{sheetService: sheetService}
}

// checkDateRequest is the body of POST /api/v1/sheets/check-date.
type checkDateRequest struct {
	ScannedDate  string `json:"scanned_date" binding:"required"`
	SelectedDate string `json:"selected_date" binding:"required"`
}

// Parse handles POST /api/v1/sheets/parse
// @Summary Parse a sign-in sheet
// @Description Parse the OCR text of one sign-in sheet page into attendance records
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body service.ParseInput true "OCR text"
// @Success 200 {object} APIResponse{data=domain.ParseResult} "Parsed sheet"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 422 {object} APIResponse{data=domain.ParseResult} "Sheet could not be parsed"
// @Router /sheets/parse [post]
func (h *SheetHandler) Parse(c *gin.Context) {
	var input service.ParseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "request body must be JSON with a text field")
		return
	}

	result, err := h.sheetService.Parse(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ParsePages handles POST /api/v1/sheets/parse-pages
// @Summary Parse a multi-page sign-in sheet
// @Description Parse each page and merge the records; all pages must share one date
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body service.ParsePagesInput true "OCR text per page, in order"
// @Success 200 {object} APIResponse{data=domain.ParseResult} "Merged sheet"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 422 {object} APIResponse{data=domain.ParseResult} "A page could not be parsed"
// @Router /sheets/parse-pages [post]
func (h *SheetHandler) ParsePages(c *gin.Context) {
	var input service.ParsePagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "pages is required and must contain at least one page")
		return
	}

	result, err := h.sheetService.ParsePages(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Review handles POST /api/v1/sheets/review
// @Summary Review parsed records before submission
// @Description Project a parsed document for display and list the records that need attention
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body service.ReviewInput true "Parsed document"
// @Success 200 {object} APIResponse{data=service.ReviewOutput} "Review and display projection"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 413 {object} APIResponse "Request body too large"
// @Router /sheets/review [post]
func (h *SheetHandler) Review(c *gin.Context) {
	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "request body must be a parsed document")
		return
	}

	RespondOK(c, h.sheetService.Review(input))
}

// AdjustTimes handles POST /api/v1/times/adjust
// @Summary Normalize an edited clock-in/clock-out pair
// @Description Normalize both times to HH:MM and roll a morning clock-out that precedes the clock-in forward 12 hours
// @Tags times
// @Accept json
// @Produce json
// @Param request body service.AdjustTimesInput true "Edited times"
// @Success 200 {object} APIResponse{data=service.AdjustTimesOutput} "Normalized times"
// @Failure 400 {object} APIResponse "Invalid request or time"
// @Router /times/adjust [post]
func (h *SheetHandler) AdjustTimes(c *gin.Context) {
	var input service.AdjustTimesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "time_in and time_out are required")
		return
	}

	out, err := h.sheetService.AdjustTimes(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// CheckDate handles POST /api/v1/sheets/check-date
// @Summary Compare the scanned date with the user-selected date
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body checkDateRequest true "Scanned and selected dates"
// @Success 200 {object} APIResponse "Dates match"
// @Failure 400 {object} APIResponse "Invalid request or selected date"
// @Failure 422 {object} APIResponse "Dates differ"
// @Router /sheets/check-date [post]
func (h *SheetHandler) CheckDate(c *gin.Context) {
	var req checkDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "scanned_date and selected_date are required")
		return
	}

	if err := h.sheetService.CheckSelectedDate(req.ScannedDate, req.SelectedDate); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: gin.H{"matches": true}})
}
