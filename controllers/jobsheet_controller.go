package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirulhaziq/jobsheet-api/config"
	"github.com/amirulhaziq/jobsheet-api/models"
	"github.com/amirulhaziq/jobsheet-api/services"
	"github.com/amirulhaziq/jobsheet-api/utils"
)

// partRows is how many part lines the printed form carries.
const partRows = 8

// formView is the data handed to the jobsheet form template.
type formView struct {
	Jobsheet     models.Jobsheet
	ServiceTypes []string
	Parts        []models.PartLine
}

func newFormView(jobsheet models.Jobsheet) formView {
	parts := utils.DecodePartList(jobsheet.PartsUsed)
	for len(parts) < partRows {
		parts = append(parts, models.PartLine{})
	}
	return formView{
		Jobsheet:     jobsheet,
		ServiceTypes: utils.DecodeStringList(jobsheet.ServiceTypes),
		Parts:        parts[:partRows],
	}
}

// parseJSNumber reads the js_number route parameter. A non-numeric value is
// treated the same as an unknown number.
func parseJSNumber(c *gin.Context) (int64, bool) {
	jsNumber, err := strconv.ParseInt(c.Param("js_number"), 10, 64)
	if err != nil {
		return 0, false
	}
	return jsNumber, true
}

// HomePage handles GET / - lists all jobsheets, most recent number first
func HomePage(c *gin.Context) {
	db := config.GetDB()

	jobsheets, err := services.ListJobsheets(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Jobsheets": jobsheets,
	})
}

// CreateJobsheet handles GET /create - allocates the next jobsheet number,
// inserts its draft row and renders a blank form
func CreateJobsheet(c *gin.Context) {
	db := config.GetDB()

	jsNumber, err := services.AllocateJobsheetNumber(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	jobsheet, err := services.GetJobsheet(db, jsNumber)
	if err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	c.HTML(http.StatusOK, "jobsheet_form.html", newFormView(jobsheet))
}

// ViewJobsheet handles GET /jobsheet/:js_number - renders the populated form
func ViewJobsheet(c *gin.Context) {
	jsNumber, ok := parseJSNumber(c)
	if !ok {
		c.String(http.StatusNotFound, "jobsheet not found")
		return
	}

	db := config.GetDB()
	jobsheet, err := services.GetJobsheet(db, jsNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "jobsheet not found")
			return
		}
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	c.HTML(http.StatusOK, "jobsheet_form.html", newFormView(jobsheet))
}

// SaveJobsheet handles POST /api/save - full-field save of a jobsheet.
// Every call replaces the whole editable field set; fields missing from the
// payload are cleared, not kept.
func SaveJobsheet(c *gin.Context) {
	var input services.SaveJobsheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	db := config.GetDB()
	if err := services.SaveJobsheet(db, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// PrintJobsheet handles POST /api/print/:js_number - marks the row printed
func PrintJobsheet(c *gin.Context) {
	jsNumber, ok := parseJSNumber(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	db := config.GetDB()
	if err := services.MarkPrinted(db, jsNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "printed"})
}

// SubmitJobsheet handles POST /api/submit/:js_number - marks the row
// submitted, stamps the submission time and forwards the record to the
// automation webhook in the background
func SubmitJobsheet(c *gin.Context) {
	jsNumber, ok := parseJSNumber(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	db := config.GetDB()
	jobsheet, err := services.SubmitJobsheet(db, jsNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	services.DispatchSubmission(jobsheet)

	c.JSON(http.StatusOK, gin.H{
		"status":    "submitted",
		"js_number": jobsheet.JSNumber,
	})
}

// GetJobsheet handles GET /api/jobsheet/:js_number - returns the full row
// as JSON with every value stringified
func GetJobsheet(c *gin.Context) {
	jsNumber, ok := parseJSNumber(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	db := config.GetDB()
	jobsheet, err := services.GetJobsheet(db, jsNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, services.StringifyJobsheet(jobsheet))
}
