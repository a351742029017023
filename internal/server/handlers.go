package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Houeta/staffdesk/internal/lib/logger/sl"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/services/employees"
)

// EmployeeHandler maps the /employees routes onto the employee service and
// selects a template or redirect for each request.
type EmployeeHandler struct {
	log     *slog.Logger
	service employees.EmployeeServiceIface
}

func NewEmployeeHandler(log *slog.Logger, service employees.EmployeeServiceIface) *EmployeeHandler {
	return &EmployeeHandler{log: log, service: service}
}

// RegisterRoutes attaches the six employee routes to the engine. The delete
// route keeps its historical GET form and additionally accepts POST.
func (h *EmployeeHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/employees")
	group.GET("", h.listEmployees)
	group.GET("/new", h.newEmployeeForm)
	group.POST("", h.saveEmployee)
	group.GET("/edit/:id", h.editEmployeeForm)
	group.GET("/delete/:id", h.deleteEmployee)
	group.POST("/delete/:id", h.deleteEmployee)
	group.GET("/view/:id", h.viewEmployee)
}

func (h *EmployeeHandler) listEmployees(c *gin.Context) {
	employeeList, err := h.service.GetAllEmployees(c.Request.Context())
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "failed to list employees", sl.Err(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "employee-list.html", gin.H{"employees": employeeList})
}

func (h *EmployeeHandler) newEmployeeForm(c *gin.Context) {
	c.HTML(http.StatusOK, "employee-form.html", gin.H{"employee": &models.Employee{}})
}

func (h *EmployeeHandler) saveEmployee(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBind(&employee); err != nil {
		h.log.WarnContext(c.Request.Context(), "failed to bind employee form", sl.Err(err))
		c.String(http.StatusBadRequest, "malformed form body")
		return
	}

	if _, err := h.service.SaveEmployee(c.Request.Context(), employee); err != nil {
		h.log.ErrorContext(c.Request.Context(), "failed to save employee", sl.Err(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	// Redirect-after-POST so a browser reload does not resubmit the form.
	c.Redirect(http.StatusFound, "/employees")
}

func (h *EmployeeHandler) editEmployeeForm(c *gin.Context) {
	identifier, ok := h.parseID(c)
	if !ok {
		return
	}

	employee, err := h.service.GetEmployeeByID(c.Request.Context(), identifier)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "failed to get employee", "id", identifier, sl.Err(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	// A missing id renders the form's not-found body; same policy as the view route.
	c.HTML(http.StatusOK, "employee-form.html", gin.H{"employee": employee})
}

func (h *EmployeeHandler) deleteEmployee(c *gin.Context) {
	identifier, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEmployee(c.Request.Context(), identifier); err != nil {
		h.log.ErrorContext(c.Request.Context(), "failed to delete employee", "id", identifier, sl.Err(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusFound, "/employees")
}

func (h *EmployeeHandler) viewEmployee(c *gin.Context) {
	identifier, ok := h.parseID(c)
	if !ok {
		return
	}

	employee, err := h.service.GetEmployeeByID(c.Request.Context(), identifier)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "failed to get employee", "id", identifier, sl.Err(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "employee-view.html", gin.H{"employee": employee})
}

// parseID extracts the numeric path id. An unparseable id is a client error,
// not a server one.
func (h *EmployeeHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	identifier, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.WarnContext(c.Request.Context(), "unparseable employee id", "raw", raw)
		c.String(http.StatusBadRequest, "invalid employee id: %s", raw)
		return 0, false
	}

	return identifier, true
}
