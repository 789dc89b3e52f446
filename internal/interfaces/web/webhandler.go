package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/services/markdown"
	"deskd/internal/shared/utils"
)

// WebHandler serves the server-rendered pages. It drives the same use
// cases as the JSON API, so page behavior and API behavior cannot drift.
type WebHandler struct {
	renderer       *TemplateRenderer
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	getSummaryUC   usecases.GetSummaryExecutor
	markdownSvc    markdown.MarkdownService
	logger         logger.Interface
}

func NewWebHandler(
	renderer *TemplateRenderer,
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	getSummaryUC usecases.GetSummaryExecutor,
) *WebHandler {
	return &WebHandler{
		renderer:       renderer,
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		getSummaryUC:   getSummaryUC,
		markdownSvc:    markdown.NewMarkdownService(),
		logger:         logger.NewLogger(),
	}
}

// Index handles GET / with the filtered ticket list and the summary.
func (h *WebHandler) Index(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		Search: c.Query("search"),
		Offset: utils.QueryInt(c, "offset", 0),
		Limit:  utils.QueryInt(c, "limit", 0),
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		query.Priority = &priority
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.renderError(c, err)
		return
	}

	summary, err := h.getSummaryUC.Execute(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "index.html", gin.H{
		"tickets":  result.Tickets,
		"total":    result.TotalCount,
		"summary":  summary,
		"status":   c.Query("status"),
		"priority": c.Query("priority"),
		"search":   c.Query("search"),
	})
}

// NewTicketForm handles GET /tickets/new.
func (h *WebHandler) NewTicketForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "ticket_new.html", gin.H{})
}

// CreateTicket handles POST /tickets/new and redirects to the new ticket.
func (h *WebHandler) CreateTicket(c *gin.Context) {
	cmd := usecases.CreateTicketCommand{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("web ticket creation failed", "error", err)
		h.renderer.HTML(c, statusFor(err), "ticket_new.html", gin.H{
			"error":       errorMessage(err),
			"title":       cmd.Title,
			"description": cmd.Description,
			"priority":    cmd.Priority,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/tickets/%d", result.ID))
}

// TicketDetail handles GET /tickets/:id.
func (h *WebHandler) TicketDetail(c *gin.Context) {
	ticketID, ok := h.parseID(c)
	if !ok {
		return
	}

	ticket, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	comments, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		TicketID: ticketID,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	descriptionHTML := ""
	if strings.TrimSpace(ticket.Description) != "" {
		descriptionHTML, err = h.markdownSvc.ToHTMLSanitized(ticket.Description)
		if err != nil {
			h.logger.Warnw("failed to render ticket description", "ticket_id", ticketID, "error", err)
		}
	}

	h.renderer.HTML(c, http.StatusOK, "ticket_detail.html", gin.H{
		"ticket":           ticket,
		"comments":         comments,
		"description_html": descriptionHTML,
	})
}

// AddComment handles the form variant of POST /tickets/:id/comments.
func (h *WebHandler) AddComment(c *gin.Context) {
	ticketID, ok := h.parseID(c)
	if !ok {
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID: ticketID,
		Author:   c.PostForm("author"),
		Body:     c.PostForm("body"),
	}

	if _, err := h.addCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/tickets/%d", ticketID))
}

func (h *WebHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.renderer.HTML(c, http.StatusNotFound, "error.html", gin.H{
			"message": "Ticket not found",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *WebHandler) renderError(c *gin.Context, err error) {
	h.renderer.HTML(c, statusFor(err), "error.html", gin.H{
		"message": errorMessage(err),
	})
}

func statusFor(err error) int {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

func errorMessage(err error) string {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return "Something went wrong"
	}

	if len(appErr.Fields) > 0 {
		parts := make([]string, 0, len(appErr.Fields))
		for _, f := range appErr.Fields {
			parts = append(parts, f.Field+" "+f.Message)
		}
		return strings.Join(parts, "; ")
	}
	return appErr.Message
}
