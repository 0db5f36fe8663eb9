package leave

import (
	"mime/multipart"
	"net/http"
	"strings"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"
	"go-hrms/internal/shared/scope"
	"go-hrms/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const attachmentsField = "attachments"

type Handler struct {
	service TimeOffService
	logger  *zap.Logger
}

func NewHandler(service TimeOffService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Submit accepts a JSON body, or a multipart form whose "attachments" parts are stored
// before the request is created.
func (h *Handler) Submit(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req SubmitTimeOffRequest
	var files []storage.File
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		form, err := c.MultipartForm()
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField(attachmentsField))
			return
		}
		opened, closeAll, err := openAttachments(form.File[attachmentsField])
		defer closeAll()
		if err != nil {
			h.logger.Warn("open attachment failed", zap.Error(err))
			h.writeServiceError(c, apperror.InvalidField(attachmentsField))
			return
		}
		files = opened
	} else if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), actor, req, files)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func openAttachments(headers []*multipart.FileHeader) ([]storage.File, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = storage.ContentTypeFor(fh.Filename)
		}
		files = append(files, storage.File{
			Name:        fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			Body:        f,
		})
	}
	return files, closeAll, nil
}

func (h *Handler) Cancel(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	items, total, err := h.service.History(c.Request.Context(), actor, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, limit := scope.Normalize(q.Page, q.Limit)
	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Balances(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var q BalancesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Balances(c.Request.Context(), actor, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetEntitlement(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req SetEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SetEntitlement(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
