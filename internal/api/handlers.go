package api

import (
	"net/http"

	"currency-mask/internal/config"
	"currency-mask/internal/mask"
	"currency-mask/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the input-session API
type Handler struct {
	manager  *session.Manager
	defaults config.Field
}

// NewHandler creates a new API handler
func NewHandler(manager *session.Manager, defaults config.Field) *Handler {
	return &Handler{
		manager:  manager,
		defaults: defaults,
	}
}

// CreateSession handles POST /v1/sessions
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "invalid request body")
		return
	}

	fopts, vopts, mode, err := h.resolveOptions(req.Options)
	if err != nil {
		writeMappedError(c, err)
		return
	}

	sess, err := session.New(req.InitialValue, fopts, vopts, mode)
	if err != nil {
		writeMappedError(c, err)
		return
	}

	id := h.manager.Put(sess)
	c.JSON(http.StatusOK, SessionResponse{
		SessionID: id,
		State:     toStateDTO(sess.State()),
	})
}

// GetSession handles GET /v1/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toStateDTO(sess.State()))
}

// ChangeText handles POST /v1/sessions/:id/text
func (h *Handler) ChangeText(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}

	var req TextChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, toStateDTO(sess.SetText(req.Text)))
}

// SetValue handles POST /v1/sessions/:id/value
func (h *Handler) SetValue(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}

	var req ValueSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, toStateDTO(sess.SetValue(req.Value)))
}

// Reconfigure handles PUT /v1/sessions/:id/options
func (h *Handler) Reconfigure(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}

	var opts FieldOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		writeError(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "invalid request body")
		return
	}

	fopts, vopts, mode, err := h.resolveOptions(opts)
	if err != nil {
		writeMappedError(c, err)
		return
	}

	state, err := sess.Reconfigure(fopts, vopts, mode)
	if err != nil {
		writeMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStateDTO(state))
}

// DeleteSession handles DELETE /v1/sessions/:id
func (h *Handler) DeleteSession(c *gin.Context) {
	h.manager.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Preview handles POST /v1/preview: a stateless one-shot that formats a
// value or parses a text under the given configuration without keeping a
// session around.
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "invalid request body")
		return
	}
	if (req.Value == nil) == (req.Text == nil) {
		writeError(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "exactly one of value or text required")
		return
	}

	fopts, vopts, mode, err := h.resolveOptions(req.Options)
	if err != nil {
		writeMappedError(c, err)
		return
	}

	sess, err := session.New(nil, fopts, vopts, mode)
	if err != nil {
		writeMappedError(c, err)
		return
	}

	var state mask.State
	if req.Value != nil {
		state = sess.SetValue(req.Value)
	} else {
		state = sess.SetText(*req.Text)
	}
	c.JSON(http.StatusOK, toStateDTO(state))
}

// Helper functions

// lookup resolves the session from the path, writing the 404 itself.
func (h *Handler) lookup(c *gin.Context) (*session.Session, bool) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, ErrorCodeSessionNotFound, "session not found: "+id)
		return nil, false
	}
	return sess, true
}

// resolveOptions fills omitted wire fields from the configured defaults
// and converts to engine options.
func (h *Handler) resolveOptions(o FieldOptions) (mask.FormatOptions, mask.ValidateOptions, mask.Mode, error) {
	currency := o.Currency
	if currency == "" {
		currency = h.defaults.Currency
	}
	locale := o.Locale
	if locale == "" {
		locale = h.defaults.Locale
	}

	fopts := mask.FormatOptions{
		Currency:             currency,
		Locale:               locale,
		LegacyFractionDigits: firstInt(o.FractionDigits, h.defaults.FractionDigits),
		MinFractionDigits:    firstInt(o.MinFractionDigits, h.defaults.MinFractionDigits),
		MaxFractionDigits:    firstInt(o.MaxFractionDigits, h.defaults.MaxFractionDigits),
	}

	allowNegative := h.defaults.AllowNegative
	if o.AllowNegative != nil {
		allowNegative = *o.AllowNegative
	}
	vopts := mask.ValidateOptions{
		Minimum:          firstFloat(o.Minimum, h.defaults.Minimum),
		Maximum:          firstFloat(o.Maximum, h.defaults.Maximum),
		AllowNegative:    allowNegative,
		MaxIntegerDigits: firstInt(o.MaxIntegerDigits, h.defaults.MaxIntegerDigits),
	}

	modeName := o.Mode
	if modeName == "" {
		modeName = h.defaults.Mode
	}
	mode, err := mask.ParseMode(modeName)
	if err != nil {
		return fopts, vopts, mode, err
	}
	return fopts, vopts, mode, nil
}

func toStateDTO(s mask.State) StateDTO {
	return StateDTO{
		Value:     s.Value,
		Text:      s.Text,
		RawDigits: s.Digits,
		Negative:  s.Negative,
		Error:     s.Err,
	}
}

func firstInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func writeError(c *gin.Context, status int, code ErrorCode, message string) {
	c.JSON(status, ErrorResponse{
		Code:    string(code),
		Message: message,
	})
}

func writeMappedError(c *gin.Context, err error) {
	status, resp := MapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		// Option resolution failures that are not formatter config errors
		// are caller mistakes, not server faults.
		status = http.StatusBadRequest
		resp.Code = string(ErrorCodeInvalidArgument)
	}
	c.JSON(status, resp)
}
