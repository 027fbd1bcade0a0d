package chain

import (
	"fmt"

	"github.com/dshills/gopatterns/internal/auth/userstore"
	"github.com/dshills/gopatterns/internal/logging"
)

// ExistsHandler checks that the username is known and attaches the stored
// record to the request for the stages behind it.
type ExistsHandler struct {
	link
	store  *userstore.Store
	logger *logging.Logger
}

// NewExistsHandler creates the existence stage. A nil logger is silenced.
func NewExistsHandler(store *userstore.Store, logger *logging.Logger) *ExistsHandler {
	if logger == nil {
		logger = logging.Nop
	}
	return &ExistsHandler{store: store, logger: logger.WithComponent("chain")}
}

// Handle resolves or forwards the request.
func (h *ExistsHandler) Handle(req *Request) Result {
	user, ok := h.store.Lookup(req.Username)
	if !ok {
		h.logger.Info("request %s: unknown user %q", req.ID, req.Username)
		return reject(StageExistence, fmt.Sprintf("user %q does not exist", req.Username))
	}

	req.User = &user
	h.logger.Debug("request %s: user %q exists (role %s)", req.ID, req.Username, user.Role)
	return h.forward(req, allow(StageExistence))
}

// PasswordHandler compares the supplied password against the record attached
// by the existence stage.
type PasswordHandler struct {
	link
	logger *logging.Logger
}

// NewPasswordHandler creates the credential stage. A nil logger is silenced.
func NewPasswordHandler(logger *logging.Logger) *PasswordHandler {
	if logger == nil {
		logger = logging.Nop
	}
	return &PasswordHandler{logger: logger.WithComponent("chain")}
}

// Handle resolves or forwards the request.
func (h *PasswordHandler) Handle(req *Request) Result {
	if req.User == nil {
		// Contract violation: this stage only runs behind the existence
		// stage, which attaches the record.
		return reject(StageCredentials, "no user record attached to request")
	}
	if req.Password != req.User.Password {
		h.logger.Info("request %s: invalid password for %q", req.ID, req.Username)
		return reject(StageCredentials, "invalid password")
	}

	h.logger.Debug("request %s: password accepted for %q", req.ID, req.Username)
	return h.forward(req, allow(StageCredentials))
}

// RoleHandler checks that the attached record carries the required role.
// An empty Required role admits everyone.
type RoleHandler struct {
	link
	// Required is the role a request must carry to pass this stage.
	Required string
	logger   *logging.Logger
}

// NewRoleHandler creates the authorization stage. A nil logger is silenced.
func NewRoleHandler(required string, logger *logging.Logger) *RoleHandler {
	if logger == nil {
		logger = logging.Nop
	}
	return &RoleHandler{Required: required, logger: logger.WithComponent("chain")}
}

// Handle resolves or forwards the request.
func (h *RoleHandler) Handle(req *Request) Result {
	if req.User == nil {
		return reject(StageAuthorization, "no user record attached to request")
	}
	if h.Required != "" && req.User.Role != h.Required {
		h.logger.Info("request %s: %q has role %q, requires %q",
			req.ID, req.Username, req.User.Role, h.Required)
		return reject(StageAuthorization,
			fmt.Sprintf("requires role %q, user has %q", h.Required, req.User.Role))
	}

	h.logger.Debug("request %s: role accepted for %q", req.ID, req.Username)
	return h.forward(req, allow(StageAuthorization))
}

// Build wires the standard chain (existence, then credentials, then
// authorization) and returns its head.
func Build(store *userstore.Store, requiredRole string, logger *logging.Logger) Handler {
	head := NewExistsHandler(store, logger)
	head.SetNext(NewPasswordHandler(logger)).SetNext(NewRoleHandler(requiredRole, logger))
	return head
}
