// Account HTTP handlers.
//
// This file exposes the account endpoints:
//   - POST /users        (create an account)
//   - GET  /users/me     (the calling account)
//   - GET  /admin/users  (list accounts, paginated)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/services"
)

//
// DTOs
//

// CreateUserRequest is the JSON payload for creating an account.
type CreateUserRequest struct {
	// Name is the display name of the account.
	Name string `json:"name" binding:"required,min=1,max=100" example:"Jamie Blackwood"`
	// Email must be unique; it is lowercased before storage.
	Email string `json:"email" binding:"required,min=3,max=255" example:"jamie@example.com"`
}

// UserListResponse wraps a page of accounts and pagination information.
type UserListResponse struct {
	Users      []domain.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

//
// Handlers
//

// CreateUser godoc
// @ID          createUser
// @Summary     Create an account
// @Description Creates an account with a normalized, unique email and returns the account
// @Description resource.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserRequest  true  "Account payload"
//
// @Success     201  {object} domain.User
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     409  {object} handlers.ErrorResponse "Email already registered"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and email required")
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), strings.TrimSpace(req.Name), req.Email)
	if err != nil {
		switch err {
		case services.ErrInvalidEmail:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email must contain an @")
		case services.ErrDuplicateEmail:
			fail(c, http.StatusConflict, ErrCodeConflict, "email already registered")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, u)
}

// CurrentUser godoc
// @ID          currentUser
// @Summary     Get the calling account
// @Description Returns the account resolved from the request identity.
// @Tags        Users
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(1)
//
// @Success     200  {object} domain.User
// @Failure     404  {object} handlers.ErrorResponse "Account not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users/me [get]
func (h *Handlers) CurrentUser(c *gin.Context) {
	u, err := h.userSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "account not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List accounts (paginated)
// @Description Returns a page of accounts, newest first.
// @Tags        Admin/Users
// @Produce     json
//
// @Param       page       query  int  false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.UserListResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.userSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := totalPagesFor(total, pageSize)
	ok(c, http.StatusOK, UserListResponse{
		Users: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}
