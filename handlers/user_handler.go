package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"editorial-cms/helper"
	"editorial-cms/models"
	"editorial-cms/services"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

// GetUser returns the raw entity, not the list DTO.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.GetUser(uint(id))
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) PatchUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var form models.UserPatchForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.PatchUser(uint(id), form)
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated successfully", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.DeleteUser(uint(id)); err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
