package handlers

import (
	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"

	"editorial-cms/helper"
	"editorial-cms/models"
	"editorial-cms/services"
)

type SectionHandler struct {
	sectionService services.SectionService
	Helper         *helper.HTTPHelper
}

func NewSectionHandler(sectionService services.SectionService, h *helper.HTTPHelper) *SectionHandler {
	return &SectionHandler{sectionService: sectionService, Helper: h}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req models.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, ve)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	section, err := h.sectionService.CreateSection(req)
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendCreated(c, "Section created successfully", section)
}

func (h *SectionHandler) GetSections(c *gin.Context) {
	sections, err := h.sectionService.GetSections()
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", sections)
}
