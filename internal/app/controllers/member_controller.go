package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/app/services"
	"github.com/ecem/goodworks/internal/middleware"
	"github.com/ecem/goodworks/internal/storage"
)

// MemberController handles member-related endpoints
type MemberController struct {
	memberService *services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService *services.MemberService) *MemberController {
	return &MemberController{memberService: memberService}
}

// parseIDParam reads the :id path segment as an int64
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID must be a positive number"))
		return 0, false
	}
	return id, true
}

// CreateMember handles member registration
// @Summary Register a new member
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Member information"
// @Success 201 {object} dto.MemberResponse
// @Router /members [post]
func (c *MemberController) CreateMember(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user := models.User{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     models.Role(req.Role),
	}
	if err := c.memberService.Register(ctx, &user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMemberResponse(&user))
}

// GetMembers lists all members with their contribution totals
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} dto.MemberDetailResponse
// @Router /members [get]
func (c *MemberController) GetMembers(ctx *gin.Context) {
	users, err := c.memberService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	contribs, err := c.memberService.Contributions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.MemberDetailResponse, 0, len(users))
	for i := range users {
		contrib := contribs[users[i].ID]
		responses = append(responses, dto.MemberDetailResponse{
			MemberResponse:     dto.NewMemberResponse(&users[i]),
			WorksCount:         contrib.WorksCount,
			TotalBeneficiaries: contrib.TotalBeneficiaries,
		})
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetMemberByID retrieves a member with contribution totals
// @Summary Get member details
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} dto.MemberDetailResponse
// @Router /members/{id} [get]
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.memberService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	contrib, err := c.memberService.Contribution(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MemberDetailResponse{
		MemberResponse:     dto.NewMemberResponse(user),
		WorksCount:         contrib.WorksCount,
		TotalBeneficiaries: contrib.TotalBeneficiaries,
	})
}

// UpdateMember applies a partial update to a member
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Router /members/{id} [put]
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	patch := storage.UserPatch{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		patch.Role = &role
	}

	user, err := c.memberService.Update(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMemberResponse(user))
}

// DeleteMember removes a member
// @Summary Delete a member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} dto.MessageResponse
// @Router /members/{id} [delete]
func (c *MemberController) DeleteMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.memberService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member deleted"})
}
