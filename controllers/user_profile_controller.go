package controllers

import (
	"loyalty-backend/config"
	"loyalty-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the member's profile along with the completeness flag
// the app uses to gate the profile wizard.
func GetProfile(c *gin.Context) {
	utils.LogInfo("GetProfile called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"id":                  user.ID,
		"member_code":         user.MemberCode,
		"full_name":           user.FullName,
		"phone":               user.Phone,
		"email":               user.Email,
		"profile_picture":     user.ProfilePicture,
		"be_name":             user.BEName,
		"outlet_name":         user.OutletName,
		"region":              user.Region,
		"state":               user.State,
		"city":                user.City,
		"address":             user.Address,
		"pincode":             user.Pincode,
		"member_type":         user.MemberType,
		"slab":                user.Slab,
		"distributor_name":    user.DistributorName,
		"target":              user.Target,
		"is_profile_complete": user.IsProfileComplete(),
	})
}

// UpdateProfileRequest carries the optional profile fields. Pointers let
// "absent" and "set to empty" stay distinguishable.
type UpdateProfileRequest struct {
	ProfilePicture  *string `json:"profile_picture"`
	BEName          *string `json:"be_name"`
	OutletName      *string `json:"outlet_name"`
	Region          *string `json:"region"`
	State           *string `json:"state"`
	City            *string `json:"city"`
	Address         *string `json:"address"`
	Pincode         *string `json:"pincode"`
	MemberType      *string `json:"member_type"`
	Slab            *string `json:"slab"`
	DistributorName *string `json:"distributor_name"`
	Target          *int    `json:"target"`
}

// UpdateProfile applies the provided profile fields.
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Pincode != nil && *req.Pincode != "" && !utils.IsValidPincode(*req.Pincode) {
		utils.BadRequest(c, "Invalid pincode", nil)
		return
	}

	updates := map[string]interface{}{}
	setIf := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIf("profile_picture", req.ProfilePicture)
	setIf("be_name", req.BEName)
	setIf("outlet_name", req.OutletName)
	setIf("region", req.Region)
	setIf("state", req.State)
	setIf("city", req.City)
	setIf("address", req.Address)
	setIf("pincode", req.Pincode)
	setIf("member_type", req.MemberType)
	setIf("slab", req.Slab)
	setIf("distributor_name", req.DistributorName)
	if req.Target != nil {
		updates["target"] = *req.Target
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update profile for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.LogInfo("Updated profile for user ID: %d", user.ID)
	utils.Success(c, "Profile updated successfully", nil)
}
