package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a loyalty program member
type User struct {
	gorm.Model
	FullName    string `json:"full_name"`
	Phone       string `gorm:"uniqueIndex;not null" json:"phone"`
	Email       string `json:"email"`
	MemberCode  string `gorm:"uniqueIndex;default:null" json:"member_code"`
	OTPHash     string `json:"-"`
	OTPExpiry   time.Time `json:"-"`
	OTPVerified bool   `json:"otp_verified" gorm:"default:false"`
	IsAdmin     bool   `json:"is_admin" gorm:"default:false"`

	// Profile fields
	ProfilePicture string `gorm:"type:text" json:"profile_picture"`
	BEName         string `json:"be_name"`
	OutletName     string `json:"outlet_name"`

	// Business fields
	MemberType      string `json:"member_type"`
	Slab            string `json:"slab"`
	DistributorName string `json:"distributor_name"`
	Target          *int   `json:"target"`

	// Location fields
	Region  string `json:"region"`
	State   string `json:"state"`
	City    string `json:"city"`
	Address string `gorm:"type:text" json:"address"`
	Pincode string `json:"pincode"`

	CartItems []CartItem `json:"-" gorm:"foreignKey:UserID"`
	Orders    []Order    `json:"-" gorm:"foreignKey:UserID"`
}

// IsProfileComplete reports whether every onboarding field has been filled in.
// The mobile app uses this to decide whether to show the profile wizard.
func (u *User) IsProfileComplete() bool {
	return u.BEName != "" &&
		u.OutletName != "" &&
		u.MemberType != "" &&
		u.Slab != "" &&
		u.DistributorName != "" &&
		u.Target != nil &&
		u.Address != "" &&
		u.Pincode != "" &&
		u.Region != "" &&
		u.State != "" &&
		u.City != ""
}
