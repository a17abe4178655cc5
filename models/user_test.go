package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProfileComplete(t *testing.T) {
	target := 50000
	user := User{
		BEName:          "North BE",
		OutletName:      "Super Store",
		MemberType:      "Retailer",
		Slab:            "Gold",
		DistributorName: "Acme Distributors",
		Target:          &target,
		Region:          "North",
		State:           "Delhi",
		City:            "New Delhi",
		Address:         "12 Market Road",
		Pincode:         "110001",
	}
	assert.True(t, user.IsProfileComplete())

	user.Target = nil
	assert.False(t, user.IsProfileComplete())

	user.Target = &target
	user.Pincode = ""
	assert.False(t, user.IsProfileComplete())
}

func TestIsProfileCompleteZeroValue(t *testing.T) {
	var user User
	assert.False(t, user.IsProfileComplete())
}
