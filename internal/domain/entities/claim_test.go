package entities

import "testing"

func TestClaimStatusTerminal(t *testing.T) {
	terminal := map[ClaimStatus]bool{
		ClaimStatusSubmitted:   false,
		ClaimStatusUnderReview: false,
		ClaimStatusApproved:    false,
		ClaimStatusRejected:    true,
		ClaimStatusSettled:     true,
		ClaimStatusCancelled:   true,
	}

	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Fatalf("%s: Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestClaimTypeValidFor(t *testing.T) {
	cases := []struct {
		claimType  ClaimType
		policyType PolicyType
		want       bool
	}{
		{ClaimTypeDeath, PolicyTypeLife, true},
		{ClaimTypeDeath, PolicyTypeCar, false},
		{ClaimTypeAccident, PolicyTypeCar, true},
		{ClaimTypeAccident, PolicyTypeHouse, false},
		{ClaimTypeFireDamage, PolicyTypeHouse, true},
		{ClaimTypeFireDamage, PolicyTypeLife, false},
		{ClaimTypeTheft, PolicyTypeCar, true},
		{ClaimTypeTheftHome, PolicyTypeHouse, true},
		{ClaimTypeOther, PolicyTypeLife, true},
		{ClaimTypeOther, PolicyTypeCar, true},
		{ClaimTypeOther, PolicyTypeHouse, true},
		{"UNKNOWN_CLAIM", PolicyTypeCar, false},
	}

	for _, tc := range cases {
		if got := tc.claimType.ValidFor(tc.policyType); got != tc.want {
			t.Fatalf("%s.ValidFor(%s) = %v, want %v", tc.claimType, tc.policyType, got, tc.want)
		}
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	admin := Identity{SubjectID: "a", Roles: []string{RoleUser, RoleAdmin}}
	user := Identity{SubjectID: "u", Roles: []string{RoleUser}}

	if !admin.IsAdmin() {
		t.Fatalf("expected admin")
	}
	if user.IsAdmin() {
		t.Fatalf("expected non-admin")
	}
	if !user.HasRole(RoleUser) {
		t.Fatalf("expected user role")
	}
}
