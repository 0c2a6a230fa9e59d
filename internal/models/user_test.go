package models

import (
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"user role", RoleUser, true},
		{"invalid role", "manager", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	user := &User{Role: RoleUser}
	unknown := &User{Role: "ghost"}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		{"admin can archive vehicles", admin, "archive_vehicle", true},
		{"admin can manage users", admin, "manage_users", true},
		{"admin can cancel in-progress work", admin, "cancel_workorder", true},
		{"user can view vehicles", user, "view_vehicles", true},
		{"user can create vehicles", user, "create_vehicle", true},
		{"user can create work orders", user, "create_workorder", true},
		{"user can update order status", user, "update_workorder_status", true},
		{"user can export data", user, "export_data", true},
		{"user cannot archive vehicles", user, "archive_vehicle", false},
		{"user cannot cancel in-progress work", user, "cancel_workorder", false},
		{"user cannot manage users", user, "manage_users", false},
		{"unknown role has no permissions", unknown, "view_vehicles", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.HasPermission(tt.action); got != tt.expected {
				t.Errorf("HasPermission(%s) = %v, want %v", tt.action, got, tt.expected)
			}
		})
	}
}

func TestClaims_IsAdmin(t *testing.T) {
	if !(&Claims{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin claims should report IsAdmin")
	}
	if (&Claims{Role: RoleUser}).IsAdmin() {
		t.Error("user claims should not report IsAdmin")
	}
	var nilClaims *Claims
	if nilClaims.IsAdmin() {
		t.Error("nil claims should not report IsAdmin")
	}
}
