package entities

import (
	"errors"
	"testing"
)

func TestNewPolicy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewPolicy("pol-1", "DEFAULT_POLICY_V1", "1.0",
			[]ProductType{ProductTypePersonalLoan},
			[]Channel{ChannelApp}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "DEFAULT_POLICY_V1" || p.Version != "1.0" {
			t.Fatalf("unexpected fields: %+v", p)
		}
	})

	cases := []struct {
		name         string
		policyName   string
		version      string
		productTypes []ProductType
		channels     []Channel
	}{
		{name: "blank name", policyName: " ", version: "1.0", productTypes: []ProductType{ProductTypePersonalLoan}, channels: []Channel{ChannelApp}},
		{name: "blank version", policyName: "P", version: "", productTypes: []ProductType{ProductTypePersonalLoan}, channels: []Channel{ChannelApp}},
		{name: "no product types", policyName: "P", version: "1.0", productTypes: nil, channels: []Channel{ChannelApp}},
		{name: "no channels", policyName: "P", version: "1.0", productTypes: []ProductType{ProductTypePersonalLoan}, channels: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPolicy("pol-1", tc.policyName, tc.version, tc.productTypes, tc.channels, true)
			if !errors.Is(err, ErrInvalidPolicy) {
				t.Fatalf("expected ErrInvalidPolicy, got %v", err)
			}
		})
	}
}

func TestPolicyAppliesTo(t *testing.T) {
	policy := Policy{
		ID:           "pol-1",
		Name:         "DEFAULT_POLICY_V1",
		Version:      "1.0",
		ProductTypes: []ProductType{ProductTypePersonalLoan, ProductTypeCreditCard},
		Channels:     []Channel{ChannelApp, ChannelBackoffice},
		IsActive:     true,
	}

	if !policy.AppliesTo(ProductTypePersonalLoan, ChannelApp) {
		t.Fatalf("expected policy to apply")
	}
	if policy.AppliesTo(ProductTypePayrollLoan, ChannelApp) {
		t.Fatalf("expected product mismatch to not apply")
	}
	if policy.AppliesTo(ProductTypePersonalLoan, ChannelPartnerX) {
		t.Fatalf("expected channel mismatch to not apply")
	}

	inactive := policy
	inactive.IsActive = false
	if inactive.AppliesTo(ProductTypePersonalLoan, ChannelApp) {
		t.Fatalf("expected inactive policy to never apply")
	}
}
