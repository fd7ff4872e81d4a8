package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPolicy wraps every policy construction failure.
var ErrInvalidPolicy = errors.New("invalid policy")

// Policy names the rule-set version that applies to a set of product/channel
// combinations. Policies are seeded administratively; the decision flow only
// reads them. Matching identity is (name, version) - the same name may exist
// across versions.
//
// Storage model (DynamoDB):
//   - PK: id

type Policy struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Version      string        `json:"version"`
	ProductTypes []ProductType `json:"product_types"`
	Channels     []Channel     `json:"channels"`
	IsActive     bool          `json:"is_active"`
}

// NewPolicy validates and builds a Policy.
func NewPolicy(id, name, version string, productTypes []ProductType, channels []Channel, isActive bool) (Policy, error) {
	if strings.TrimSpace(name) == "" {
		return Policy{}, fmt.Errorf("%w: name is required", ErrInvalidPolicy)
	}
	if strings.TrimSpace(version) == "" {
		return Policy{}, fmt.Errorf("%w: version is required", ErrInvalidPolicy)
	}
	if len(productTypes) == 0 {
		return Policy{}, fmt.Errorf("%w: at least one product type is required", ErrInvalidPolicy)
	}
	if len(channels) == 0 {
		return Policy{}, fmt.Errorf("%w: at least one channel is required", ErrInvalidPolicy)
	}

	return Policy{
		ID:           id,
		Name:         strings.TrimSpace(name),
		Version:      strings.TrimSpace(version),
		ProductTypes: productTypes,
		Channels:     channels,
		IsActive:     isActive,
	}, nil
}

// AppliesTo reports whether this policy governs the given product/channel
// combination. Inactive policies never apply.
func (p Policy) AppliesTo(productType ProductType, channel Channel) bool {
	if !p.IsActive {
		return false
	}
	return containsProductType(p.ProductTypes, productType) && containsChannel(p.Channels, channel)
}

func containsProductType(list []ProductType, v ProductType) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsChannel(list []Channel, v Channel) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
