// FILE: pkg/billing/catalog.go
// Static plan catalog for the usage/billing engine.
package billing

import "strings"

const FreePlanCode = "free"

// PlanDefinition describes one purchasable plan. MonthlyFeeCents is a
// one-time debit charged when switching onto the plan, not a recurring
// charge. RequestLimit nil means the engine's default monthly limit applies.
type PlanDefinition struct {
	Code            string
	Label           string
	MonthlyFeeCents int64
	AllowsAdvice    bool
	AllowsAssistant bool
	RequestLimit    *int
}

// Catalog is an immutable set of plan definitions, injected into the engine
// at construction so tests can substitute alternate catalogs.
type Catalog struct {
	plans  []PlanDefinition
	byCode map[string]PlanDefinition
}

func NewCatalog(plans ...PlanDefinition) Catalog {
	c := Catalog{
		byCode: make(map[string]PlanDefinition, len(plans)),
	}
	for _, p := range plans {
		p.Code = strings.ToLower(p.Code)
		c.plans = append(c.plans, p)
		c.byCode[p.Code] = p
	}
	return c
}

// DefaultCatalog is the production plan table.
func DefaultCatalog() Catalog {
	return NewCatalog(
		PlanDefinition{
			Code:  FreePlanCode,
			Label: "Free",
		},
		PlanDefinition{
			Code:            "premium",
			Label:           "Premium",
			MonthlyFeeCents: 1000,
			AllowsAdvice:    true,
			AllowsAssistant: true,
		},
	)
}

func (c Catalog) Lookup(code string) (PlanDefinition, bool) {
	def, ok := c.byCode[strings.ToLower(code)]
	return def, ok
}

// Resolve returns the definition for code, falling back to the free plan for
// unknown or empty codes. The stored plan string is never rewritten; the
// fallback only affects feature and limit lookups.
func (c Catalog) Resolve(code string) PlanDefinition {
	if def, ok := c.Lookup(code); ok {
		return def
	}
	if def, ok := c.byCode[FreePlanCode]; ok {
		return def
	}
	return PlanDefinition{Code: FreePlanCode, Label: "Free"}
}

// Plans returns the catalog entries in declaration order.
func (c Catalog) Plans() []PlanDefinition {
	out := make([]PlanDefinition, len(c.plans))
	copy(out, c.plans)
	return out
}
