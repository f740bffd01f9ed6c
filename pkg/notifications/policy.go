package notifications

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TypePolicy holds the default behavior applied to notifications of one type.
// Per-call options override it.
type TypePolicy struct {
	AutoDismiss bool
	Duration    time.Duration
	Persistent  bool
	Priority    Priority
	Dismissible bool
}

// Policy maps each notification type to its defaults.
type Policy map[Type]TypePolicy

// DefaultPolicy returns the stock md-todo notification behavior: success
// toasts auto-dismiss quickly, errors stick around at high priority until
// acted on, everything else waits for an explicit auto-dismiss opt-in.
func DefaultPolicy() Policy {
	return Policy{
		TypeSuccess: {
			AutoDismiss: true,
			Duration:    3 * time.Second,
			Dismissible: true,
			Priority:    PriorityMedium,
		},
		TypeError: {
			Duration:    8 * time.Second,
			Persistent:  true,
			Dismissible: true,
			Priority:    PriorityHigh,
		},
		TypeWarning: {
			Duration:    5 * time.Second,
			Dismissible: true,
			Priority:    PriorityMedium,
		},
		TypeInfo: {
			Duration:    5 * time.Second,
			Dismissible: true,
			Priority:    PriorityMedium,
		},
	}
}

// policyPatch is the YAML shape of a per-type override. Pointer fields
// distinguish "absent" from zero values so a file only overrides what it
// mentions.
type policyPatch struct {
	AutoDismiss *bool   `yaml:"auto_dismiss"`
	Duration    *string `yaml:"duration"`
	Persistent  *bool   `yaml:"persistent"`
	Priority    *string `yaml:"priority"`
	Dismissible *bool   `yaml:"dismissible"`
}

// LoadPolicy reads a YAML policy file and overlays it on DefaultPolicy.
// The file maps notification types to partial overrides:
//
//	error:
//	  persistent: false
//	  duration: 10s
//	warning:
//	  auto_dismiss: true
//	  priority: high
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}
	return parsePolicy(data)
}

func parsePolicy(data []byte) (Policy, error) {
	var patches map[Type]policyPatch
	if err := yaml.Unmarshal(data, &patches); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}

	policy := DefaultPolicy()
	for typ, patch := range patches {
		if !typ.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
		}

		tp := policy[typ]
		if patch.AutoDismiss != nil {
			tp.AutoDismiss = *patch.AutoDismiss
		}
		if patch.Duration != nil {
			d, err := time.ParseDuration(*patch.Duration)
			if err != nil {
				return nil, fmt.Errorf("%w: duration for %q: %w", ErrInvalidPolicy, typ, err)
			}
			tp.Duration = d
		}
		if patch.Persistent != nil {
			tp.Persistent = *patch.Persistent
		}
		if patch.Priority != nil {
			p, err := ParsePriority(*patch.Priority)
			if err != nil {
				return nil, fmt.Errorf("%w: priority for %q: %w", ErrInvalidPolicy, typ, err)
			}
			tp.Priority = p
		}
		if patch.Dismissible != nil {
			tp.Dismissible = *patch.Dismissible
		}
		policy[typ] = tp
	}

	return policy, nil
}

// forType returns the policy entry for typ, falling back to the info entry
// for unknown types so Show stays total.
func (p Policy) forType(typ Type) TypePolicy {
	if tp, ok := p[typ]; ok {
		return tp
	}
	return p[TypeInfo]
}
