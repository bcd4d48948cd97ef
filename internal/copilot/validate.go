package copilot

import (
	"strings"
	"unicode/utf8"
)

type fieldRule struct {
	name     string
	max      int
	required bool
}

// Per-action payload schemas. A declared field must be a string; required
// fields must be non-empty after trimming. Undeclared fields are ignored.
var schemas = map[Action][]fieldRule{
	ActionIdeation: {
		{name: "niche", max: 100, required: true},
		{name: "platform", max: 100, required: true},
		{name: "experience", max: 100, required: true},
		{name: "goal", max: 100, required: true},
		{name: "topic", max: 500},
	},
	ActionCreation: {
		{name: "idea", max: 200, required: true},
		{name: "tone", max: 100, required: true},
		{name: "platform", max: 100, required: true},
		{name: "niche", max: 100, required: true},
	},
	ActionOptimization: {
		{name: "content", max: 5000, required: true},
		{name: "platform", max: 100, required: true},
		{name: "contentType", max: 50},
	},
	ActionPlanning: {
		{name: "niche", max: 100, required: true},
		{name: "platform", max: 100, required: true},
		{name: "experience", max: 100, required: true},
		{name: "goal", max: 100, required: true},
		{name: "frequency", max: 50},
	},
	ActionProfile: {
		{name: "niche", max: 100, required: true},
		{name: "platform", max: 100, required: true},
		{name: "experience", max: 100, required: true},
		{name: "goal", max: 100, required: true},
	},
}

// Validate checks a raw action and payload against the schema table. There
// is no partial acceptance: any violation rejects the whole request.
func Validate(rawAction string, payload map[string]any) (Request, error) {
	action := Action(rawAction)
	rules, ok := schemas[action]
	if !ok {
		return Request{}, &ValidationError{Action: rawAction, Reason: ReasonUnknownAction}
	}

	fields := make(map[string]string, len(rules))
	for _, rule := range rules {
		raw, present := payload[rule.name]
		if !present {
			if rule.required {
				return Request{}, &ValidationError{Action: rawAction, Field: rule.name, Reason: ReasonMissingField}
			}
			continue
		}

		s, isString := raw.(string)
		if !isString {
			return Request{}, &ValidationError{Action: rawAction, Field: rule.name, Reason: ReasonNotAString}
		}

		s = strings.TrimSpace(s)
		if s == "" {
			if rule.required {
				return Request{}, &ValidationError{Action: rawAction, Field: rule.name, Reason: ReasonMissingField}
			}
			continue
		}
		// Bounds are in characters, not bytes: multibyte input counts
		// the same as ASCII.
		if utf8.RuneCountInString(s) > rule.max {
			return Request{}, &ValidationError{Action: rawAction, Field: rule.name, Reason: ReasonFieldTooLong}
		}

		fields[rule.name] = s
	}

	return Request{Action: action, Fields: fields}, nil
}
